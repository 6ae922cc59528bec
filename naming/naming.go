// Copyright © 2024 Meroxa, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package naming contains helpers that turn arbitrary names into
// identifiers Oracle accepts.
package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// Docs: https://docs.oracle.com/cd/A81042_01/DOC/server.816/a76989/ch29.htm
	oracleObjectRegexp = regexp.MustCompile(`^[a-zA-Z]+[a-zA-Z\d#$_]*$`)

	whitespaceRegexp         = regexp.MustCompile(`\s+`)
	nonAlphanumericUnderline = regexp.MustCompile(`[^a-zA-Z0-9_]`)
)

// IsOracleObjectValid reports whether name is a valid nonquoted Oracle identifier.
func IsOracleObjectValid(name string) bool {
	return oracleObjectRegexp.MatchString(name)
}

// UpperQuoted returns the name uppercased and wrapped in double quotes.
func UpperQuoted(name string) string {
	return `"` + strings.ToUpper(name) + `"`
}

// ToAlphanumericAndUnderscore decomposes s, strips combining marks
// and replaces every remaining character outside [a-zA-Z0-9_] with an underscore.
func ToAlphanumericAndUnderscore(s string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.M))), s)
	if err != nil {
		stripped = s
	}

	stripped = whitespaceRegexp.ReplaceAllString(stripped, "_")

	return nonAlphanumericUnderline.ReplaceAllString(stripped, "_")
}

// FormatJSONPath rewrites every object key of a decoded JSON document
// to a lowercase alphanumeric-and-underscore form.
// When keys collide after formatting, the value of the last key in sorted order wins.
// Arrays are formatted element by element, scalars are returned as is.
func FormatJSONPath(v any) any {
	switch val := v.(type) {
	case map[string]any:
		keys := maps.Keys(val)
		slices.Sort(keys)

		formatted := make(map[string]any, len(val))
		for _, k := range keys {
			formatted[formatKey(k)] = FormatJSONPath(val[k])
		}

		return formatted
	case []any:
		formatted := make([]any, len(val))
		for i := range val {
			formatted[i] = FormatJSONPath(val[i])
		}

		return formatted
	default:
		return v
	}
}

func formatKey(key string) string {
	return strings.ToLower(ToAlphanumericAndUnderscore(key))
}
