// Copyright © 2022 Meroxa, Inc.
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

package coltypes

import "errors"

var (
	// ErrTableNotFound occurs when the catalog has no columns for a table.
	ErrTableNotFound = errors.New("table not found")
	// ErrLayoutMismatch occurs when a table's columns differ from the raw row layout.
	ErrLayoutMismatch = errors.New("table layout mismatch")
)
