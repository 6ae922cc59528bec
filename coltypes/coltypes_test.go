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

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestVerifyRawLayout(t *testing.T) {
	t.Parallel()

	want := []string{"_conduit_raw_id", "_conduit_data", "_conduit_meta"}

	tests := []struct {
		name    string
		columns []Column
		err     error
	}{
		{
			name: "success",
			columns: []Column{
				{Name: "_CONDUIT_RAW_ID", Type: "VARCHAR2"},
				{Name: "_CONDUIT_DATA", Type: "JSON"},
				{Name: "_CONDUIT_META", Type: "JSON"},
			},
		},
		{
			name: "wrong order",
			columns: []Column{
				{Name: "_CONDUIT_DATA", Type: "JSON"},
				{Name: "_CONDUIT_RAW_ID", Type: "VARCHAR2"},
				{Name: "_CONDUIT_META", Type: "JSON"},
			},
			err: ErrLayoutMismatch,
		},
		{
			name: "extra column",
			columns: []Column{
				{Name: "_CONDUIT_RAW_ID", Type: "VARCHAR2"},
				{Name: "_CONDUIT_DATA", Type: "JSON"},
				{Name: "_CONDUIT_META", Type: "JSON"},
				{Name: "NAME", Type: "VARCHAR2"},
			},
			err: ErrLayoutMismatch,
		},
		{
			name: "no columns",
			err:  ErrLayoutMismatch,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			is := is.New(t)

			err := VerifyRawLayout(tt.columns, want)
			if tt.err == nil {
				is.NoErr(err)

				return
			}

			is.True(errors.Is(err, tt.err))
		})
	}
}
