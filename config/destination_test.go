// Copyright © 2022 Meroxa, Inc. & Yalantis
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

package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestParseDestination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   map[string]string
		want Destination
		err  error
	}{
		{
			name: "success_required_values",
			in: map[string]string{
				URL:       testURL,
				Namespace: testNamespace,
				Table:     testTable,
			},
			want: Destination{
				Configuration: Configuration{
					URL:       testURL,
					Namespace: "SALES",
					Table:     "TEST_TABLE",
				},
				Tablespace:   defaultTablespace,
				StagingTable: defaultStagingTable("SALES", "TEST_TABLE"),
				Truncate:     false,
			},
		},
		{
			name: "success_all_values",
			in: map[string]string{
				URL:          testURL,
				Namespace:    testNamespace,
				Table:        testTable,
				Tablespace:   "data",
				StagingTable: "test_table_stg",
				Truncate:     "true",
			},
			want: Destination{
				Configuration: Configuration{
					URL:       testURL,
					Namespace: "SALES",
					Table:     "TEST_TABLE",
				},
				Tablespace:   "DATA",
				StagingTable: "TEST_TABLE_STG",
				Truncate:     true,
			},
		},
		{
			name: "failure_invalid_truncate",
			in: map[string]string{
				URL:       testURL,
				Namespace: testNamespace,
				Table:     testTable,
				Truncate:  "maybe",
			},
			err: fmt.Errorf("parse %q: %w", Truncate, errors.New(`strconv.ParseBool: parsing "maybe": invalid syntax`)),
		},
		{
			name: "failure_invalid_tablespace",
			in: map[string]string{
				URL:        testURL,
				Namespace:  testNamespace,
				Table:      testTable,
				Tablespace: "_data",
			},
			err: errInvalidOracleObject(Tablespace),
		},
		{
			name: "failure_long_staging_table",
			in: map[string]string{
				URL:          testURL,
				Namespace:    testNamespace,
				Table:        testTable,
				StagingTable: "T" + strings.Repeat("A", 128),
			},
			err: errOutOfRange(StagingTable),
		},
		{
			name: "failure_staging_table_equals_table",
			in: map[string]string{
				URL:          testURL,
				Namespace:    testNamespace,
				Table:        testTable,
				StagingTable: strings.ToUpper(testTable),
			},
			err: errSameTable(StagingTable, Table),
		},
		{
			name: "failure_required_table",
			in: map[string]string{
				URL:       testURL,
				Namespace: testNamespace,
			},
			err: fmt.Errorf("parse general config: %w", errRequired(Table)),
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDestination(tt.in)
			if err != nil {
				if tt.err == nil {
					t.Errorf("unexpected error: %s", err.Error())

					return
				}

				if err.Error() != tt.err.Error() {
					t.Errorf("unexpected error, got: %s, want: %s", err.Error(), tt.err.Error())

					return
				}

				return
			}

			if tt.err != nil {
				t.Errorf("expected error: %s", tt.err.Error())

				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got: %v, want: %v", got, tt.want)
			}
		})
	}
}

func TestDefaultStagingTable(t *testing.T) {
	t.Parallel()

	got := defaultStagingTable("SALES", "ORDERS")

	if got != defaultStagingTable("SALES", "ORDERS") {
		t.Errorf("staging table name must be stable")
	}

	if got == defaultStagingTable("SALES", "ORDERS_2") {
		t.Errorf("staging table names of different tables must differ")
	}

	if !strings.HasPrefix(got, "CONDUIT_STAGING_") {
		t.Errorf("unexpected staging table name %q", got)
	}
}
