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
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// queryColumns selects a table's columns in their definition order.
const queryColumns = `
SELECT
    COLUMN_NAME AS NAME,
    DATA_TYPE AS TYPE,
    NULLABLE AS NULLABLE
FROM ALL_TAB_COLUMNS
WHERE UPPER(OWNER) = UPPER(:1) AND UPPER(TABLE_NAME) = UPPER(:2)
ORDER BY COLUMN_ID
`

// Column represents a column's data.
type Column struct {
	Name     string `db:"NAME"`
	Type     string `db:"TYPE"`
	Nullable string `db:"NULLABLE"`
}

// GetColumns returns the table's columns ordered by their position.
func GetColumns(ctx context.Context, q sqlx.QueryerContext, owner, table string) ([]Column, error) {
	var columns []Column

	err := sqlx.SelectContext(ctx, q, &columns, queryColumns, owner, table)
	if err != nil {
		return nil, fmt.Errorf("query columns of %s.%s: %w", owner, table, err)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("%s.%s: %w", owner, table, ErrTableNotFound)
	}

	return columns, nil
}

// VerifyRawLayout checks that columns are exactly the want columns in the same order.
// Rows are bound by position, so any other layout would put values into the wrong columns.
func VerifyRawLayout(columns []Column, want []string) error {
	if len(columns) != len(want) {
		return fmt.Errorf("%w: got %d columns, want %d", ErrLayoutMismatch, len(columns), len(want))
	}

	for i := range want {
		if !strings.EqualFold(columns[i].Name, want[i]) {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrLayoutMismatch, i+1, columns[i].Name, strings.ToUpper(want[i]))
		}
	}

	return nil
}
