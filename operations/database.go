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

package operations

import (
	"context"
	"database/sql"
)

//go:generate mockgen -package operations -self_package github.com/conduitio-labs/conduit-connector-oracle-raw/operations -source database.go -destination mock_database_test.go

// Statement is a prepared statement.
type Statement interface {
	ExecContext(ctx context.Context, args ...any) (sql.Result, error)
	Close() error
}

// Conn is a single live database connection.
type Conn interface {
	PrepareContext(ctx context.Context, query string) (Statement, error)
}

// Database runs statements against the destination.
// The connection handling behind it is owned by the caller.
type Database interface {
	// QueryInt runs a query returning a single integer.
	QueryInt(ctx context.Context, query string, args ...any) (int, error)
	// Execute executes a statement.
	Execute(ctx context.Context, query string) error
	// ExecuteFunc calls fn with a live connection.
	ExecuteFunc(ctx context.Context, fn func(context.Context, Conn) error) error
}
