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

package repository

import (
	"context"
	"fmt"

	"github.com/conduitio-labs/conduit-connector-oracle-raw/operations"
	"github.com/jmoiron/sqlx"
	"go.uber.org/multierr"

	// Go driver for Oracle.
	_ "github.com/godror/godror"
)

var _ operations.Database = (*Oracle)(nil)

// Oracle represents a Oracle repository.
type Oracle struct {
	DB *sqlx.DB
}

// New opens a database and pings it.
func New(url string) (*Oracle, error) {
	db, err := sqlx.Open("godror", url)
	if err != nil {
		return nil, fmt.Errorf("open connection: %w", err)
	}

	err = db.Ping()
	if err != nil {
		return nil, multierr.Append(fmt.Errorf("ping: %w", err), db.Close())
	}

	return &Oracle{DB: db}, nil
}

// QueryInt runs a query returning a single integer.
func (o *Oracle) QueryInt(ctx context.Context, query string, args ...any) (int, error) {
	var n int

	err := o.DB.GetContext(ctx, &n, query, args...)
	if err != nil {
		return 0, fmt.Errorf("query int: %w", err)
	}

	return n, nil
}

// Execute executes a statement.
func (o *Oracle) Execute(ctx context.Context, query string) error {
	_, err := o.DB.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}

	return nil
}

// ExecuteFunc takes a connection from the pool, calls fn with it and returns it back.
func (o *Oracle) ExecuteFunc(ctx context.Context, fn func(context.Context, operations.Conn) error) (err error) {
	c, err := o.DB.Connx(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}

	defer func() {
		err = multierr.Append(err, c.Close())
	}()

	return fn(ctx, &conn{c: c})
}

// Close closes database.
func (o *Oracle) Close() error {
	if o != nil {
		return o.DB.Close()
	}

	return nil
}

// conn adapts sqlx.Conn to operations.Conn.
type conn struct {
	c *sqlx.Conn
}

func (c *conn) PrepareContext(ctx context.Context, query string) (operations.Statement, error) {
	stmt, err := c.c.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return stmt, nil
}
