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
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/conduitio-labs/conduit-connector-oracle-raw/naming"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"
	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

const (
	// catalog queries, names are compared case-insensitively.
	queryNamespaceExists = "select count(*) from all_users where upper(username) = upper(:1)"
	queryTableExists     = "select count(*) from all_tables where upper(owner) = upper(:1) and upper(table_name) = upper(:2)"

	createUserFmt  = "create user %s identified by %s quota unlimited on %s"
	grantAllFmt    = "GRANT ALL PRIVILEGES TO %s"
	createTableFmt = "CREATE TABLE %s.%s (" +
		"%s VARCHAR(64) PRIMARY KEY, " +
		"%s JSON, " +
		"%s TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP, " +
		"%s TIMESTAMP WITH TIME ZONE DEFAULT NULL, " +
		"%s JSON)"
	dropTableFmt     = "DROP TABLE %s.%s"
	truncateTableFmt = "DELETE FROM %s.%s"
	copyTableFmt     = "INSERT INTO %s.%s SELECT * FROM %s.%s"

	// "$?" is a go-sqlbuilder placeholder, rendered as ":n" by the Oracle flavor.
	insertIntoFmt = "INTO %s.%s (%s) VALUES ($?, $?, $?, $?, %s) "
	insertAllFmt  = "INSERT ALL %sSELECT 1 FROM DUAL"

	// Oracle stores the empty string as NULL.
	metaPlaceholder = "''"

	bindsPerRecord = 4

	transactionBegin = "BEGIN\n COMMIT;\n"
	transactionEnd   = "; \nCOMMIT; \nEND;"
)

var _ SQLOperations = (*Oracle)(nil)

// Params represents incoming params for the NewOracle function.
type Params struct {
	// Tablespace is the tablespace new namespaces get an unlimited quota on.
	Tablespace string
	// Logger receives the diagnostics of the operations.
	Logger zerolog.Logger
	// FormatPayload is applied to every payload before it's written.
	// Defaults to naming.FormatJSONPath.
	FormatPayload func(any) any
	// NewID generates raw row identifiers. Defaults to uuid.NewString.
	NewID func() string
}

// Oracle implements SQLOperations for Oracle databases.
type Oracle struct {
	tablespace    string
	logger        zerolog.Logger
	formatPayload func(any) any
	newID         func() string
}

// NewOracle creates a new instance of Oracle.
func NewOracle(params Params) *Oracle {
	o := &Oracle{
		tablespace:    params.Tablespace,
		logger:        params.Logger,
		formatPayload: params.FormatPayload,
		newID:         params.NewID,
	}

	if o.formatPayload == nil {
		o.formatPayload = naming.FormatJSONPath
	}

	if o.newID == nil {
		o.newID = uuid.NewString
	}

	return o
}

// EnsureNamespace creates a user with the namespace name, if it does not exist.
func (o *Oracle) EnsureNamespace(ctx context.Context, db Database, namespace string) error {
	count, err := db.QueryInt(ctx, queryNamespaceExists, namespace)
	if err != nil {
		return fmt.Errorf("check if namespace %s exists: %w", namespace, err)
	}

	if count != 0 {
		return nil
	}

	o.logger.Warn().Str("namespace", namespace).Msg("namespace is not found, trying to create a new one")

	err = db.Execute(ctx, fmt.Sprintf(createUserFmt, namespace, namespace, o.tablespace))
	if err != nil {
		return fmt.Errorf("create user %s: %w", namespace, err)
	}

	// not required since Oracle 18c
	err = db.Execute(ctx, fmt.Sprintf(grantAllFmt, namespace))
	if err != nil {
		return fmt.Errorf("grant privileges to %s: %w", namespace, err)
	}

	return nil
}

// EnsureTable creates a raw table, if it does not exist.
func (o *Oracle) EnsureTable(ctx context.Context, db Database, namespace, table string) error {
	err := o.ensureTable(ctx, db, namespace, table)
	if err != nil {
		o.logger.Error().Err(err).
			Str("namespace", namespace).
			Str("table", table).
			Msg("error while creating table")

		return err
	}

	return nil
}

func (o *Oracle) ensureTable(ctx context.Context, db Database, namespace, table string) error {
	exists, err := o.tableExists(ctx, db, namespace, table)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	err = db.Execute(ctx, o.CreateTableQueryText(namespace, table))
	if err != nil {
		return fmt.Errorf("create table %s.%s: %w", namespace, table, err)
	}

	return nil
}

// CreateTableQueryText returns a query creating a raw table.
func (o *Oracle) CreateTableQueryText(namespace, table string) string {
	return fmt.Sprintf(createTableFmt, namespace, table,
		naming.UpperQuoted(ColumnRawID),
		naming.UpperQuoted(ColumnData),
		naming.UpperQuoted(ColumnExtractedAt),
		naming.UpperQuoted(ColumnLoadedAt),
		naming.UpperQuoted(ColumnMeta),
	)
}

// DropTable drops a table, if it exists.
func (o *Oracle) DropTable(ctx context.Context, db Database, namespace, table string) error {
	exists, err := o.tableExists(ctx, db, namespace, table)
	if err != nil {
		return err
	}

	if !exists {
		return nil
	}

	err = db.Execute(ctx, fmt.Sprintf(dropTableFmt, namespace, table))
	if err != nil {
		o.logger.Error().Err(err).
			Str("namespace", namespace).
			Str("table", table).
			Msg("error dropping table")

		return fmt.Errorf("drop table %s.%s: %w", namespace, table, err)
	}

	return nil
}

// TruncateQueryText returns a query deleting all rows of a table.
func (o *Oracle) TruncateQueryText(namespace, table string) string {
	return fmt.Sprintf(truncateTableFmt, namespace, table)
}

// InsertRecords inserts records into a raw table with a single INSERT ALL statement.
func (o *Oracle) InsertRecords(ctx context.Context, db Database, namespace, table string, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	query, args, err := o.buildInsertQuery(namespace, table, records)
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	err = db.ExecuteFunc(ctx, func(ctx context.Context, conn Conn) error {
		return withStatement(ctx, conn, query, func(stmt Statement) error {
			_, err := stmt.ExecContext(ctx, args...)

			return err
		})
	})
	if err != nil {
		o.logger.Error().Err(err).
			Str("namespace", namespace).
			Str("table", table).
			Int("records", len(records)).
			Msg("error inserting records")

		return fmt.Errorf("insert records into %s.%s: %w", namespace, table, err)
	}

	return nil
}

// buildInsertQuery returns an INSERT ALL query with one INTO clause per record and its arguments.
// Oracle has no multi-row VALUES, the "SELECT 1 FROM DUAL" source only satisfies the INSERT ALL syntax.
func (o *Oracle) buildInsertQuery(namespace, table string, records []Record) (string, []any, error) {
	columns := make([]string, len(RawColumns))
	for i := range RawColumns {
		columns[i] = naming.UpperQuoted(RawColumns[i])
	}

	into := fmt.Sprintf(insertIntoFmt,
		escapeBuilderFormat(namespace), escapeBuilderFormat(table), strings.Join(columns, ","), metaPlaceholder)

	args := make([]any, 0, len(records)*bindsPerRecord)
	for i := range records {
		data, err := json.Marshal(o.formatPayload(records[i].Payload))
		if err != nil {
			return "", nil, fmt.Errorf("marshal payload of record %d: %w", i, err)
		}

		args = append(args,
			o.newID(),
			string(data),
			time.UnixMilli(records[i].EmittedAt).UTC(),
			sql.NullTime{},
		)
	}

	query, args := sqlbuilder.Build(fmt.Sprintf(insertAllFmt, strings.Repeat(into, len(records))), args...).
		BuildWithFlavor(sqlbuilder.Oracle)

	return query, args, nil
}

// CopyTableText returns a query copying all rows from the source to the destination table.
func (o *Oracle) CopyTableText(namespace, source, destination string) string {
	return fmt.Sprintf(copyTableFmt, namespace, destination, namespace, source)
}

// ExecuteTransaction executes statements in a single anonymous PL/SQL block.
func (o *Oracle) ExecuteTransaction(ctx context.Context, db Database, statements []string) error {
	if len(statements) == 0 {
		return nil
	}

	query := transactionQuery(statements)

	o.logger.Debug().Int("statements", len(statements)).Msg("executing transaction")

	err := db.Execute(ctx, query)
	if err != nil {
		return fmt.Errorf("execute transaction: %w", err)
	}

	return nil
}

// IsValidRecord reports whether a payload can be written. Every payload can.
func (o *Oracle) IsValidRecord(map[string]any) bool {
	return true
}

// RequiresNamespace reports whether a namespace must exist before tables are created in it.
func (o *Oracle) RequiresNamespace() bool {
	return true
}

// tableExists checks if the table exists in the namespace.
func (o *Oracle) tableExists(ctx context.Context, db Database, namespace, table string) (bool, error) {
	count, err := db.QueryInt(ctx, queryTableExists, namespace, table)
	if err != nil {
		return false, fmt.Errorf("check if table %s.%s exists: %w", namespace, table, err)
	}

	return count == 1, nil
}

// transactionQuery joins statements into a PL/SQL block with commits around them.
func transactionQuery(statements []string) string {
	trimmed := make([]string, len(statements))
	for i := range statements {
		trimmed[i] = strings.TrimRight(strings.TrimSpace(statements[i]), ";")
	}

	return transactionBegin + strings.Join(trimmed, ";\n") + transactionEnd
}

// withStatement prepares a query, passes the statement to fn and closes it afterwards.
func withStatement(ctx context.Context, conn Conn, query string, fn func(Statement) error) (err error) {
	stmt, err := conn.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}

	defer func() {
		if closeErr := stmt.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close statement: %w", closeErr))
		}
	}()

	if err = fn(stmt); err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}

	return nil
}

// escapeBuilderFormat escapes "$", which go-sqlbuilder treats as a placeholder prefix.
func escapeBuilderFormat(name string) string {
	return strings.ReplaceAll(name, "$", "$$")
}
