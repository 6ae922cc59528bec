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

package writer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/conduitio-labs/conduit-connector-oracle-raw/operations"
	sdk "github.com/conduitio/conduit-connector-sdk"
)

const (
	// metadata related.
	metadataCollection = "opencdc.collection"
	metadataTable      = "oracle.table"
)

// Writer loads records into a staging table and moves them to the target table.
type Writer struct {
	ops operations.SQLOperations
	db  operations.Database

	namespace    string
	table        string
	stagingTable string

	// now returns the emission time of records without a creation time.
	now func() time.Time
}

// Params represents an incoming writer params for the New function.
type Params struct {
	Ops          operations.SQLOperations
	DB           operations.Database
	Namespace    string
	Table        string
	StagingTable string
	// Truncate empties the table before anything is written.
	Truncate bool
	// VerifyLayout checks that a table has the raw row layout.
	// Tables are not checked when it's nil.
	VerifyLayout func(ctx context.Context, namespace, table string) error
}

// New creates new instance of the Writer and prepares the namespace and tables it writes to.
func New(ctx context.Context, params Params) (*Writer, error) {
	w := &Writer{
		ops:          params.Ops,
		db:           params.DB,
		namespace:    params.Namespace,
		table:        params.Table,
		stagingTable: params.StagingTable,
		now:          time.Now,
	}

	if w.ops.RequiresNamespace() {
		err := w.ops.EnsureNamespace(ctx, w.db, w.namespace)
		if err != nil {
			return nil, fmt.Errorf("ensure namespace: %w", err)
		}
	}

	err := w.ops.EnsureTable(ctx, w.db, w.namespace, w.table)
	if err != nil {
		return nil, fmt.Errorf("ensure table: %w", err)
	}

	err = w.ops.EnsureTable(ctx, w.db, w.namespace, w.stagingTable)
	if err != nil {
		return nil, fmt.Errorf("ensure staging table: %w", err)
	}

	// existing tables are verified before anything in them is deleted
	if params.VerifyLayout != nil {
		for _, table := range []string{w.table, w.stagingTable} {
			err = params.VerifyLayout(ctx, w.namespace, table)
			if err != nil {
				return nil, fmt.Errorf("verify table %s.%s: %w", w.namespace, table, err)
			}
		}
	}

	// rows left by a batch that failed to move are sent again by the host
	statements := []string{w.ops.TruncateQueryText(w.namespace, w.stagingTable)}
	if params.Truncate {
		statements = append(statements, w.ops.TruncateQueryText(w.namespace, w.table))
	}

	err = w.ops.ExecuteTransaction(ctx, w.db, statements)
	if err != nil {
		return nil, fmt.Errorf("truncate tables: %w", err)
	}

	return w, nil
}

// Write inserts records into the staging table and moves them to the table in one transaction.
func (w *Writer) Write(ctx context.Context, records []sdk.Record) error {
	batch := make([]operations.Record, 0, len(records))
	for i := range records {
		record, err := w.convertRecord(records[i])
		if err != nil {
			return fmt.Errorf("convert record %d: %w", i, err)
		}

		if !w.ops.IsValidRecord(record.Payload) {
			sdk.Logger(ctx).Warn().
				Str("stream", record.Stream).
				Msg("skipping invalid record")

			continue
		}

		batch = append(batch, record)
	}

	if len(batch) == 0 {
		return nil
	}

	err := w.ops.InsertRecords(ctx, w.db, w.namespace, w.stagingTable, batch)
	if err != nil {
		return fmt.Errorf("insert records: %w", err)
	}

	err = w.ops.ExecuteTransaction(ctx, w.db, []string{
		w.ops.CopyTableText(w.namespace, w.stagingTable, w.table),
		w.ops.TruncateQueryText(w.namespace, w.stagingTable),
	})
	if err != nil {
		return fmt.Errorf("move records from staging table: %w", err)
	}

	return nil
}

// Close drops the staging table.
func (w *Writer) Close(ctx context.Context) error {
	err := w.ops.DropTable(ctx, w.db, w.namespace, w.stagingTable)
	if err != nil {
		return fmt.Errorf("drop staging table: %w", err)
	}

	return nil
}

// convertRecord converts sdk.Record to operations.Record.
func (w *Writer) convertRecord(record sdk.Record) (operations.Record, error) {
	payload, err := structurizeData(record.Payload.After)
	if err != nil {
		return operations.Record{}, fmt.Errorf("structurize payload after: %w", err)
	}

	// deletes only carry the state before the change
	if payload == nil {
		payload, err = structurizeData(record.Payload.Before)
		if err != nil {
			return operations.Record{}, fmt.Errorf("structurize payload before: %w", err)
		}
	}

	if payload == nil {
		return operations.Record{}, ErrEmptyPayload
	}

	emittedAt, err := record.Metadata.GetCreatedAt()
	if err != nil {
		emittedAt = w.now()
	}

	return operations.Record{
		Payload:   payload,
		Stream:    w.getStream(record.Metadata),
		EmittedAt: emittedAt.UnixMilli(),
	}, nil
}

// returns the collection the record was read from or the table it's written to.
func (w *Writer) getStream(metadata sdk.Metadata) string {
	if stream, ok := metadata[metadataCollection]; ok {
		return stream
	}

	if stream, ok := metadata[metadataTable]; ok {
		return stream
	}

	return w.table
}

// converts sdk.Data to a decoded JSON document.
func structurizeData(data sdk.Data) (map[string]any, error) {
	if data == nil {
		return nil, nil
	}

	if structured, ok := data.(sdk.StructuredData); ok {
		if structured == nil {
			return nil, nil
		}

		return structured, nil
	}

	if len(data.Bytes()) == 0 {
		return nil, nil
	}

	structuredData := make(map[string]any)
	if err := json.Unmarshal(data.Bytes(), &structuredData); err != nil {
		return nil, fmt.Errorf("unmarshal data into structured data: %w", err)
	}

	return structuredData, nil
}
