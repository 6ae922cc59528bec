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

import "context"

//go:generate mockgen -package mock -source operations.go -destination ./mock/operations.go

// Raw row column names, in the order the INSERT ALL statement binds them.
const (
	ColumnRawID       = "_conduit_raw_id"
	ColumnData        = "_conduit_data"
	ColumnExtractedAt = "_conduit_extracted_at"
	ColumnLoadedAt    = "_conduit_loaded_at"
	ColumnMeta        = "_conduit_meta"
)

// RawColumns lists the raw row columns in their table order.
var RawColumns = []string{ColumnRawID, ColumnData, ColumnExtractedAt, ColumnLoadedAt, ColumnMeta}

// A Record is a single event to be persisted as a raw row.
type Record struct {
	// Payload is the decoded JSON document of the event.
	Payload map[string]any
	// Stream identifies where the event came from.
	Stream string
	// EmittedAt is the emission time in epoch milliseconds.
	EmittedAt int64
}

// SQLOperations is the set of operations a destination dialect implements
// to manage namespaces and raw tables and to load records into them.
type SQLOperations interface {
	EnsureNamespace(ctx context.Context, db Database, namespace string) error
	EnsureTable(ctx context.Context, db Database, namespace, table string) error
	DropTable(ctx context.Context, db Database, namespace, table string) error
	TruncateQueryText(namespace, table string) string
	InsertRecords(ctx context.Context, db Database, namespace, table string, records []Record) error
	CopyTableText(namespace, source, destination string) string
	ExecuteTransaction(ctx context.Context, db Database, statements []string) error
	IsValidRecord(payload map[string]any) bool
	RequiresNamespace() bool
}
