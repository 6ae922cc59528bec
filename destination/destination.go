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

package destination

import (
	"context"
	"fmt"

	"github.com/conduitio-labs/conduit-connector-oracle-raw/coltypes"
	"github.com/conduitio-labs/conduit-connector-oracle-raw/config"
	"github.com/conduitio-labs/conduit-connector-oracle-raw/destination/writer"
	"github.com/conduitio-labs/conduit-connector-oracle-raw/operations"
	"github.com/conduitio-labs/conduit-connector-oracle-raw/repository"
	sdk "github.com/conduitio/conduit-connector-sdk"
	"go.uber.org/multierr"
)

//go:generate mockgen -package mock -source destination.go -destination ./mock/destination.go

// Writer defines a writer interface needed for the Destination.
type Writer interface {
	Write(context.Context, []sdk.Record) error
	Close(context.Context) error
}

// A Destination represents the destination connector.
type Destination struct {
	sdk.UnimplementedDestination

	repo   *repository.Oracle
	writer Writer
	cfg    config.Destination
}

// NewDestination initialises a new Destination.
func NewDestination() sdk.Destination {
	return sdk.DestinationWithMiddleware(&Destination{}, sdk.DefaultDestinationMiddleware()...)
}

// Parameters returns a map of named Parameters that describe how to configure the Destination.
func (d *Destination) Parameters() map[string]sdk.Parameter {
	return map[string]sdk.Parameter{
		config.URL: {
			Default:     "",
			Required:    true,
			Description: "The connection string to connect to Oracle database.",
		},
		config.Namespace: {
			Default:     "",
			Required:    true,
			Description: "The schema (user) that owns the table. It's created if it does not exist.",
		},
		config.Table: {
			Default:     "",
			Required:    true,
			Description: "The name of the raw table the connector writes to. It's created if it does not exist.",
		},
		config.Tablespace: {
			Default:     "USERS",
			Required:    false,
			Description: "The tablespace a schema created by the connector gets an unlimited quota on.",
		},
		config.StagingTable: {
			Default:  "",
			Required: false,
			Description: "The table records are loaded into before they are moved to the table. " +
				"By default it's CONDUIT_STAGING_ followed by a hash of the namespace and table.",
		},
		config.Truncate: {
			Default:     "false",
			Required:    false,
			Description: "Whether the table is emptied when the connector starts.",
		},
	}
}

// Configure parses and stores configurations, returns an error in case of invalid configuration.
func (d *Destination) Configure(_ context.Context, cfg map[string]string) error {
	destinationConfig, err := config.ParseDestination(cfg)
	if err != nil {
		return err
	}

	d.cfg = destinationConfig

	return nil
}

// Open connects to the database and prepares the namespace and tables.
func (d *Destination) Open(ctx context.Context) (err error) {
	d.repo, err = repository.New(d.cfg.URL)
	if err != nil {
		return fmt.Errorf("new repository: %w", err)
	}

	ops := operations.NewOracle(operations.Params{
		Tablespace: d.cfg.Tablespace,
		Logger:     *sdk.Logger(ctx),
	})

	return d.openWriter(ctx, ops, d.repo)
}

// openWriter prepares the tables and sets the writer only when they are ready.
func (d *Destination) openWriter(ctx context.Context, ops operations.SQLOperations, db operations.Database) error {
	w, err := writer.New(ctx, writer.Params{
		Ops:          ops,
		DB:           db,
		Namespace:    d.cfg.Namespace,
		Table:        d.cfg.Table,
		StagingTable: d.cfg.StagingTable,
		Truncate:     d.cfg.Truncate,
		VerifyLayout: d.verifyLayout,
	})
	if err != nil {
		return fmt.Errorf("new writer: %w", err)
	}

	d.writer = w

	return nil
}

// verifyLayout checks the table's columns against the raw row columns.
func (d *Destination) verifyLayout(ctx context.Context, namespace, table string) error {
	columns, err := coltypes.GetColumns(ctx, d.repo.DB, namespace, table)
	if err != nil {
		return fmt.Errorf("get table columns: %w", err)
	}

	return coltypes.VerifyRawLayout(columns, operations.RawColumns)
}

// Write writes records into a Destination.
// A batch is written as a whole, so either all records are written or none.
func (d *Destination) Write(ctx context.Context, records []sdk.Record) (int, error) {
	err := d.writer.Write(ctx, records)
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

// Teardown drops the staging table and closes the database connection.
func (d *Destination) Teardown(ctx context.Context) error {
	var err error

	if d.writer != nil {
		err = d.writer.Close(ctx)
	}

	if d.repo != nil {
		err = multierr.Append(err, d.repo.Close())
	}

	return err
}
