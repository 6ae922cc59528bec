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
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

const (
	// Tablespace is the configuration name of the tablespace.
	Tablespace = "tablespace"
	// StagingTable is the configuration name of the staging table.
	StagingTable = "stagingTable"
	// Truncate is the configuration name of the truncate flag.
	Truncate = "truncate"

	// defaultTablespace is the default value of the Tablespace field.
	defaultTablespace = "USERS"
	// defaultTruncate is the default value of the Truncate field.
	defaultTruncate = false
)

// Destination is a destination configuration needed to connect to Oracle database.
type Destination struct {
	Configuration

	// Tablespace is the tablespace a namespace created by the connector gets an unlimited quota on.
	Tablespace string `json:"tablespace" validate:"required,lte=128,oracle"`
	// StagingTable is the table records are loaded into before they are copied to the Table.
	StagingTable string `json:"stagingTable" validate:"required,lte=128,oracle"`
	// Truncate determines whether the Table is emptied when the connector opens.
	Truncate bool `json:"truncate"`
}

// ParseDestination parses a destination configuration.
func ParseDestination(cfg map[string]string) (Destination, error) {
	config, err := parseConfiguration(cfg)
	if err != nil {
		return Destination{}, fmt.Errorf("parse general config: %w", err)
	}

	destinationConfig := Destination{
		Configuration: config,
		Tablespace:    defaultTablespace,
		StagingTable:  defaultStagingTable(config.Namespace, config.Table),
		Truncate:      defaultTruncate,
	}

	if cfg[Tablespace] != "" {
		destinationConfig.Tablespace = strings.ToUpper(cfg[Tablespace])
	}

	if cfg[StagingTable] != "" {
		destinationConfig.StagingTable = strings.ToUpper(cfg[StagingTable])
	}

	if cfg[Truncate] != "" {
		destinationConfig.Truncate, err = strconv.ParseBool(cfg[Truncate])
		if err != nil {
			return Destination{}, fmt.Errorf("parse %q: %w", Truncate, err)
		}
	}

	err = validate(destinationConfig)
	if err != nil {
		return Destination{}, err
	}

	if destinationConfig.StagingTable == destinationConfig.Table {
		return Destination{}, errSameTable(StagingTable, Table)
	}

	return destinationConfig, nil
}

// defaultStagingTable hashes the table name to keep the staging table name short.
func defaultStagingTable(namespace, table string) string {
	h := fnv.New32a()
	h.Write([]byte(namespace + "." + table))

	return fmt.Sprintf("CONDUIT_STAGING_%d", h.Sum32())
}
