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

package oracle

import (
	"github.com/conduitio-labs/conduit-connector-oracle-raw/destination"
	sdk "github.com/conduitio/conduit-connector-sdk"
)

// version is set during the build process with -ldflags.
var version = "v0.0.0-dev"

// Specification returns specification of the connector.
func Specification() sdk.Specification {
	return sdk.Specification{
		Name:    "oracle-raw",
		Summary: "Oracle raw destination plugin for Conduit, written in Go.",
		Description: "The connector loads records into Oracle tables with a fixed raw layout: " +
			"an identifier, the JSON payload, extraction and load timestamps and a metadata document.",
		Version:           version,
		Author:            "Meroxa, Inc.",
		SourceParams:      map[string]sdk.Parameter{},
		DestinationParams: destination.NewDestination().Parameters(),
	}
}
