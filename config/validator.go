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
	"reflect"
	"strings"
	"sync"

	"github.com/conduitio-labs/conduit-connector-oracle-raw/naming"
	v "github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// oracleTag marks fields holding a nonquoted Oracle identifier.
const oracleTag = "oracle"

var (
	validatorOnce     sync.Once
	validatorInstance *v.Validate
	validatorErr      error
)

// fieldErrors maps a failed tag to the error reported for the configuration key.
var fieldErrors = map[string]func(key string) error{
	"required": errRequired,
	oracleTag:  errInvalidOracleObject,
	"gte":      errOutOfRange,
	"lte":      errOutOfRange,
}

// newValidator returns a validator reporting fields by their configuration keys.
func newValidator() (*v.Validate, error) {
	validator := v.New()

	validator.RegisterTagNameFunc(configKey)

	err := validator.RegisterValidation(oracleTag, func(fl v.FieldLevel) bool {
		return naming.IsOracleObjectValid(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("register %q validation: %w", oracleTag, err)
	}

	return validator, nil
}

// configKey returns the json name of a field, which is its configuration key.
func configKey(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	return name
}

// validate validates a configuration struct and combines the errors of all its fields.
func validate(s any) error {
	validatorOnce.Do(func() {
		validatorInstance, validatorErr = newValidator()
	})
	if validatorErr != nil {
		return validatorErr
	}

	validationErr := validatorInstance.Struct(s)
	if validationErr == nil {
		return nil
	}

	fieldsErr, ok := validationErr.(v.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate config struct: %w", validationErr)
	}

	var err error
	for _, e := range fieldsErr {
		if toErr, ok := fieldErrors[e.ActualTag()]; ok {
			err = multierr.Append(err, toErr(e.Field()))
		}
	}

	return err
}

func errRequired(key string) error {
	return fmt.Errorf("%q value must be set", key)
}

func errInvalidOracleObject(key string) error {
	return fmt.Errorf("%q can contain only alphanumeric characters from your database character set and "+
		"the underscore (_), dollar sign ($), and pound sign (#)", key)
}

func errOutOfRange(key string) error {
	return fmt.Errorf("%q is out of range", key)
}

func errSameTable(key, other string) error {
	return fmt.Errorf("%q must differ from %q", key, other)
}
