package parameters

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema returns the JSON Schema of the parameters document, suitable for
// editor completion. Enum literals and lower bounds are taken from the Go
// types so the schema cannot drift from the validator.
func Schema() (*jsonschema.Schema, error) {
	lowerBound := 0.0
	opts := &jsonschema.ForOptions{
		TypeSchemas: map[reflect.Type]*jsonschema.Schema{
			optionalFloatType: {Types: []string{"number", "null"}, Minimum: &lowerBound},
		},
	}

	schema, err := jsonschema.ForType(configType, opts)
	if err != nil {
		return nil, fmt.Errorf("jsonschema.ForType() > %w", err)
	}
	decorate(schema, configType)

	schema.Schema = "https://json-schema.org/draft/2020-12/schema"
	schema.Title = "Structural node and element parameters"
	schema.Description = "Joint kj coefficients, rotation thresholds, element formulations and subassembly policies."
	return schema, nil
}

func decorate(schema *jsonschema.Schema, t reflect.Type) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := jsonName(field)
		prop, ok := schema.Properties[name]
		if !ok || prop == nil {
			continue
		}

		// null and an absent key both mean not applicable
		if field.Type == optionalFloatType {
			schema.Required = slices.DeleteFunc(schema.Required, func(required string) bool {
				return required == name
			})
		}

		if e, ok := reflect.Zero(field.Type).Interface().(enumerated); ok {
			prop.Enum = nil
			for _, literal := range e.Allowed() {
				prop.Enum = append(prop.Enum, literal)
			}
		}
		if field.Type.Kind() == reflect.Float64 && hasRule(field, "gte=0") {
			lowerBound := 0.0
			prop.Minimum = &lowerBound
		}
		if field.Type.Kind() == reflect.Struct && field.Type != optionalFloatType {
			decorate(prop, field.Type)
		}
	}
}

func jsonName(field reflect.StructField) string {
	return strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
}

func hasRule(field reflect.StructField, rule string) bool {
	return slices.Contains(strings.Split(field.Tag.Get("validate"), ","), rule)
}
