package devicespec

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v2"
)

//go:embed devicespec.schema.json
var schemaText string

var schema = jsonschema.MustCompileString("devicespec.schema.json", schemaText)

// ValidateFileSchema validates the device spec file at path against the
// spec's JSON schema. It returns the root causes of any schema violations;
// an empty slice means the file is schema-valid.
func ValidateFileSchema(path string) ([]*jsonschema.ValidationError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read device spec: %w", err)
	}

	// YAML is a superset of JSON, so a single decode path covers both
	// supported formats.
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse device spec %s: %w", path, err)
	}
	doc, err = toStringKeys(doc)
	if err != nil {
		return nil, err
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, err
	}
	return findRootCauses(ve), nil
}

func findRootCauses(validationError *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if validationError == nil {
		return nil
	}

	if len(validationError.Causes) == 0 {
		return []*jsonschema.ValidationError{validationError}
	}

	var errs []*jsonschema.ValidationError
	for _, cause := range validationError.Causes {
		errs = append(errs, findRootCauses(cause)...)
	}
	return errs
}

func toStringKeys(val interface{}) (interface{}, error) {
	var err error
	switch val := val.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{})
		for k, v := range val {
			k, ok := k.(string)
			if !ok {
				return nil, errors.New("found non-string key")
			}
			m[k], err = toStringKeys(v)
			if err != nil {
				return nil, err
			}
		}
		return m, nil
	case []interface{}:
		var l = make([]interface{}, len(val))
		for i, v := range val {
			l[i], err = toStringKeys(v)
			if err != nil {
				return nil, err
			}
		}
		return l, nil
	default:
		return val, nil
	}
}
