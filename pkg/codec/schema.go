// Copyright 2025 Outreach Corporation. All Rights Reserved.

// Description: Implements schemas declaring the native type of the
// numeric fields in a document.

package codec

import (
	"os"
	"sort"

	"github.com/getoutreach/safenum/pkg/number"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Schema maps dotted field paths to the kind each field must convert
// to exactly. In YAML it is written as a mapping of path to type name:
//
//	id: int64
//	limits.0.max: uint16
//	ratio: float32
type Schema map[string]number.Kind

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]string
	if err := node.Decode(&raw); err != nil {
		return err
	}

	out := make(Schema, len(raw))
	for path, name := range raw {
		k, err := number.ParseKind(name)
		if err != nil {
			return errors.Wrapf(err, "schema field %q", path)
		}
		out[path] = k
	}
	*s = out
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s Schema) MarshalYAML() (interface{}, error) {
	raw := make(map[string]string, len(s))
	for path, k := range s {
		raw[path] = k.String()
	}
	return raw, nil
}

// ParseSchema decodes a YAML schema.
func ParseSchema(data []byte) (Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "parse schema")
	}
	return s, nil
}

// LoadSchema reads and decodes the YAML schema at path.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read schema %s", path)
	}
	return ParseSchema(data)
}

// Paths returns the schema's field paths in sorted order.
func (s Schema) Paths() []string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Validate checks that every field of the schema is present in doc and
// converts exactly to its declared kind. Errors are ordered by path.
func (s Schema) Validate(doc interface{}) []error {
	var errs []error
	for _, path := range s.Paths() {
		if _, err := FieldValue(doc, s[path], SplitPath(path)...); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
