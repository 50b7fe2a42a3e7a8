// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
	ErrEmptyKey       = errors.New("yamlutil: empty mapping key")
)

// Field is one key/value pair of an ordered mapping.
// Front matter is read by humans, so key order must survive marshaling.
type Field struct {
	Key   string
	Value any
}

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func Marshal(v any) ([]byte, error) {
	result, err := yaml.MarshalWithOptions(v, yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// MarshalOrdered encodes fields as a block mapping in the given order.
// Fields with a nil value are omitted.
func MarshalOrdered(fields []Field) ([]byte, error) {
	slice := make(yaml.MapSlice, 0, len(fields))
	for _, f := range fields {
		if f.Key == "" {
			return nil, ErrEmptyKey
		}
		if f.Value == nil {
			continue
		}
		slice = append(slice, yaml.MapItem{Key: f.Key, Value: f.Value})
	}
	if len(slice) == 0 {
		return []byte{}, nil
	}
	return Marshal(slice)
}
