// Package jsonutil provides shared helpers for decoding backend JSON:
// error context, lenient scalar conversion, and array decoding.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, context)
	}
	return nil
}

// UnmarshalArrayAllowEmpty unmarshals JSON data into a slice.
// An empty array or a JSON null yields an empty (nil) slice without error.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	var entries []T
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	return entries, nil
}

// ScalarString decodes a single JSON scalar (string, number, bool or null)
// and returns its textual form. Numbers keep their literal digits, so large
// integer identifiers survive without float rounding.
func ScalarString(data []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch v.(type) {
	case map[string]interface{}, []interface{}:
		return "", errors.Errorf("expected JSON scalar, got %s", bytes.TrimSpace(data))
	}
	return ToString(v), nil
}

// ToString converts an interface{} value to a string representation.
// Handles string, json.Number, float64 (formatted as integer when whole), bool,
// and other types.
func ToString(v interface{}) string {
	if v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%g", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
