package jsonutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !strings.HasPrefix(err.Error(), "test context: ") {
				t.Errorf("error should carry context, got %q", err.Error())
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestUnmarshalArrayAllowEmpty(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantLen int
		wantErr bool
	}{
		{"two entries", `[{"a":1},{"a":2}]`, 2, false},
		{"empty array", `[]`, 0, false},
		{"null", `null`, 0, false},
		{"object instead of array", `{"a":1}`, 0, true},
		{"garbage", `<html>`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalArrayAllowEmpty[map[string]int]([]byte(tt.data), "list")
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestScalarString(t *testing.T) {
	tests := []struct {
		data    string
		want    string
		wantErr bool
	}{
		{`"abc"`, "abc", false},
		{`42`, "42", false},
		{`9007199254740993`, "9007199254740993", false},
		{`1.5`, "1.5", false},
		{`null`, "", false},
		{`true`, "true", false},
		{`{"a":1}`, "", true},
		{`[1]`, "", true},
		{``, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			got, err := ScalarString([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ScalarString(%s) error = %v, wantErr %v", tt.data, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ScalarString(%s) = %q, want %q", tt.data, got, tt.want)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		v    interface{}
		want string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"whole float", 42.0, "42"},
		{"fraction", 3.25, "3.25"},
		{"json number", json.Number("7"), "7"},
		{"bool", false, "false"},
		{"int", 5, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.v); got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestUnmarshalWithContext_KeepsCause(t *testing.T) {
	var v map[string]string
	err := UnmarshalWithContext([]byte(`{"a":`), &v, "decode")
	if err == nil {
		t.Fatal("expected error")
	}
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("cause should be a *json.SyntaxError, got %T", errors.Cause(err))
	}
}
