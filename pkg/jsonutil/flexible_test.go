package jsonutil

import (
	"encoding/json"
	"testing"
)

func TestFlexibleStringValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "string", input: `"hello"`, expected: "hello"},
		{name: "integer", input: `12345`, expected: "12345"},
		{name: "float", input: `0.85`, expected: "0.85"},
		{name: "boolean", input: `true`, expected: "true"},
		{name: "null", input: `null`, expected: ""},
		{name: "empty", input: ``, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FlexibleStringValue(json.RawMessage(tt.input))
			if result != tt.expected {
				t.Errorf("FlexibleStringValue(%s) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFlexibleFloatValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "number", input: `0.95`, expected: 0.95},
		{name: "integer", input: `1`, expected: 1},
		{name: "quoted number", input: `"0.85"`, expected: 0.85},
		{name: "quoted with spaces", input: `" 0.5 "`, expected: 0.5},
		{name: "null", input: `null`, expected: 0},
		{name: "garbage string", input: `"high"`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FlexibleFloatValue(json.RawMessage(tt.input))
			if result != tt.expected {
				t.Errorf("FlexibleFloatValue(%s) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFlexibleBoolValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "true", input: `true`, expected: true},
		{name: "false", input: `false`, expected: false},
		{name: "quoted true", input: `"true"`, expected: true},
		{name: "quoted mixed case", input: `"True"`, expected: true},
		{name: "null", input: `null`, expected: false},
		{name: "number", input: `1`, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FlexibleBoolValue(json.RawMessage(tt.input))
			if result != tt.expected {
				t.Errorf("FlexibleBoolValue(%s) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}
