package logging

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		mustNotHave string
	}{
		{
			name:        "nil error",
			err:         nil,
			mustNotHave: "",
		},
		{
			name:        "bearer token",
			err:         errors.New("401: Bearer eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0.abc123 rejected"),
			mustNotHave: "eyJhbGciOiJIUzI1NiJ9",
		},
		{
			name:        "api key parameter",
			err:         errors.New("request failed: api_key=abcdefghij1234567890ABCD invalid"),
			mustNotHave: "abcdefghij1234567890ABCD",
		},
		{
			name:        "provider key prefix",
			err:         errors.New("invalid key sk-proj-abcdef1234567890abcdef"),
			mustNotHave: "sk-proj-abcdef1234567890abcdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeError(tt.err)
			if tt.err == nil {
				if got != "" {
					t.Errorf("expected empty string for nil error, got %q", got)
				}
				return
			}
			if strings.Contains(got, tt.mustNotHave) {
				t.Errorf("sanitized message still contains secret: %q", got)
			}
			if !strings.Contains(got, RedactedText) {
				t.Errorf("expected redaction marker in %q", got)
			}
		})
	}
}

func TestSanitizeError_PreservesHarmlessText(t *testing.T) {
	got := SanitizeError(errors.New("connection refused"))
	if got != "connection refused" {
		t.Errorf("expected message unchanged, got %q", got)
	}
}

func TestTruncateForLog(t *testing.T) {
	short := "how many claims last month?"
	if got := TruncateForLog(short); got != short {
		t.Errorf("expected short string unchanged, got %q", got)
	}

	long := strings.Repeat("x", MaxUtteranceLogLength+50)
	got := TruncateForLog(long)
	if len(got) != MaxUtteranceLogLength+3 {
		t.Errorf("expected truncation to %d+3 chars, got %d", MaxUtteranceLogLength, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("expected ellipsis suffix")
	}
}
