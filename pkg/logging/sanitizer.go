// Package logging contains helpers for safe log output. Provider errors
// can echo credentials back in their messages, so anything derived from a
// reasoning-service call is sanitized before it reaches a log line.
package logging

import (
	"regexp"
)

const (
	// MaxUtteranceLogLength caps logged user utterances and queries.
	MaxUtteranceLogLength = 200
	// RedactedText replaces sensitive data.
	RedactedText = "[REDACTED]"
)

var (
	// Bearer tokens (three base64url segments separated by dots).
	bearerPattern = regexp.MustCompile(`Bearer\s+[A-Za-z0-9-_]+\.[A-Za-z0-9-_]+\.[A-Za-z0-9-_]*`)

	// API keys in query strings or headers (key=..., api_key: ...).
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|apikey|x-api-key|key)[=:]\s*[A-Za-z0-9-_]{20,}`)

	// Provider key prefixes (sk-..., sk-ant-...).
	keyPrefixPattern = regexp.MustCompile(`\bsk-[A-Za-z0-9-_]{16,}`)
)

// SanitizeError strips credential material from an error message.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	sanitized := bearerPattern.ReplaceAllString(err.Error(), "Bearer "+RedactedText)
	sanitized = apiKeyPattern.ReplaceAllString(sanitized, "${1}="+RedactedText)
	sanitized = keyPrefixPattern.ReplaceAllString(sanitized, RedactedText)
	return sanitized
}

// TruncateForLog shortens long strings for log output.
func TruncateForLog(s string) string {
	if len(s) <= MaxUtteranceLogLength {
		return s
	}
	return s[:MaxUtteranceLogLength] + "..."
}
