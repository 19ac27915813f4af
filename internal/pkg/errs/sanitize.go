package errs

import (
	"regexp"
	"strings"
)

const (
	redacted = "[REDACTED]"

	// Stops runaway recursion on self-referencing or very deep structures.
	maxSanitizeDepth = 8
)

// Field names that must never appear in a response or a log record,
// matched case-insensitively as substrings of the key.
var sensitiveKeyFragments = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"api_key",
	"apikey",
	"authorization",
	"credential",
	"private_key",
	"privatekey",
	"connection_string",
	"connectionstring",
	"dsn",
}

var (
	sqlFragmentPattern = regexp.MustCompile(`(?i)\b(SELECT|INSERT|UPDATE|DELETE)\b[^;]*\b(FROM|INTO|SET|WHERE)\b[^;]*`)
	connStringPattern  = regexp.MustCompile(`(?i)\b(postgres(ql)?|mongodb(\+srv)?|mysql|redis)://\S+`)
	filePathPattern    = regexp.MustCompile(`(/[\w.\-]+){3,}`)
)

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, fragment := range sensitiveKeyFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// SanitizeMap returns a copy of m with sensitive values redacted,
// recursing into nested maps and slices up to a fixed depth.
func SanitizeMap(m map[string]any) map[string]any {
	return sanitizeMapDepth(m, 0)
}

func sanitizeMapDepth(m map[string]any, depth int) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		if isSensitiveKey(k) {
			out[k] = redacted
			continue
		}
		out[k] = sanitizeValue(v, depth+1)
	}
	return out
}

func sanitizeValue(v any, depth int) any {
	if depth > maxSanitizeDepth {
		return redacted
	}
	switch tv := v.(type) {
	case map[string]any:
		return sanitizeMapDepth(tv, depth)
	case []any:
		out := make([]any, len(tv))
		for i, item := range tv {
			out[i] = sanitizeValue(item, depth+1)
		}
		return out
	case string:
		return SanitizeMessage(tv)
	case error:
		return SanitizeMessage(tv.Error())
	default:
		return v
	}
}

// SanitizeMessage redacts SQL fragments, connection strings, and absolute
// file paths from free text destined for a user-facing channel.
func SanitizeMessage(msg string) string {
	if msg == "" {
		return msg
	}
	msg = connStringPattern.ReplaceAllString(msg, redacted)
	msg = sqlFragmentPattern.ReplaceAllString(msg, redacted)
	msg = filePathPattern.ReplaceAllString(msg, redacted)
	return msg
}
