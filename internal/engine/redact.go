package engine

import "regexp"

const (
	emailRedacted = "[EMAIL REDACTED]"
	phoneRedacted = "[PHONE REDACTED]"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// South African numbers only: 0 or +27 followed by exactly nine
	// digits, as a whole token. Numbers written with spaces or dashes
	// are out of scope until the POPIA coverage question is settled.
	phonePattern = regexp.MustCompile(`(?:\B\+27|\b0)\d{9}\b`)
)

// Redact replaces contact details with sentinel tokens. The sentinels
// themselves never match the patterns, so Redact is idempotent.
func Redact(text string) string {
	text = emailPattern.ReplaceAllString(text, emailRedacted)
	text = phonePattern.ReplaceAllString(text, phoneRedacted)
	return text
}

func (e *implEngine) Redact(text string) string {
	return Redact(text)
}
