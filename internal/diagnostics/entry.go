package diagnostics

import "fmt"

// Severity constants for entry classification, carried over verbatim from
// the teacher's debugcontext package.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
	SeverityTrace   = "trace"
)

// Entry is a single diagnostic event recorded by the assembler facade: a
// label operation, a catalog dispatch, or a finish() patch resolution.
//
// Entries are append-only — once created, their core fields (severity,
// phase, message, site) are immutable. The optional Hint can be set via
// WithHint before the entry is considered complete. Unlike the teacher's
// Entry, there is no Snippet: there is no source text to quote for a byte
// stream.
type Entry struct {
	severity string
	phase    string
	message  string
	site     Site
	hint     string
}

func (e *Entry) Severity() string { return e.severity }
func (e *Entry) Phase() string    { return e.phase }
func (e *Entry) Message() string  { return e.message }
func (e *Entry) Site() Site       { return e.site }
func (e *Entry) Hint() string     { return e.hint }

// WithHint sets the fix suggestion and returns the same *Entry for chaining.
func (e *Entry) WithHint(text string) *Entry {
	e.hint = text
	return e
}

// String returns "severity [phase] site: message".
func (e *Entry) String() string {
	return fmt.Sprintf("%s [%s] %s: %s", e.severity, e.phase, e.site.String(), e.message)
}
