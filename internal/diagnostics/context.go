// Package diagnostics is the assembler's append-only, thread-safe event log
// (component C11). It is adapted from the teacher's internal/debugcontext,
// keeping its structure (mutex-guarded slice of *Entry, phase tagging,
// severity-filtered queries) while re-domaining "source location" to
// "byte-stream site" — see site.go.
package diagnostics

import "sync"

// Context is a passive, append-only log of assembler pipeline events. It is
// thread-safe for concurrent writes and reads, so a caller may inspect
// Entries() from another goroutine while the owning Assembler keeps writing
// on its own (the core encoder itself remains single-threaded per the
// package's concurrency model — only the diagnostics log is synchronized).
//
// Create a Context exclusively through New(). It does no I/O or formatting;
// a renderer (the CLI layer, or a test) consumes Entries() to produce
// output.
type Context struct {
	phase   string
	entries []*Entry
	mu      sync.Mutex
}

// New returns an empty *Context with no phase set.
func New() *Context {
	return &Context{entries: make([]*Entry, 0)}
}

// SetPhase sets the current pipeline phase. Subsequent entries are tagged
// with this phase until it changes again. The assembler facade uses the
// phases "label", "catalog", and "finish".
func (c *Context) SetPhase(name string) {
	c.mu.Lock()
	c.phase = name
	c.mu.Unlock()
}

// Phase returns the current pipeline phase name.
func (c *Context) Phase() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Context) record(severity string, site Site, message string) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &Entry{
		severity: severity,
		phase:    c.phase,
		message:  message,
		site:     site,
	}
	c.entries = append(c.entries, entry)
	return entry
}

// Error records an entry with severity "error" and returns the *Entry for
// optional chaining (WithHint).
func (c *Context) Error(site Site, message string) *Entry {
	return c.record(SeverityError, site, message)
}

// Warning records an entry with severity "warning".
func (c *Context) Warning(site Site, message string) *Entry {
	return c.record(SeverityWarning, site, message)
}

// Info records an entry with severity "info".
func (c *Context) Info(site Site, message string) *Entry {
	return c.record(SeverityInfo, site, message)
}

// Trace records an entry with severity "trace". The assembler facade uses
// this for label creation and use, and for the emission entry that
// MovRegImm64 records; the other catalog methods record no entry.
func (c *Context) Trace(site Site, message string) *Entry {
	return c.record(SeverityTrace, site, message)
}

// Entries returns all recorded entries in insertion order.
func (c *Context) Entries() []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]*Entry, len(c.entries))
	copy(result, c.entries)
	return result
}

// Errors returns only entries with severity "error".
func (c *Context) Errors() []*Entry { return c.filter(SeverityError) }

// Warnings returns only entries with severity "warning".
func (c *Context) Warnings() []*Entry { return c.filter(SeverityWarning) }

// HasErrors reports whether at least one "error" entry has been recorded.
func (c *Context) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the total number of entries.
func (c *Context) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Context) filter(severity string) []*Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	var result []*Entry
	for _, e := range c.entries {
		if e.severity == severity {
			result = append(result, e)
		}
	}
	return result
}
