package diagnostics

import "fmt"

// Site identifies a position in the emitted byte stream: the offset the
// event occurred at, plus the mnemonic responsible for it. It replaces the
// teacher's debugcontext.Location (file/line/column) for a pipeline with no
// source text to point at — a value type, safe to copy and compare.
type Site struct {
	offset   uint64
	mnemonic string
}

// At creates a Site for the given stream offset and mnemonic.
func At(offset uint64, mnemonic string) Site {
	return Site{offset: offset, mnemonic: mnemonic}
}

// Offset returns the byte offset the site refers to.
func (s Site) Offset() uint64 { return s.offset }

// Mnemonic returns the instruction mnemonic responsible for the entry, or
// "" for sites not tied to a specific instruction (e.g. finish()).
func (s Site) Mnemonic() string { return s.mnemonic }

// String renders "mnemonic@0xoffset", or "@0xoffset" when there is no
// mnemonic.
func (s Site) String() string {
	if s.mnemonic == "" {
		return fmt.Sprintf("@0x%x", s.offset)
	}
	return fmt.Sprintf("%s@0x%x", s.mnemonic, s.offset)
}
