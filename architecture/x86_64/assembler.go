package x86_64

import (
	"fmt"

	"github.com/keurnel/x64asm/internal/bytesink"
	"github.com/keurnel/x64asm/internal/diagnostics"
)

// ud2Placeholder is the 8-byte repeating 0x0F 0x0B pattern — four encoded
// ud2 instructions — written at a label use site before the label is
// resolved, per §4.3: an accidental execution of the un-patched stream traps
// rather than silently proceeding.
var ud2Placeholder = [8]byte{0x0F, 0x0B, 0x0F, 0x0B, 0x0F, 0x0B, 0x0F, 0x0B}

// Assembler is the façade (C9): it owns a byte sink and a label resolver,
// and exposes the instruction catalog as one method per mnemonic × operand
// shape (see catalog_methods.go). It is an exclusive resource — a caller
// holds it mutably from New to Finish; there is no internal synchronization
// beyond the diagnostics log, which may be read from another goroutine
// while encoding continues on the owner's.
type Assembler struct {
	sink        bytesink.Sink
	startOffset uint64
	labels      *labeler
	pending     map[uint64]Label // use-offset -> label, not yet resolved
	diagnostics *diagnostics.Context
}

// New wraps sink in an Assembler, snapshotting its starting offset.
func New(sink bytesink.Sink) *Assembler {
	return &Assembler{
		sink:        sink,
		startOffset: sink.Offset(),
		labels:      newLabeler(),
		pending:     make(map[uint64]Label),
		diagnostics: diagnostics.New(),
	}
}

// Diagnostics returns the assembler's diagnostics log (C11). Diagnostics are
// advisory: reading them never affects encoding, and encoding never
// consults them to decide whether to fail.
func (a *Assembler) Diagnostics() *diagnostics.Context { return a.diagnostics }

// StartOffset returns the sink's absolute offset at construction.
func (a *Assembler) StartOffset() uint64 { return a.startOffset }

// CurrentOffset returns the sink's current absolute offset.
func (a *Assembler) CurrentOffset() uint64 { return a.sink.Offset() }

// WriteByte appends a single raw byte outside the catalog.
func (a *Assembler) WriteByte(v byte) error { return bytesink.WriteByte(a.sink, v) }

// WriteWord appends a little-endian uint16 outside the catalog.
func (a *Assembler) WriteWord(v uint16) error { return bytesink.WriteWord(a.sink, v) }

// WriteDword appends a little-endian uint32 outside the catalog.
func (a *Assembler) WriteDword(v uint32) error { return bytesink.WriteDword(a.sink, v) }

// WriteQword appends a little-endian uint64 outside the catalog.
func (a *Assembler) WriteQword(v uint64) error { return bytesink.WriteQword(a.sink, v) }

// NewLabel allocates a fresh, unattached Label.
func (a *Assembler) NewLabel() Label {
	l := a.labels.newLabel()
	a.diagnostics.SetPhase("label")
	a.diagnostics.Trace(diagnostics.At(a.CurrentOffset(), ""), fmt.Sprintf("label %d created", l.id))
	return l
}

// AttachLabel binds label to the current offset. It is an error to attach an
// already-attached label.
func (a *Assembler) AttachLabel(label Label) error {
	a.diagnostics.SetPhase("label")
	addr := a.CurrentOffset()
	if err := a.labels.attach(label, addr); err != nil {
		a.diagnostics.Error(diagnostics.At(addr, ""), err.Error())
		return err
	}
	a.diagnostics.Info(diagnostics.At(addr, ""), fmt.Sprintf("label %d attached at 0x%x", label.id, addr))
	return nil
}

// MakeLabelAttached allocates a new Label and immediately attaches it at the
// current offset — the combination the source calls make_label_attached.
func (a *Assembler) MakeLabelAttached() (Label, error) {
	l := a.NewLabel()
	if err := a.AttachLabel(l); err != nil {
		return Label{}, err
	}
	return l, nil
}

// WriteLabel writes a reference to label at the current offset.
//
// If label is already resolved, this writes label_address - current_offset
// as a signed 64-bit little-endian value (two's-complement wrap): the
// reference site is treated as a rel64 immediate relative to the offset at
// which this 8-byte value begins.
//
// If label is unresolved, this records current_offset -> label in the
// pending-patches map and writes the 8-byte ud2 placeholder; Finish will
// later overwrite it with the resolved target address written ABSOLUTE, not
// relative — see Finish. Both directions of this
// asymmetry are deliberately preserved from the source and stated explicitly
// here rather than left for a caller to discover from disassembly.
func (a *Assembler) WriteLabel(label Label) error {
	a.diagnostics.SetPhase("label")
	useOffset := a.CurrentOffset()

	if addr, ok := a.labels.resolve(label); ok {
		rel := int64(addr) - int64(useOffset)
		a.diagnostics.Trace(diagnostics.At(useOffset, ""), fmt.Sprintf("label %d resolved inline, relative %d", label.id, rel))
		return a.WriteQword(uint64(rel))
	}

	a.pending[useOffset] = label
	a.diagnostics.Trace(diagnostics.At(useOffset, ""), fmt.Sprintf("label %d unresolved, queued for patch", label.id))
	_, err := a.sink.Write(ud2Placeholder[:])
	if err != nil {
		return fmt.Errorf("x86_64: writing label placeholder: %w", err)
	}
	return nil
}

// Finish drains the pending-patches map: for each queued use site it
// resolves the label and overwrites the placeholder with the resolved
// target ADDRESS (absolute, not relative to the use site — unlike the inline
// path in WriteLabel). An unresolved label at this point is a fatal caller
// error, returned rather than panicked, per §7's Go realization note.
func (a *Assembler) Finish() error {
	a.diagnostics.SetPhase("finish")
	for useOffset, label := range a.pending {
		addr, ok := a.labels.resolve(label)
		if !ok {
			err := fmt.Errorf("x86_64: finish: label %d was never attached", label.id)
			a.diagnostics.Error(diagnostics.At(useOffset, ""), err.Error())
			return err
		}
		if err := a.sink.WriteQwordAt(useOffset, addr); err != nil {
			return fmt.Errorf("x86_64: finish: patching label %d: %w", label.id, err)
		}
		a.diagnostics.Info(diagnostics.At(useOffset, ""), fmt.Sprintf("label %d patched with absolute address 0x%x", label.id, addr))
	}
	return nil
}

// trace records a one-line "instruction emitted" entry in the diagnostics
// log. byteCount is the number of bytes the encoder just wrote for name.
// MovRegImm64 is its only caller; the other catalog methods record no
// per-instruction entry.
func (a *Assembler) trace(name string, startOffset uint64, byteCount int) {
	a.diagnostics.SetPhase("catalog")
	a.diagnostics.Trace(diagnostics.At(startOffset, name), fmt.Sprintf("%s emitted %d bytes", name, byteCount))
}
