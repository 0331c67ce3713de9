package x86_64

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/keurnel/x64asm/internal/bytesink"
)

// failingSink is a Sink whose Write always errors, for exercising the
// propagation path from a family encoder back through the facade.
type failingSink struct{ offset uint64 }

func (f *failingSink) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("failingSink: write refused")
}
func (f *failingSink) WriteQwordAt(offset uint64, value uint64) error {
	return fmt.Errorf("failingSink: patch refused")
}
func (f *failingSink) Offset() uint64 { return f.offset }

func TestSinkWriteErrorPropagates(t *testing.T) {
	a := New(&failingSink{})
	if err := a.Ret(); err == nil {
		t.Fatal("expected an error from a failing sink, got nil")
	}
}

func TestMovRegImm64EncodesRaxImm64(t *testing.T) {
	buf := bytesink.NewBuffer()
	a := New(buf)

	if err := a.MovRegImm64(Reg64(Zax), 0x1122334455667788); err != nil {
		t.Fatalf("MovRegImm64: %v", err)
	}

	want := []byte{0x48, 0xB8, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

func TestMovRegImm64SetsRexBForExtendedRegister(t *testing.T) {
	buf := bytesink.NewBuffer()
	a := New(buf)

	if err := a.MovRegImm64(Reg64(R8), 1); err != nil {
		t.Fatalf("MovRegImm64: %v", err)
	}

	got := buf.Bytes()
	if len(got) < 2 || got[0] != 0x49 || got[1] != 0xB8 {
		t.Errorf("prefix+opcode = % x, want 49 b8", got[:2])
	}
}

func TestShlxRegRegReg32VexEncoding(t *testing.T) {
	buf := bytesink.NewBuffer()
	a := New(buf)

	if err := a.ShlxRegRegReg32(Reg32(Zax), Reg32(Zcx), Reg32(Zdx)); err != nil {
		t.Fatalf("ShlxRegRegReg32: %v", err)
	}

	want := []byte{0xC4, 0xE2, 0x69, 0xF7, 0xC1}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

func TestWriteLabelBackwardIsRelative(t *testing.T) {
	buf := bytesink.NewBuffer()
	a := New(buf)

	top, err := a.MakeLabelAttached()
	if err != nil {
		t.Fatalf("MakeLabelAttached: %v", err)
	}
	if err := a.WriteByte(0x90); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	useOffset := a.CurrentOffset()
	if err := a.WriteLabel(top); err != nil {
		t.Fatalf("WriteLabel: %v", err)
	}

	var rel uint64
	for i := 0; i < 8; i++ {
		rel |= uint64(buf.Bytes()[int(useOffset)+i]) << (8 * i)
	}
	want := uint64(int64(0) - int64(useOffset))
	if rel != want {
		t.Errorf("relative offset = 0x%x, want 0x%x", rel, want)
	}
}

func TestWriteLabelForwardQueuesPlaceholderThenFinishPatches(t *testing.T) {
	buf := bytesink.NewBuffer()
	a := New(buf)

	skip := a.NewLabel()
	useOffset := a.CurrentOffset()
	if err := a.WriteLabel(skip); err != nil {
		t.Fatalf("WriteLabel: %v", err)
	}

	placeholder := buf.Bytes()[useOffset : useOffset+8]
	if !bytes.Equal(placeholder, ud2Placeholder[:]) {
		t.Fatalf("placeholder = % x, want ud2 pattern % x", placeholder, ud2Placeholder)
	}

	if err := a.WriteByte(0x90); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	if err := a.AttachLabel(skip); err != nil {
		t.Fatalf("AttachLabel: %v", err)
	}

	if err := a.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	patched := buf.Bytes()[useOffset : useOffset+8]
	if bytes.Equal(patched, ud2Placeholder[:]) {
		t.Error("Finish did not patch the forward-reference placeholder")
	}
}

func TestFinishWithUnresolvedLabelIsFatal(t *testing.T) {
	buf := bytesink.NewBuffer()
	a := New(buf)

	never := a.NewLabel()
	if err := a.WriteLabel(never); err != nil {
		t.Fatalf("WriteLabel: %v", err)
	}

	if err := a.Finish(); err == nil {
		t.Fatal("expected Finish to fail on an unresolved label, got nil")
	}
}

func TestAttachLabelTwiceErrors(t *testing.T) {
	buf := bytesink.NewBuffer()
	a := New(buf)

	label := a.NewLabel()
	if err := a.AttachLabel(label); err != nil {
		t.Fatalf("first AttachLabel: %v", err)
	}
	if err := a.AttachLabel(label); err == nil {
		t.Fatal("expected error re-attaching a label, got nil")
	}
}
