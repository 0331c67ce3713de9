package x86_64

// WWidth is the sealed marker interface every operand width satisfies. It is
// never implemented outside this package: the four concrete widths below are
// the only inhabitants.
//
// Width is a compile-time tag, not a runtime value — it never appears in an
// Assembler's fields. Generic functions parameterized by W WWidth use the
// predicate methods to pick opcode bytes and prefixes at the call site; the
// Go compiler erases the type parameter but the predicates still fold to
// constants for a monomorphized instantiation.
type WWidth interface {
	// IsW8 reports whether this width selects the 8-bit opcode/ModR/M path.
	IsW8() bool
	// IsW16 reports whether the 0x66 operand-size prefix is required.
	IsW16() bool
	// IsW64 reports whether REX.W must be set.
	IsW64() bool
	width() // unexported: seals the interface to this package
}

// WidthAtLeast16 is satisfied by W16, W32, and W64 — the widths permitted by
// mnemonics that have no useful 8-bit form (bsf, imul, cmovCC, the sximm8
// immediate forms, ...).
type WidthAtLeast16 interface {
	WWidth
	widthAtLeast16()
}

// WidthAtLeast32 is satisfied by W32 and W64 — the constraint on the VEX
// BMI2 encoders (bextr, bzhi, sarx, shlx, shrx).
type WidthAtLeast32 interface {
	WWidth
	widthAtLeast32()
}

// WidthAtMost16 is satisfied by W8 and W16.
type WidthAtMost16 interface {
	WWidth
	widthAtMost16()
}

// WidthAtMost32 is satisfied by W8, W16, and W32. No encoder in this package
// is constrained by it; lar/lsl, which have no 64-bit destination form, are
// written as concrete W16/W32 methods.
type WidthAtMost32 interface {
	WWidth
	widthAtMost32()
}

// W8 is the 8-bit operand width.
type W8 struct{}

func (W8) IsW8() bool  { return true }
func (W8) IsW16() bool { return false }
func (W8) IsW64() bool { return false }
func (W8) width()      {}
func (W8) widthAtMost16() {}
func (W8) widthAtMost32() {}

// W16 is the 16-bit operand width.
type W16 struct{}

func (W16) IsW8() bool  { return false }
func (W16) IsW16() bool { return true }
func (W16) IsW64() bool { return false }
func (W16) width()      {}
func (W16) widthAtLeast16() {}
func (W16) widthAtMost16()  {}
func (W16) widthAtMost32()  {}

// W32 is the 32-bit operand width.
type W32 struct{}

func (W32) IsW8() bool  { return false }
func (W32) IsW16() bool { return false }
func (W32) IsW64() bool { return false }
func (W32) width()      {}
func (W32) widthAtLeast16() {}
func (W32) widthAtLeast32() {}
func (W32) widthAtMost32()  {}

// W64 is the 64-bit operand width. HAS_REXW from the spec is exactly IsW64.
type W64 struct{}

func (W64) IsW8() bool  { return false }
func (W64) IsW16() bool { return false }
func (W64) IsW64() bool { return true }
func (W64) width()      {}
func (W64) widthAtLeast16() {}
func (W64) widthAtLeast32() {}

// widthByte picks op8 for W8 and op for everything else, per the catalog's
// op8/op field pair.
func widthByte[W WWidth](w W, op8, op byte) byte {
	if w.IsW8() {
		return op8
	}
	return op
}
