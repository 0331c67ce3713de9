package x86_64

import "fmt"

// Register is one of the 16 general-purpose register identities. The numeric
// value is the register's full 4-bit index; the 3-bit ModR/M/SIB encoding
// field is always Value()%8, with the high bit folded into REX.R/X/B by the
// caller.
//
// Grounded on the teacher's RegisterType/Register split in registers.go,
// narrowed to the general-purpose set the spec covers (no segment, control,
// debug, MMX, or vector registers — those families are out of scope per the
// non-goals).
type Register byte

const (
	Zax Register = iota
	Zcx
	Zdx
	Zbx
	Zsp
	Zbp
	Zsi
	Zdi
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
)

var registerNames = [16]string{
	"zax", "zcx", "zdx", "zbx", "zsp", "zbp", "zsi", "zdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

// String renders the register's canonical lowercase name (RAX is "zax", the
// width-neutral identity this package uses everywhere internally; callers
// building user-facing text should pair it with a Width to pick AL/AX/EAX/RAX
// spellings — this package provides no such width-specific mapping).
func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("reg(%d)", byte(r))
}

// Value returns the register's full 4-bit index (0..15).
func (r Register) Value() byte { return byte(r) }

// NeedsREX reports whether referencing this register requires a REX prefix
// to reach it at all (R8..R15).
func (r Register) NeedsREX() bool { return byte(r) >= 8 }

// encoding returns the 3-bit field stored in ModR/M or SIB.
func (r Register) encoding() byte { return byte(r) % 8 }

// forcesREXForByteWidth reports whether, in 8-bit operand mode, referencing
// this register requires a REX prefix purely to select the low-byte register
// (SPL/BPL/SIL/DIL) instead of the legacy high-byte alias (AH/CH/DH/BH). Per
// §4.4, this applies to Zsp, Zbp, Zsi, Zdi — index 4..7 — and is independent
// of NeedsREX, which only fires for index >= 8.
func (r Register) forcesREXForByteWidth() bool {
	v := byte(r)
	return v >= 4 && v < 8
}

// Reg is a register tagged with a compile-time operand width. It is a single
// generic struct rather than four named wrapper types (Reg8/16/32/64 in the
// Rust source) because Go does not allow overloading a method name across
// receiver-distinct parameter types the way the source overloads trait impls
// on bare Register for each width — Reg[W8] and Reg[W64] are already
// distinct monomorphized types, which is all the width-gating needs.
type Reg[W WWidth] struct {
	R Register
}

// Reg8 wraps a Register as an 8-bit general register operand. Named Reg8
// rather than R8 because R8 is already the extended register identity
// (Register value 8) — the source's Reg8 trait and its R8 constant live in
// separate Rust namespaces, which Go's single package scope does not allow.
func Reg8(r Register) Reg[W8] { return Reg[W8]{R: r} }

// Reg16 wraps a Register as a 16-bit general register operand.
func Reg16(r Register) Reg[W16] { return Reg[W16]{R: r} }

// Reg32 wraps a Register as a 32-bit general register operand.
func Reg32(r Register) Reg[W32] { return Reg[W32]{R: r} }

// Reg64 wraps a Register as a 64-bit general register operand.
func Reg64(r Register) Reg[W64] { return Reg[W64]{R: r} }
