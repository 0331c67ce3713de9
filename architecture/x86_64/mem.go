package x86_64

import "fmt"

// Scale is the SIB byte's 2-bit index multiplier.
type Scale byte

const (
	X1 Scale = 0b00
	X2 Scale = 0b01
	X4 Scale = 0b10
	X8 Scale = 0b11
)

// displacement is the resolved disp8/disp32 choice for a Mem, mirroring the
// source's Displacement enum.
type displacement struct {
	value  int32
	is8bit bool
}

// modRM is the packed mod/reg/rm byte. It is a value type so callers can
// derive has-SIB / has-displacement facts before emitting it.
type modRM byte

func newModRM(mod, reg, rm byte) modRM {
	return modRM((mod << 6) | ((reg & 0b111) << 3) | (rm & 0b111))
}

func (m modRM) withReg(reg byte) modRM { return newModRM(m.mod(), reg, m.rm()) }
func (m modRM) mod() byte              { return byte(m) >> 6 }
func (m modRM) reg() byte              { return (byte(m) >> 3) & 0b111 }
func (m modRM) rm() byte               { return byte(m) & 0b111 }

const modRMSibRM = 0b100

func (m modRM) hasSIB() bool           { return m.rm() == modRMSibRM && m.mod() != 0b11 }
func (m modRM) hasDisplacement() bool  { return m.mod() == 1 || m.mod() == 2 }

// sib is the packed scale/index/base byte.
type sib byte

const (
	sibNoIndex = 0b100
	sibNoBase  = 0b101
)

func newSIB(scale, index, base byte) sib {
	return sib((scale << 6) | ((index & 0b111) << 3) | (base & 0b111))
}

func (s sib) base() byte           { return byte(s) & 0b111 }
func (s sib) hasDisplacement() bool { return s.base() == sibNoBase }

// Mem describes an x86-64 memory addressing form: an optional base register,
// an optional scaled index register, a 32-bit displacement, and two escape
// hatches (relative for RIP-relative addressing, force32Address for the
// 0x67 address-size override). Grounded verbatim on params/mem.rs's Mem
// struct and constructor surface.
//
// Invariants enforced by construction:
//   - if Index is set, it is never Zsp (Zsp is SIB's "no index" sentinel);
//   - Relative is never combined with Base or Index.
type Mem struct {
	base            *Register
	index           *Register
	displacement    int32
	scale           Scale
	hasIndex        bool
	relative        bool
	force32Address  bool
}

// Displacement constructs a Mem with no base/index — an absolute address.
func Displacement(disp int32) Mem {
	return Mem{displacement: disp, scale: X1}
}

// Base constructs a Mem of the form [base].
func Base(base Register) Mem {
	return BaseDisplacement(base, 0)
}

// BaseDisplacement constructs a Mem of the form [base+disp].
func BaseDisplacement(base Register, disp int32) Mem {
	return Mem{base: &base, displacement: disp, scale: X1}
}

// BaseIndex constructs a Mem of the form [base+index]. It errors if index is
// Zsp, which cannot serve as a SIB index.
func BaseIndex(base, index Register) (Mem, error) {
	return BaseIndexScale(base, index, X1)
}

// BaseIndexScale constructs a Mem of the form [base+index*scale].
func BaseIndexScale(base, index Register, scale Scale) (Mem, error) {
	if index == Zsp {
		return Mem{}, fmt.Errorf("x86_64: Zsp cannot be used as a SIB index")
	}
	return Mem{base: &base, index: &index, scale: scale, hasIndex: true}, nil
}

// ZbpIndexScaleDisplacement constructs [Zbp+index*scale+disp].
func ZbpIndexScaleDisplacement(index Register, scale Scale, disp int32) (Mem, error) {
	if index == Zsp {
		return Mem{}, fmt.Errorf("x86_64: Zsp cannot be used as a SIB index")
	}
	base := Zbp
	return Mem{base: &base, index: &index, scale: scale, hasIndex: true, displacement: disp}, nil
}

// WithIndex constructs a Mem of the form [index] (no base).
func WithIndex(index Register) (Mem, error) {
	return WithIndexScaleDisplacement(index, X1, 0)
}

// WithIndexScale constructs a Mem of the form [index*scale] (no base).
func WithIndexScale(index Register, scale Scale) (Mem, error) {
	return WithIndexScaleDisplacement(index, scale, 0)
}

// WithIndexDisplacement constructs a Mem of the form [index+disp] (no base).
func WithIndexDisplacement(index Register, disp int32) (Mem, error) {
	return WithIndexScaleDisplacement(index, X1, disp)
}

// WithIndexScaleDisplacement constructs [index*scale+disp] (no base).
func WithIndexScaleDisplacement(index Register, scale Scale, disp int32) (Mem, error) {
	if index == Zsp {
		return Mem{}, fmt.Errorf("x86_64: Zsp cannot be used as a SIB index")
	}
	return Mem{index: &index, scale: scale, hasIndex: true, displacement: disp}, nil
}

// Relative constructs a RIP-relative Mem with zero displacement.
func Relative() Mem { return RelativeDisplacement(0) }

// RelativeDisplacement constructs a RIP-relative Mem.
func RelativeDisplacement(disp int32) Mem {
	return Mem{displacement: disp, scale: X1, relative: true}
}

// X32 forces the 0x67 address-size override prefix, making the addressing
// registers resolve as their 32-bit forms instead of 64-bit.
func (m Mem) X32() Mem {
	m.force32Address = true
	return m
}

func (m Mem) addressPrefix() (byte, bool) {
	if m.force32Address {
		return 0x67, true
	}
	return 0, false
}

// modRMByte computes the encoding's ModR/M component, following §4.5 exactly:
// a direct-base form takes mod from the displacement (with Zbp/R13 forced to
// mod=01 at zero displacement to avoid colliding with RIP-relative), any
// Zsp/R12 base or any index forces the SIB escape, and a bare Mem with no
// base is either RIP-relative (mod=00,rm=101) or SIB-escaped absolute
// (mod=00,rm=100).
//
// The disp8 choice is a signed fits-in-i8 test (-128..127) on the int32
// displacement, not the source's unsigned <= 0xff comparison: displacements
// of 128..255 take mod=10 with four bytes.
func (m Mem) modRMByte() modRM {
	if m.base != nil {
		base := *m.base
		var modBits byte
		switch {
		case m.displacement == 0 && base != Zbp && base != R13:
			modBits = 0b00
		case m.displacement >= -128 && m.displacement <= 127:
			modBits = 0b01
		default:
			modBits = 0b10
		}

		var rm byte
		if base == Zsp || base == R12 || m.hasIndex {
			rm = modRMSibRM
		} else {
			rm = byte(base) % 8
		}

		return newModRM(modBits, 0, rm)
	}

	if m.relative {
		return newModRM(0, 0, 0b101)
	}

	return newModRM(0, 0, modRMSibRM)
}

func (m Mem) sibByte() sib {
	index := byte(sibNoIndex)
	if m.index != nil {
		index = byte(*m.index) % 8
	}
	base := byte(sibNoBase)
	if m.base != nil {
		base = byte(*m.base) % 8
	}
	return newSIB(byte(m.scale), index, base)
}

func (m Mem) getDisplacement() (displacement, bool) {
	mrm := m.modRMByte()
	s := m.sibByte()
	if mrm.hasDisplacement() || (mrm.hasSIB() && s.hasDisplacement()) {
		if mrm.mod() == 1 {
			return displacement{value: m.displacement, is8bit: true}, true
		}
		return displacement{value: m.displacement, is8bit: false}, true
	}
	return displacement{}, false
}

// encoded returns the triple (ModR/M with the opcode-reg/digit field already
// folded in, optional SIB, optional displacement) the family encoders write.
func (m Mem) encoded(regOrDigit byte) (modRM, *sib, *displacement) {
	mrm := m.modRMByte().withReg(regOrDigit)
	var sibOut *sib
	if mrm.hasSIB() {
		s := m.sibByte()
		sibOut = &s
	}
	disp, ok := m.getDisplacement()
	var dispOut *displacement
	if ok {
		dispOut = &disp
	}
	return mrm, sibOut, dispOut
}

// rexBits returns the REX.X/REX.B contribution of this memory operand's
// index/base registers (bit 1 and bit 0 of the low nibble respectively,
// pre-shifted), and whether a REX byte is needed purely for this operand.
func (m Mem) rexBits() (bits byte, needed bool) {
	var x, b byte
	if m.base != nil && byte(*m.base) >= 8 {
		b = 1
	}
	if m.index != nil && byte(*m.index) >= 8 {
		x = 1
	}
	if x != 0 || b != 0 {
		return (x << 1) | b, true
	}
	return 0, false
}

// Mem is generic over width purely at the call boundary: MemAny[W] wraps a
// Mem with a phantom width tag, the same generic-struct strategy used for
// Reg[W] and Imm[W] (see register.go's doc comment for why this replaces the
// source's Mem8/16/32/64 newtypes).
type MemAny[W WWidth] struct {
	M Mem
}

// Mem8 tags a Mem as an 8-bit-wide memory operand.
func Mem8(m Mem) MemAny[W8] { return MemAny[W8]{M: m} }

// Mem16 tags a Mem as a 16-bit-wide memory operand.
func Mem16(m Mem) MemAny[W16] { return MemAny[W16]{M: m} }

// Mem32 tags a Mem as a 32-bit-wide memory operand.
func Mem32(m Mem) MemAny[W32] { return MemAny[W32]{M: m} }

// Mem64 tags a Mem as a 64-bit-wide memory operand.
func Mem64(m Mem) MemAny[W64] { return MemAny[W64]{M: m} }
