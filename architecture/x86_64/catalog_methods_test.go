package x86_64

import (
	"bytes"
	"testing"

	"github.com/keurnel/x64asm/internal/bytesink"
)

func assembleOne(t *testing.T, emit func(a *Assembler) error) []byte {
	t.Helper()
	buf := bytesink.NewBuffer()
	a := New(buf)
	if err := emit(a); err != nil {
		t.Fatalf("emit: %v", err)
	}
	return buf.Bytes()
}

func TestXorRegImm32Encoding(t *testing.T) {
	got := assembleOne(t, func(a *Assembler) error {
		return a.XorRegImm32(Reg32(Zcx), Imm32(0x11))
	})
	want := []byte{0x81, 0xF1, 0x11, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

func TestAddZaxImm8Encoding(t *testing.T) {
	got := assembleOne(t, func(a *Assembler) error {
		return a.AddZaxImm8(Imm8(0x2A))
	})
	want := []byte{0x04, 0x2A}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

func TestMovRegReg32EncodesSourceInModRMReg(t *testing.T) {
	got := assembleOne(t, func(a *Assembler) error {
		return a.MovRegReg32(Reg32(Zbx), Reg32(Zax))
	})
	want := []byte{0x89, 0xC3}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

func TestCmovRegReg32Encoding(t *testing.T) {
	got := assembleOne(t, func(a *Assembler) error {
		return a.CmovRegReg32(CondE, Reg32(Zax), Reg32(Zcx))
	})
	want := []byte{0x0F, 0x44, 0xC1}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

func TestSetccRegEncoding(t *testing.T) {
	got := assembleOne(t, func(a *Assembler) error {
		return a.SetccReg(CondG, Reg8(Zax))
	})
	want := []byte{0x0F, 0x9F, 0xC0}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

func TestBtRegImm8_32Encoding(t *testing.T) {
	got := assembleOne(t, func(a *Assembler) error {
		return a.BtRegImm8_32(Reg32(Zax), 3)
	})
	want := []byte{0x0F, 0xBA, 0xE0, 0x03}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

func TestMovRegMem64WithDisplacementEncodesREXAndDisp8(t *testing.T) {
	mem := BaseDisplacement(R8, 4)
	got := assembleOne(t, func(a *Assembler) error {
		return a.MovRegMem64(Reg64(Zax), Mem64(mem))
	})
	// REX.W + REX.B (R8 as base needs extension via ModRM.rm), opcode 0x8B,
	// ModRM mod=01/reg=0/rm=0 (R8 % 8 == 0), disp8 = 0x04.
	want := []byte{0x49, 0x8B, 0x40, 0x04}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

func TestMovRegMem16WithAddressOverrideOrdersOperandSizeBeforeAddressSize(t *testing.T) {
	// §4.7: 0x66 (operand-size, since the operand is W16) must precede 0x67
	// (address-size, from X32()) — both prefixes fire here, so this is the
	// one case that actually exercises their relative order.
	mem := Base(Zax).X32()
	got := assembleOne(t, func(a *Assembler) error {
		return a.MovRegMem16(Reg16(Zax), Mem16(mem))
	})
	want := []byte{0x66, 0x67, 0x8B, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}

func TestNoOperandMnemonicsEncodeFixedByteSequences(t *testing.T) {
	for _, tc := range []struct {
		name string
		emit func(a *Assembler) error
		want []byte
	}{
		{"Invd", func(a *Assembler) error { return a.Invd() }, []byte{0x0F, 0x08}},
		{"Iretd", func(a *Assembler) error { return a.Iretd() }, []byte{0xCF}},
		{"Iretq", func(a *Assembler) error { return a.Iretq() }, []byte{0x48, 0xCF}},
		{"Iretw", func(a *Assembler) error { return a.Iretw() }, []byte{0x66, 0xCF}},
		{"Popfq", func(a *Assembler) error { return a.Popfq() }, []byte{0x9D}},
		{"Pushfq", func(a *Assembler) error { return a.Pushfq() }, []byte{0x9C}},
		{"Xlatb", func(a *Assembler) error { return a.Xlatb() }, []byte{0xD7}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := assembleOne(t, tc.emit)
			if !bytes.Equal(got, tc.want) {
				t.Errorf("bytes = % x, want % x", got, tc.want)
			}
		})
	}
}

func TestDecReg64Encoding(t *testing.T) {
	got := assembleOne(t, func(a *Assembler) error {
		return a.DecReg64(Reg64(Zcx))
	})
	// REX.W, opcode 0xFF /1.
	want := []byte{0x48, 0xFF, 0xC9}
	if !bytes.Equal(got, want) {
		t.Errorf("bytes = % x, want % x", got, want)
	}
}
