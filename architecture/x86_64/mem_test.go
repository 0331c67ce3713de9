package x86_64

import "testing"

func TestBaseIndexRejectsZspIndex(t *testing.T) {
	if _, err := BaseIndex(Zax, Zsp); err == nil {
		t.Fatal("expected error using Zsp as a SIB index, got nil")
	}
}

func TestModRMZeroDisplacementZbpForcesMod01(t *testing.T) {
	// [Zbp] at zero displacement would collide with the mod=00/rm=101
	// RIP-relative escape, so Mem forces mod=01 with an explicit disp8=0.
	m := Base(Zbp)
	mrm := m.modRMByte()
	if mrm.mod() != 0b01 {
		t.Errorf("mod() = %b, want 01 for [Zbp] at zero displacement", mrm.mod())
	}
	disp, ok := m.getDisplacement()
	if !ok || !disp.is8bit || disp.value != 0 {
		t.Errorf("getDisplacement() = %+v, %v; want {0 true}, true", disp, ok)
	}
}

func TestModRMZeroDisplacementR13ForcesMod01(t *testing.T) {
	m := Base(R13)
	mrm := m.modRMByte()
	if mrm.mod() != 0b01 {
		t.Errorf("mod() = %b, want 01 for [R13] at zero displacement", mrm.mod())
	}
}

func TestModRMZeroDisplacementZaxStaysMod00(t *testing.T) {
	m := Base(Zax)
	mrm := m.modRMByte()
	if mrm.mod() != 0b00 {
		t.Errorf("mod() = %b, want 00 for [Zax] at zero displacement", mrm.mod())
	}
	if _, ok := m.getDisplacement(); ok {
		t.Error("getDisplacement() reported a displacement for [Zax], want none")
	}
}

func TestModRMZspBaseForcesSIB(t *testing.T) {
	m := Base(Zsp)
	mrm := m.modRMByte()
	if !mrm.hasSIB() {
		t.Error("hasSIB() = false, want true for [Zsp] base")
	}
}

func TestModRMR12BaseForcesSIB(t *testing.T) {
	m := Base(R12)
	mrm := m.modRMByte()
	if !mrm.hasSIB() {
		t.Error("hasSIB() = false, want true for [R12] base")
	}
}

func TestSIBNoIndexSentinel(t *testing.T) {
	m := Base(Zsp)
	s := m.sibByte()
	if index := (byte(s) >> 3) & 0b111; index != sibNoIndex {
		t.Errorf("sib index = %03b, want %03b (no-index sentinel)", index, sibNoIndex)
	}
	if s.base() != byte(Zsp)%8 {
		t.Errorf("sib.base() = %d, want %d", s.base(), byte(Zsp)%8)
	}
}

func TestDisplacementFitsInt8Boundary(t *testing.T) {
	// §4.5: the disp8/disp32 choice is a signed -128..127 fits-in-i8 test,
	// deliberately diverging from the source's unsigned <= 0xff comparison.
	for _, tc := range []struct {
		disp     int32
		want8bit bool
	}{
		{127, true},
		{-128, true},
		{128, false},
		{-129, false},
	} {
		m := BaseDisplacement(Zax, tc.disp)
		disp, ok := m.getDisplacement()
		if !ok {
			t.Fatalf("displacement %d: getDisplacement() reported none", tc.disp)
		}
		if disp.is8bit != tc.want8bit {
			t.Errorf("displacement %d: is8bit = %v, want %v", tc.disp, disp.is8bit, tc.want8bit)
		}
	}
}

func TestBaseIndexScaleEncodesSIB(t *testing.T) {
	m, err := BaseIndexScale(Zax, Zcx, X4)
	if err != nil {
		t.Fatalf("BaseIndexScale: %v", err)
	}
	mrm := m.modRMByte()
	if !mrm.hasSIB() {
		t.Fatal("hasSIB() = false, want true when an index is present")
	}
	sib := m.sibByte()
	if sib.base() != byte(Zax) {
		t.Errorf("sib base = %d, want %d", sib.base(), byte(Zax))
	}
}

func TestRelativeHasNoBaseOrIndex(t *testing.T) {
	m := RelativeDisplacement(16)
	mrm := m.modRMByte()
	if mrm.mod() != 0 || mrm.rm() != 0b101 {
		t.Errorf("RIP-relative modRM = mod %b rm %b, want mod 00 rm 101", mrm.mod(), mrm.rm())
	}
}

func TestX32SetsAddressPrefix(t *testing.T) {
	m := Base(Zax).X32()
	prefix, ok := m.addressPrefix()
	if !ok || prefix != 0x67 {
		t.Errorf("addressPrefix() = 0x%x, %v; want 0x67, true", prefix, ok)
	}
}
