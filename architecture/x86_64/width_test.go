package x86_64

import "testing"

func TestWidthPredicates(t *testing.T) {
	cases := []struct {
		name          string
		w             WWidth
		isW8          bool
		isW16         bool
		isW64         bool
	}{
		{"W8", W8{}, true, false, false},
		{"W16", W16{}, false, true, false},
		{"W32", W32{}, false, false, false},
		{"W64", W64{}, false, false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.w.IsW8(); got != c.isW8 {
				t.Errorf("IsW8() = %v, want %v", got, c.isW8)
			}
			if got := c.w.IsW16(); got != c.isW16 {
				t.Errorf("IsW16() = %v, want %v", got, c.isW16)
			}
			if got := c.w.IsW64(); got != c.isW64 {
				t.Errorf("IsW64() = %v, want %v", got, c.isW64)
			}
		})
	}
}

func TestWidthByte(t *testing.T) {
	if got := widthByte(W8{}, 0x80, 0x81); got != 0x80 {
		t.Errorf("widthByte(W8) = 0x%x, want 0x80", got)
	}
	if got := widthByte(W16{}, 0x80, 0x81); got != 0x81 {
		t.Errorf("widthByte(W16) = 0x%x, want 0x81", got)
	}
	if got := widthByte(W32{}, 0x80, 0x81); got != 0x81 {
		t.Errorf("widthByte(W32) = 0x%x, want 0x81", got)
	}
	if got := widthByte(W64{}, 0x80, 0x81); got != 0x81 {
		t.Errorf("widthByte(W64) = 0x%x, want 0x81", got)
	}
}
