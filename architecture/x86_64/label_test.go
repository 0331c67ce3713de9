package x86_64

import "testing"

func TestLabelerAttachThenResolve(t *testing.T) {
	l := newLabeler()
	label := l.newLabel()

	if _, ok := l.resolve(label); ok {
		t.Fatal("resolve() reported an address before attach")
	}

	if err := l.attach(label, 0x10); err != nil {
		t.Fatalf("attach: %v", err)
	}

	addr, ok := l.resolve(label)
	if !ok || addr != 0x10 {
		t.Errorf("resolve() = 0x%x, %v; want 0x10, true", addr, ok)
	}
}

func TestLabelerDoubleAttachErrors(t *testing.T) {
	l := newLabeler()
	label := l.newLabel()

	if err := l.attach(label, 0x10); err != nil {
		t.Fatalf("first attach: %v", err)
	}
	if err := l.attach(label, 0x20); err == nil {
		t.Fatal("expected error re-attaching a label, got nil")
	}
}
