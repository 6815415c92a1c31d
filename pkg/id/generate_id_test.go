package id

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_Format(t *testing.T) {
	got := NewID32()
	if !reHex32.MatchString(got) {
		t.Fatalf("not 32-char lowercase hex: %q", got)
	}
}

func TestNewID32_IsRandomUUID(t *testing.T) {
	for i := 0; i < 50; i++ {
		raw := NewID32()
		u, err := uuid.Parse(raw)
		if err != nil {
			t.Fatalf("uuid.Parse(%q): %v", raw, err)
		}
		if u.Version() != 4 {
			t.Fatalf("version = %d, want 4 (%q)", u.Version(), raw)
		}
		if u.Variant() != uuid.RFC4122 {
			t.Fatalf("variant = %v, want RFC4122 (%q)", u.Variant(), raw)
		}
		if got := u.String(); len(got) != 36 {
			t.Fatalf("round trip %q -> %q", raw, got)
		}
	}
}

func TestNewID32_Uniqueness(t *testing.T) {
	const n = 500
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		v := NewID32()
		if _, ok := seen[v]; ok {
			t.Fatalf("duplicate id after %d iterations: %q", i, v)
		}
		seen[v] = struct{}{}
	}
}
