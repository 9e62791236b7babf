package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewStudentIDSet_Canonicalizes(t *testing.T) {
	a := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	b := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000002")

	set := NewStudentIDSet([]uuid.UUID{b, a, b, uuid.Nil, a})
	if len(set) != 2 {
		t.Fatalf("expected 2 ids after dedupe, got %d", len(set))
	}
	if set[0] != a || set[1] != b {
		t.Errorf("expected sorted order [%s %s], got %v", a, b, set)
	}
}

func TestStudentIDSet_CanonicalOrderIsInputIndependent(t *testing.T) {
	a := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	b := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000002")
	c := uuid.MustParse("cccccccc-0000-0000-0000-000000000003")

	s1 := NewStudentIDSet([]uuid.UUID{a, b, c})
	s2 := NewStudentIDSet([]uuid.UUID{c, b, a, b})
	if s1.String() != s2.String() {
		t.Errorf("same members must serialize identically: %q vs %q", s1.String(), s2.String())
	}
}

func TestStudentIDSet_ContainsIsExact(t *testing.T) {
	member := uuid.MustParse("12121212-0000-0000-0000-000000000012")
	// shares a prefix with member's serialization but is a different id
	lookalike := uuid.MustParse("12121212-0000-0000-0000-000000000120")

	set := NewStudentIDSet([]uuid.UUID{member})
	if !set.Contains(member) {
		t.Error("member not found")
	}
	if set.Contains(lookalike) {
		t.Error("prefix lookalike must not match")
	}
}

func TestParseStudentIDSet_RoundTrip(t *testing.T) {
	a := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	b := uuid.MustParse("bbbbbbbb-0000-0000-0000-000000000002")
	set := NewStudentIDSet([]uuid.UUID{a, b})

	val, err := set.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var back StudentIDSet
	if err := back.Scan(val); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if back.String() != set.String() {
		t.Errorf("round trip changed value: %q -> %q", set.String(), back.String())
	}
}

func TestParseStudentIDSet_Errors(t *testing.T) {
	if _, err := ParseStudentIDSet("not-a-uuid"); err == nil {
		t.Error("expected error for malformed id")
	}
	set, err := ParseStudentIDSet("  ")
	if err != nil {
		t.Fatalf("blank input: %v", err)
	}
	if len(set) != 0 {
		t.Errorf("blank input should parse to an empty set, got %v", set)
	}
}

func TestStudentIDSet_ScanBytes(t *testing.T) {
	a := uuid.MustParse("aaaaaaaa-0000-0000-0000-000000000001")
	var set StudentIDSet
	if err := set.Scan([]byte(a.String())); err != nil {
		t.Fatalf("Scan([]byte): %v", err)
	}
	if !set.Contains(a) {
		t.Errorf("scanned set missing %s", a)
	}
}
