package dto

import (
	"encoding/json"
	"testing"
)

func TestStudentIDList_UnmarshalArray(t *testing.T) {
	var req CreateClassRoutineRequest
	payload := `{
		"class_room_id": "44444444-0000-4000-8000-000000000001",
		"course_id": "44444444-0000-4000-8000-000000000002",
		"lecturer_id": "44444444-0000-4000-8000-000000000003",
		"student_ids": ["55555555-0000-4000-8000-000000000001", "55555555-0000-4000-8000-000000000002"],
		"single_slot": true,
		"time_slot_id": "44444444-0000-4000-8000-000000000004"
	}`
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(req.StudentIDs) != 2 {
		t.Fatalf("expected 2 student ids, got %d", len(req.StudentIDs))
	}

	set, err := req.StudentIDs.ToSet()
	if err != nil {
		t.Fatalf("ToSet: %v", err)
	}
	if len(set) != 2 {
		t.Errorf("expected set of 2, got %v", set)
	}
}

func TestStudentIDList_UnmarshalCommaString(t *testing.T) {
	var list StudentIDList
	raw := `"55555555-0000-4000-8000-000000000002, 55555555-0000-4000-8000-000000000001"`
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	set, err := list.ToSet()
	if err != nil {
		t.Fatalf("ToSet: %v", err)
	}
	// canonical form sorts regardless of wire order
	want := "55555555-0000-4000-8000-000000000001,55555555-0000-4000-8000-000000000002"
	if set.String() != want {
		t.Errorf("got %q, want %q", set.String(), want)
	}
}

func TestStudentIDList_BothFormsNormalizeEqually(t *testing.T) {
	var fromArray, fromString StudentIDList
	if err := json.Unmarshal([]byte(`["55555555-0000-4000-8000-000000000001","55555555-0000-4000-8000-000000000002"]`), &fromArray); err != nil {
		t.Fatalf("array form: %v", err)
	}
	if err := json.Unmarshal([]byte(`"55555555-0000-4000-8000-000000000002,55555555-0000-4000-8000-000000000001"`), &fromString); err != nil {
		t.Fatalf("string form: %v", err)
	}

	sa, err := fromArray.ToSet()
	if err != nil {
		t.Fatalf("array ToSet: %v", err)
	}
	sb, err := fromString.ToSet()
	if err != nil {
		t.Fatalf("string ToSet: %v", err)
	}
	if sa.String() != sb.String() {
		t.Errorf("forms diverged: %q vs %q", sa.String(), sb.String())
	}
}

func TestStudentIDList_InvalidID(t *testing.T) {
	list := StudentIDList{"not-a-uuid"}
	if _, err := list.ToSet(); err == nil {
		t.Error("expected error for malformed id")
	}
}

func TestStudentIDList_EmptyString(t *testing.T) {
	var list StudentIDList
	if err := json.Unmarshal([]byte(`""`), &list); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("empty string should yield no ids, got %v", list)
	}
}
