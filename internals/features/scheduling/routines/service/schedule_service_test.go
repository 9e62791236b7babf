package service

import (
	"errors"
	"fmt"
	"testing"

	"unischedule_backend/internals/features/scheduling/routines/model"
)

func pgDuplicateErr(constraint string) error {
	return fmt.Errorf("ERROR: duplicate key value violates unique constraint %q (SQLSTATE 23505)", constraint)
}

func TestConflictFromError_MapsEachConstraint(t *testing.T) {
	cases := []struct {
		constraint string
		reason     string
	}{
		{model.UqRoomCourseSlot, "The combination of classroom, course and time slot must be unique."},
		{model.UqLecturerSlot, "The combination of lecturer and time slot must be unique."},
		{model.UqStudentsSlot, "The combination of students and time slot must be unique."},
		{model.UqRoomSlot, "The combination of classroom and time slot must be unique."},
	}

	for _, tc := range cases {
		err := ConflictFromError(pgDuplicateErr(tc.constraint))
		var ce *ConflictError
		if !errors.As(err, &ce) {
			t.Fatalf("%s: expected ConflictError, got %v", tc.constraint, err)
		}
		if ce.Constraint != tc.constraint {
			t.Errorf("wrong constraint: got %s want %s", ce.Constraint, tc.constraint)
		}
		if ce.Reason != tc.reason {
			t.Errorf("%s: wrong reason %q", tc.constraint, ce.Reason)
		}
	}
}

func TestConflictFromError_ChecksInFixedOrder(t *testing.T) {
	// A message naming several constraints resolves to the first in the
	// documented order, room+course+slot before lecturer+slot.
	err := ConflictFromError(fmt.Errorf(
		"duplicate key value violates unique constraint: %s, %s",
		model.UqLecturerSlot, model.UqRoomCourseSlot))
	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if ce.Constraint != model.UqRoomCourseSlot {
		t.Errorf("got %s, want %s first", ce.Constraint, model.UqRoomCourseSlot)
	}
}

func TestConflictFromError_PassThrough(t *testing.T) {
	if got := ConflictFromError(nil); got != nil {
		t.Errorf("nil must pass through, got %v", got)
	}

	plain := errors.New("connection refused")
	if got := ConflictFromError(plain); got != plain {
		t.Errorf("non-duplicate error must pass through unchanged, got %v", got)
	}

	// A duplicate-key error from some other table keeps its original text.
	other := errors.New(`duplicate key value violates unique constraint "uq_users_email" (SQLSTATE 23505)`)
	if got := ConflictFromError(other); got != other {
		t.Errorf("unknown constraint must pass through, got %v", got)
	}
}

func TestConflictError_ErrorIsReason(t *testing.T) {
	err := ConflictFromError(pgDuplicateErr(model.UqRoomSlot))
	want := "The combination of classroom and time slot must be unique."
	if err.Error() != want {
		t.Errorf("Error() = %q, want the conflict reason", err.Error())
	}
}
