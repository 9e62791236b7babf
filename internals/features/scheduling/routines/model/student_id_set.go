// file: internals/features/scheduling/routines/model/student_id_set.go
package model

import (
	"database/sql/driver"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

/* =======================================================
   StudentIDSet: ordered set of student IDs.

   Persisted as a comma-joined string (the durable schema
   contract: the students+slot uniqueness constraint is a
   literal-string match on this column). In memory it is a
   genuine set: sorted, deduplicated, membership by exact
   token comparison, never substring.
   ======================================================= */

type StudentIDSet []uuid.UUID

// NewStudentIDSet returns the canonical (sorted, deduped) form of ids.
func NewStudentIDSet(ids []uuid.UUID) StudentIDSet {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make(StudentIDSet, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

// ParseStudentIDSet parses a comma-joined string into canonical form.
func ParseStudentIDSet(s string) (StudentIDSet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StudentIDSet{}, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid student id %q: %w", p, err)
		}
		ids = append(ids, id)
	}
	return NewStudentIDSet(ids), nil
}

// Contains reports exact membership. "1" never matches "12".
func (s StudentIDSet) Contains(id uuid.UUID) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// String is the canonical comma-joined serialization.
func (s StudentIDSet) String() string {
	parts := make([]string, len(s))
	for i, id := range s {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}

/* =======================
   Persistence edge
   ======================= */

func (s StudentIDSet) Value() (driver.Value, error) {
	return s.String(), nil
}

func (s *StudentIDSet) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*s = StudentIDSet{}
		return nil
	case string:
		parsed, err := ParseStudentIDSet(v)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case []byte:
		parsed, err := ParseStudentIDSet(string(v))
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	default:
		return fmt.Errorf("unsupported student id set source %T", src)
	}
}

// GormDataType keeps the column a plain text string.
func (StudentIDSet) GormDataType() string {
	return "text"
}
