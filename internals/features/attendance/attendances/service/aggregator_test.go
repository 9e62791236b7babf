package service

import (
	"testing"

	"github.com/google/uuid"

	"unischedule_backend/internals/features/attendance/attendances/model"
	routinemodel "unischedule_backend/internals/features/scheduling/routines/model"
)

var (
	courseMath = uuid.MustParse("11111111-0000-0000-0000-000000000001")
	coursePhys = uuid.MustParse("11111111-0000-0000-0000-000000000002")

	lecturer = uuid.MustParse("22222222-0000-0000-0000-000000000001")
	student1 = uuid.MustParse("33333333-0000-0000-0000-000000000001")
	student2 = uuid.MustParse("33333333-0000-0000-0000-000000000002")

	courseNames = map[uuid.UUID]string{
		courseMath: "Mathematics",
		coursePhys: "Physics",
	}
)

func routine(courseID uuid.UUID, students ...uuid.UUID) routinemodel.ClassRoutineModel {
	return routinemodel.ClassRoutineModel{
		ClassRoutineID:         uuid.New(),
		ClassRoutineCourseID:   courseID,
		ClassRoutineLecturerID: lecturer,
		ClassRoutineStudentIDs: routinemodel.NewStudentIDSet(students),
	}
}

func record(routineID uuid.UUID, present ...uuid.UUID) model.AttendanceModel {
	return model.AttendanceModel{
		AttendanceID:             uuid.New(),
		AttendanceClassRoutineID: routineID,
		AttendanceLecturerID:     lecturer,
		AttendanceStudentIDs:     routinemodel.NewStudentIDSet(present),
	}
}

func TestComputeStudentCourseStats(t *testing.T) {
	// Three math sessions for student1: present, absent, and not yet held.
	r1 := routine(courseMath, student1, student2)
	r2 := routine(courseMath, student1, student2)
	r3 := routine(courseMath, student1, student2)
	routines := []routinemodel.ClassRoutineModel{r1, r2, r3}
	attendances := []model.AttendanceModel{
		record(r1.ClassRoutineID, student1, student2),
		record(r2.ClassRoutineID, student2),
	}

	stats := ComputeStudentCourseStats(student1, routines, attendances, courseNames)
	if len(stats) != 1 {
		t.Fatalf("expected 1 course, got %d", len(stats))
	}
	st := stats[0]
	if st.CourseName != "Mathematics" {
		t.Errorf("course name = %q", st.CourseName)
	}
	if st.TotalClassesCompleted != 2 {
		t.Errorf("completed = %d, want 2 (the unheld session does not count)", st.TotalClassesCompleted)
	}
	if st.TotalClassesAttended != 1 {
		t.Errorf("attended = %d, want 1", st.TotalClassesAttended)
	}
	if st.TotalAbsentCount != 1 {
		t.Errorf("absent = %d, want 1", st.TotalAbsentCount)
	}
}

func TestComputeStudentCourseStats_OmitsNonMembers(t *testing.T) {
	r := routine(coursePhys, student2)
	attendances := []model.AttendanceModel{record(r.ClassRoutineID, student2)}

	stats := ComputeStudentCourseStats(student1, []routinemodel.ClassRoutineModel{r}, attendances, courseNames)
	if len(stats) != 0 {
		t.Errorf("student1 is not enrolled in physics, got %v", stats)
	}
}

func TestComputeStudentCourseStats_StableOrder(t *testing.T) {
	rM := routine(courseMath, student1)
	rP := routine(coursePhys, student1)
	routines := []routinemodel.ClassRoutineModel{rP, rM}
	attendances := []model.AttendanceModel{
		record(rP.ClassRoutineID, student1),
		record(rM.ClassRoutineID, student1),
	}

	first := ComputeStudentCourseStats(student1, routines, attendances, courseNames)
	second := ComputeStudentCourseStats(student1, routines, attendances, courseNames)

	if len(first) != 2 || first[0].CourseName != "Mathematics" || first[1].CourseName != "Physics" {
		t.Fatalf("expected [Mathematics Physics], got %v", first)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("repeated computation diverged at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestComputeTeacherCourseStats(t *testing.T) {
	r1 := routine(courseMath, student1)
	r2 := routine(courseMath, student1)
	routines := []routinemodel.ClassRoutineModel{r1, r2}
	attendances := []model.AttendanceModel{record(r1.ClassRoutineID, student1)}

	stats := ComputeTeacherCourseStats(lecturer, routines, attendances, courseNames)
	if len(stats) != 1 {
		t.Fatalf("expected 1 course, got %d", len(stats))
	}
	st := stats[0]
	if st.TotalClassesCompleted != 1 || st.TotalClassesAttended != 1 {
		t.Errorf("teacher attended must equal completed, got %+v", st)
	}
	if st.TotalAbsentCount != 0 {
		t.Errorf("teacher absent count must be zero, got %d", st.TotalAbsentCount)
	}

	other := uuid.MustParse("22222222-0000-0000-0000-000000000099")
	if got := ComputeTeacherCourseStats(other, routines, attendances, courseNames); len(got) != 0 {
		t.Errorf("other lecturer has no routines, got %v", got)
	}
}

func TestComputeAdminStats(t *testing.T) {
	r1 := routine(courseMath, student1, student2)
	r2 := routine(courseMath, student1)
	routines := []routinemodel.ClassRoutineModel{r1, r2}
	attendances := []model.AttendanceModel{
		record(r1.ClassRoutineID, student1, student2),
		record(r2.ClassRoutineID, student1),
	}
	names := map[uuid.UUID]string{
		lecturer: "Alice Lecturer",
		student1: "Bob Student",
		student2: "Carol Student",
	}

	lecturers, students := ComputeAdminStats(routines, attendances, names)

	if len(lecturers) != 1 {
		t.Fatalf("expected 1 lecturer, got %d", len(lecturers))
	}
	if lecturers[0].TotalClasses != 2 || lecturers[0].TotalAttendedClasses != 2 {
		t.Errorf("lecturer stats = %+v", lecturers[0])
	}

	if len(students) != 2 {
		t.Fatalf("expected 2 students, got %d", len(students))
	}
	if students[0].Name != "Bob Student" || students[1].Name != "Carol Student" {
		t.Errorf("students not sorted by name: %v", students)
	}
	bob, carol := students[0], students[1]
	if bob.TotalClasses != 2 || bob.TotalAttendedClasses != 2 {
		t.Errorf("bob stats = %+v", bob)
	}
	if carol.TotalClasses != 1 || carol.TotalAttendedClasses != 1 {
		t.Errorf("carol stats = %+v", carol)
	}
}

func TestComputeAdminStats_OmitsZeroTotals(t *testing.T) {
	// student2 appears in a record for a routine they are not scheduled in.
	r := routine(courseMath, student1)
	attendances := []model.AttendanceModel{record(r.ClassRoutineID, student1, student2)}
	names := map[uuid.UUID]string{lecturer: "Alice", student1: "Bob", student2: "Carol"}

	_, students := ComputeAdminStats([]routinemodel.ClassRoutineModel{r}, attendances, names)
	for _, st := range students {
		if st.UserID == student2 {
			t.Errorf("participant with zero scheduled classes must be omitted: %+v", st)
		}
	}
}
