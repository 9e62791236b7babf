// file: internals/features/attendance/attendances/service/aggregator.go
package service

import (
	"sort"

	"github.com/google/uuid"

	"unischedule_backend/internals/features/attendance/attendances/model"
	routinemodel "unischedule_backend/internals/features/scheduling/routines/model"
)

/* =======================================================
   Attendance Aggregator: pure counting over fetched rows.

   A session counts as "completed" once it has at least one
   attendance record. A student "attended" a completed
   session when some record's present-set contains them
   (exact token membership); for a teacher every completed
   session counts as attended.
   ======================================================= */

type CourseStat struct {
	CourseID              uuid.UUID `json:"course_id"`
	CourseName            string    `json:"course_name"`
	TotalClassesCompleted int       `json:"total_classes_completed"`
	TotalClassesAttended  int       `json:"total_classes_attended"`
	TotalAbsentCount      int       `json:"total_absent_count"`
}

type ParticipantStat struct {
	UserID               uuid.UUID `json:"user_id"`
	Name                 string    `json:"name"`
	TotalClasses         int       `json:"total_classes"`
	TotalAttendedClasses int       `json:"total_attended_classes"`
}

// ComputeStudentCourseStats derives per-course stats for one student from
// the routines they participate in. Courses with zero completed sessions
// are omitted. Output order is stable (by course name, then id).
func ComputeStudentCourseStats(
	studentID uuid.UUID,
	routines []routinemodel.ClassRoutineModel,
	attendances []model.AttendanceModel,
	courseNames map[uuid.UUID]string,
) []CourseStat {
	byRoutine := attendanceByRoutine(attendances)

	stats := make(map[uuid.UUID]*CourseStat)
	for _, r := range routines {
		if !r.ClassRoutineStudentIDs.Contains(studentID) {
			continue
		}
		records := byRoutine[r.ClassRoutineID]
		if len(records) == 0 {
			continue
		}

		st := statFor(stats, r.ClassRoutineCourseID, courseNames)
		st.TotalClassesCompleted++

		for _, a := range records {
			if a.AttendanceStudentIDs.Contains(studentID) {
				st.TotalClassesAttended++
				break
			}
		}
	}
	return finalize(stats)
}

// ComputeTeacherCourseStats derives per-course stats for a lecturer. Any
// recorded attendance counts as attended, so attended always equals
// completed and the absent count is zero.
func ComputeTeacherCourseStats(
	teacherID uuid.UUID,
	routines []routinemodel.ClassRoutineModel,
	attendances []model.AttendanceModel,
	courseNames map[uuid.UUID]string,
) []CourseStat {
	byRoutine := attendanceByRoutine(attendances)

	stats := make(map[uuid.UUID]*CourseStat)
	for _, r := range routines {
		if r.ClassRoutineLecturerID != teacherID {
			continue
		}
		if len(byRoutine[r.ClassRoutineID]) == 0 {
			continue
		}
		st := statFor(stats, r.ClassRoutineCourseID, courseNames)
		st.TotalClassesCompleted++
		st.TotalClassesAttended++
	}
	return finalize(stats)
}

// ComputeAdminStats derives organisation-wide stats for every lecturer and
// student appearing in any attendance record. totalClasses counts scheduled
// routines the participant belongs to; totalAttendedClasses counts their
// attendance records. Participants with zero total classes are omitted.
func ComputeAdminStats(
	routines []routinemodel.ClassRoutineModel,
	attendances []model.AttendanceModel,
	userNames map[uuid.UUID]string,
) (lecturers []ParticipantStat, students []ParticipantStat) {
	lecturerIDs := make(map[uuid.UUID]struct{})
	studentIDs := make(map[uuid.UUID]struct{})
	for _, a := range attendances {
		lecturerIDs[a.AttendanceLecturerID] = struct{}{}
		for _, sid := range a.AttendanceStudentIDs {
			studentIDs[sid] = struct{}{}
		}
	}

	for id := range lecturerIDs {
		total, attended := 0, 0
		for _, r := range routines {
			if r.ClassRoutineLecturerID == id {
				total++
			}
		}
		for _, a := range attendances {
			if a.AttendanceLecturerID == id {
				attended++
			}
		}
		if total > 0 {
			lecturers = append(lecturers, ParticipantStat{
				UserID: id, Name: userNames[id],
				TotalClasses: total, TotalAttendedClasses: attended,
			})
		}
	}

	for id := range studentIDs {
		total, attended := 0, 0
		for _, r := range routines {
			if r.ClassRoutineStudentIDs.Contains(id) {
				total++
			}
		}
		for _, a := range attendances {
			if a.AttendanceStudentIDs.Contains(id) {
				attended++
			}
		}
		if total > 0 {
			students = append(students, ParticipantStat{
				UserID: id, Name: userNames[id],
				TotalClasses: total, TotalAttendedClasses: attended,
			})
		}
	}

	sortParticipants(lecturers)
	sortParticipants(students)
	return lecturers, students
}

func attendanceByRoutine(attendances []model.AttendanceModel) map[uuid.UUID][]model.AttendanceModel {
	out := make(map[uuid.UUID][]model.AttendanceModel, len(attendances))
	for _, a := range attendances {
		out[a.AttendanceClassRoutineID] = append(out[a.AttendanceClassRoutineID], a)
	}
	return out
}

func statFor(stats map[uuid.UUID]*CourseStat, courseID uuid.UUID, names map[uuid.UUID]string) *CourseStat {
	st, ok := stats[courseID]
	if !ok {
		st = &CourseStat{CourseID: courseID, CourseName: names[courseID]}
		stats[courseID] = st
	}
	return st
}

func finalize(stats map[uuid.UUID]*CourseStat) []CourseStat {
	out := make([]CourseStat, 0, len(stats))
	for _, st := range stats {
		st.TotalAbsentCount = st.TotalClassesCompleted - st.TotalClassesAttended
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CourseName != out[j].CourseName {
			return out[i].CourseName < out[j].CourseName
		}
		return out[i].CourseID.String() < out[j].CourseID.String()
	})
	return out
}

func sortParticipants(stats []ParticipantStat) {
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Name != stats[j].Name {
			return stats[i].Name < stats[j].Name
		}
		return stats[i].UserID.String() < stats[j].UserID.String()
	})
}
