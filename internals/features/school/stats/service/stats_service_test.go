package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"edacademy_backend/internals/constants"
	AttendanceModel "edacademy_backend/internals/features/school/attendance/model"
	ClassModel "edacademy_backend/internals/features/school/classes/model"
	SessionModel "edacademy_backend/internals/features/school/sessions/model"
	SubjectModel "edacademy_backend/internals/features/school/subjects/model"
	UserModel "edacademy_backend/internals/features/users/user/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&UserModel.UserModel{},
		&ClassModel.ClassModel{},
		&SubjectModel.SubjectModel{},
		&SessionModel.SessionModel{},
		&AttendanceModel.AttendanceModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name, role string, classID *uuid.UUID) UserModel.UserModel {
	t.Helper()
	u := UserModel.UserModel{FullName: name, Email: name + "@school.test", Password: "hashed", Role: role, ClassID: classID}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedSessions(t *testing.T, db *gorm.DB, class ClassModel.ClassModel, teacherID uuid.UUID, dates []time.Time) []SessionModel.SessionModel {
	t.Helper()
	subject := SubjectModel.SubjectModel{Name: "History", ClassID: class.ID, TeacherID: &teacherID}
	require.NoError(t, db.Create(&subject).Error)

	sessions := make([]SessionModel.SessionModel, 0, len(dates))
	for _, d := range dates {
		s := SessionModel.SessionModel{
			Date: d, StartTime: "08:00", EndTime: "10:00",
			ClassID: class.ID, SubjectID: subject.ID, TeacherID: teacherID,
		}
		require.NoError(t, db.Create(&s).Error)
		sessions = append(sessions, s)
	}
	return sessions
}

func mark(t *testing.T, db *gorm.DB, sessionID, studentID uuid.UUID, status string) {
	t.Helper()
	require.NoError(t, db.Create(&AttendanceModel.AttendanceModel{
		SessionID: sessionID, StudentID: studentID, Status: status,
	}).Error)
}

func pastDays(n int) []time.Time {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = base.AddDate(0, 0, i)
	}
	return out
}

func TestStudentRateNoSessions(t *testing.T) {
	db := setupDB(t)
	svc := NewStatsService(db)

	teacher := seedUser(t, db, "alice", constants.RoleTeacher, nil)
	class := ClassModel.ClassModel{Name: "Terminale A", CreatedByID: teacher.ID}
	require.NoError(t, db.Create(&class).Error)
	student := seedUser(t, db, "carol", constants.RoleStudent, &class.ID)

	rate, err := svc.StudentRate(student.ID)
	require.NoError(t, err)
	require.Zero(t, rate.Rate)
	require.Zero(t, rate.Present)
	require.Zero(t, rate.Absent)
	require.Zero(t, rate.Total)
}

func TestStudentRateNotAStudent(t *testing.T) {
	db := setupDB(t)
	svc := NewStatsService(db)

	teacher := seedUser(t, db, "alice", constants.RoleTeacher, nil)

	var fe *fiber.Error
	_, err := svc.StudentRate(teacher.ID)
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusNotFound, fe.Code)

	_, err = svc.StudentRate(uuid.New())
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestStudentRateFoldsUnmarkedIntoAbsent(t *testing.T) {
	db := setupDB(t)
	svc := NewStatsService(db)

	teacher := seedUser(t, db, "alice", constants.RoleTeacher, nil)
	class := ClassModel.ClassModel{Name: "Terminale A", TeacherID: &teacher.ID, CreatedByID: teacher.ID}
	require.NoError(t, db.Create(&class).Error)
	student := seedUser(t, db, "carol", constants.RoleStudent, &class.ID)

	// 10 sessions: 6 present, 1 late, 2 absent, 1 never marked.
	sessions := seedSessions(t, db, class, teacher.ID, pastDays(10))
	for i := 0; i < 6; i++ {
		mark(t, db, sessions[i].ID, student.ID, AttendanceModel.StatusPresent)
	}
	mark(t, db, sessions[6].ID, student.ID, AttendanceModel.StatusLate)
	mark(t, db, sessions[7].ID, student.ID, AttendanceModel.StatusAbsent)
	mark(t, db, sessions[8].ID, student.ID, AttendanceModel.StatusAbsent)

	rate, err := svc.StudentRate(student.ID)
	require.NoError(t, err)
	require.EqualValues(t, 10, rate.Total)
	require.EqualValues(t, 7, rate.Present)
	require.EqualValues(t, 3, rate.Absent)
	require.InDelta(t, 70.0, rate.Rate, 0.001)
	require.NotNil(t, rate.Details)
	require.EqualValues(t, 6, rate.Details.PresentStrict)
	require.EqualValues(t, 1, rate.Details.Late)
	require.EqualValues(t, 2, rate.Details.AbsentRecorded)
}

func TestClassStatsUnweightedAverage(t *testing.T) {
	db := setupDB(t)
	svc := NewStatsService(db)

	teacher := seedUser(t, db, "alice", constants.RoleTeacher, nil)
	class := ClassModel.ClassModel{Name: "Terminale A", TeacherID: &teacher.ID, CreatedByID: teacher.ID}
	require.NoError(t, db.Create(&class).Error)

	full := seedUser(t, db, "carol", constants.RoleStudent, &class.ID)
	half := seedUser(t, db, "dave", constants.RoleStudent, &class.ID)

	sessions := seedSessions(t, db, class, teacher.ID, pastDays(2))
	mark(t, db, sessions[0].ID, full.ID, AttendanceModel.StatusPresent)
	mark(t, db, sessions[1].ID, full.ID, AttendanceModel.StatusPresent)
	mark(t, db, sessions[0].ID, half.ID, AttendanceModel.StatusPresent)
	mark(t, db, sessions[1].ID, half.ID, AttendanceModel.StatusAbsent)

	stats, err := svc.ClassStats(class.ID)
	require.NoError(t, err)
	require.Len(t, stats.Students, 2)
	require.InDelta(t, 75.0, stats.AverageRate, 0.001)
}

func TestClassStatsEmptyAndMissing(t *testing.T) {
	db := setupDB(t)
	svc := NewStatsService(db)

	teacher := seedUser(t, db, "alice", constants.RoleTeacher, nil)
	class := ClassModel.ClassModel{Name: "Terminale A", CreatedByID: teacher.ID}
	require.NoError(t, db.Create(&class).Error)

	stats, err := svc.ClassStats(class.ID)
	require.NoError(t, err)
	require.Zero(t, stats.AverageRate)
	require.Empty(t, stats.Students)

	var fe *fiber.Error
	_, err = svc.ClassStats(uuid.New())
	require.ErrorAs(t, err, &fe)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestGlobalStats(t *testing.T) {
	db := setupDB(t)
	svc := NewStatsService(db)

	teacher := seedUser(t, db, "alice", constants.RoleTeacher, nil)
	seedUser(t, db, "admin", constants.RoleAdmin, nil)
	class := ClassModel.ClassModel{Name: "Terminale A", TeacherID: &teacher.ID, CreatedByID: teacher.ID}
	require.NoError(t, db.Create(&class).Error)
	for i := 0; i < 3; i++ {
		seedUser(t, db, fmt.Sprintf("student%d", i), constants.RoleStudent, &class.ID)
	}
	seedSessions(t, db, class, teacher.ID, pastDays(2))

	stats, err := svc.GlobalStats()
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.TotalStudents)
	require.EqualValues(t, 1, stats.TotalTeachers)
	require.EqualValues(t, 1, stats.TotalClasses)
	require.EqualValues(t, 2, stats.TotalSessions)
}

func TestTeacherStats(t *testing.T) {
	db := setupDB(t)
	svc := NewStatsService(db)

	teacher := seedUser(t, db, "alice", constants.RoleTeacher, nil)
	class := ClassModel.ClassModel{Name: "Terminale A", TeacherID: &teacher.ID, CreatedByID: teacher.ID}
	require.NoError(t, db.Create(&class).Error)
	student := seedUser(t, db, "carol", constants.RoleStudent, &class.ID)
	seedUser(t, db, "dave", constants.RoleStudent, &class.ID)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 8, 0, 0, 0, now.Location())
	past := today.AddDate(0, 0, -7)
	future := today.AddDate(0, 0, 7)
	sessions := seedSessions(t, db, class, teacher.ID, []time.Time{past, today, future})

	// Only the past session gets marked; today's stays fully unmarked.
	mark(t, db, sessions[0].ID, student.ID, AttendanceModel.StatusPresent)

	stats, err := svc.TeacherStats(teacher.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.TotalClasses)
	require.EqualValues(t, 2, stats.TotalStudents)
	require.EqualValues(t, 1, stats.TodaySessions)
	// Pending counts past-or-today sessions with zero attendance rows.
	require.EqualValues(t, 1, stats.PendingAttendance)
}

func TestTeacherStatsNoClasses(t *testing.T) {
	db := setupDB(t)
	svc := NewStatsService(db)

	teacher := seedUser(t, db, "alice", constants.RoleTeacher, nil)

	stats, err := svc.TeacherStats(teacher.ID)
	require.NoError(t, err)
	require.Zero(t, stats.TotalClasses)
	require.Zero(t, stats.TotalStudents)
	require.Zero(t, stats.TodaySessions)
	require.Zero(t, stats.PendingAttendance)
}
