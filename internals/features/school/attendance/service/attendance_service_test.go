package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"edacademy_backend/internals/constants"
	"edacademy_backend/internals/features/school/attendance/dto"
	AttendanceModel "edacademy_backend/internals/features/school/attendance/model"
	ClassModel "edacademy_backend/internals/features/school/classes/model"
	SessionModel "edacademy_backend/internals/features/school/sessions/model"
	SubjectModel "edacademy_backend/internals/features/school/subjects/model"
	UserModel "edacademy_backend/internals/features/users/user/model"
)

type fixture struct {
	db      *gorm.DB
	svc     *AttendanceService
	teacher UserModel.UserModel
	class   ClassModel.ClassModel
	session SessionModel.SessionModel
	student UserModel.UserModel
}

func newFixture(t *testing.T) *fixture {
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

	teacher := UserModel.UserModel{FullName: "alice", Email: "alice@school.test", Password: "hashed", Role: constants.RoleTeacher}
	require.NoError(t, db.Create(&teacher).Error)

	class := ClassModel.ClassModel{Name: "Terminale A", TeacherID: &teacher.ID, CreatedByID: teacher.ID}
	require.NoError(t, db.Create(&class).Error)

	subject := SubjectModel.SubjectModel{Name: "Mathematics", ClassID: class.ID, TeacherID: &teacher.ID}
	require.NoError(t, db.Create(&subject).Error)

	session := SessionModel.SessionModel{
		Date:      time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local),
		StartTime: "08:00",
		EndTime:   "10:00",
		Room:      "B204",
		ClassID:   class.ID,
		SubjectID: subject.ID,
		TeacherID: teacher.ID,
	}
	require.NoError(t, db.Create(&session).Error)

	student := UserModel.UserModel{FullName: "carol", Email: "carol@school.test", Password: "hashed", Role: constants.RoleStudent, ClassID: &class.ID}
	require.NoError(t, db.Create(&student).Error)

	return &fixture{db: db, svc: NewAttendanceService(db), teacher: teacher, class: class, session: session, student: student}
}

func requireFiberStatus(t *testing.T, err error, status int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, status, fe.Code)
}

func TestMarkIsIdempotentUpsert(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.Mark(f.session.ID, []dto.AttendanceRecordInput{
		{StudentID: f.student.ID.String(), Status: AttendanceModel.StatusAbsent},
	}, constants.RoleTeacher, f.teacher.ID)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, AttendanceModel.StatusAbsent, first[0].Status)

	// Re-marking the same student replaces the status instead of duplicating.
	second, err := f.svc.Mark(f.session.ID, []dto.AttendanceRecordInput{
		{StudentID: f.student.ID.String(), Status: AttendanceModel.StatusLate},
	}, constants.RoleTeacher, f.teacher.ID)
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, AttendanceModel.StatusLate, second[0].Status)

	var count int64
	require.NoError(t, f.db.Model(&AttendanceModel.AttendanceModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestMarkPresentDropsJustification(t *testing.T) {
	f := newFixture(t)

	justified := AttendanceModel.JustificationJustified
	rows, err := f.svc.Mark(f.session.ID, []dto.AttendanceRecordInput{
		{StudentID: f.student.ID.String(), Status: AttendanceModel.StatusPresent, Justification: &justified},
	}, constants.RoleTeacher, f.teacher.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Nil(t, rows[0].Justification)
}

func TestMarkRequiresOwnership(t *testing.T) {
	f := newFixture(t)

	intruder := UserModel.UserModel{FullName: "bob", Email: "bob@school.test", Password: "hashed", Role: constants.RoleTeacher}
	require.NoError(t, f.db.Create(&intruder).Error)

	records := []dto.AttendanceRecordInput{{StudentID: f.student.ID.String(), Status: AttendanceModel.StatusPresent}}

	_, err := f.svc.Mark(f.session.ID, records, constants.RoleTeacher, intruder.ID)
	requireFiberStatus(t, err, fiber.StatusForbidden)

	// Admins can mark any session.
	_, err = f.svc.Mark(f.session.ID, records, constants.RoleAdmin, intruder.ID)
	require.NoError(t, err)
}

func TestMarkUnknownSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Mark(uuid.New(), []dto.AttendanceRecordInput{
		{StudentID: f.student.ID.String(), Status: AttendanceModel.StatusPresent},
	}, constants.RoleTeacher, f.teacher.ID)
	requireFiberStatus(t, err, fiber.StatusNotFound)
}

func TestUpdateJustification(t *testing.T) {
	f := newFixture(t)

	rows, err := f.svc.Mark(f.session.ID, []dto.AttendanceRecordInput{
		{StudentID: f.student.ID.String(), Status: AttendanceModel.StatusAbsent},
	}, constants.RoleTeacher, f.teacher.ID)
	require.NoError(t, err)

	updated, err := f.svc.UpdateJustification(rows[0].ID, AttendanceModel.JustificationJustified)
	require.NoError(t, err)
	require.NotNil(t, updated.Justification)
	require.Equal(t, AttendanceModel.JustificationJustified, *updated.Justification)

	_, err = f.svc.UpdateJustification(rows[0].ID, "MAYBE")
	requireFiberStatus(t, err, fiber.StatusBadRequest)

	_, err = f.svc.UpdateJustification(uuid.New(), AttendanceModel.JustificationJustified)
	requireFiberStatus(t, err, fiber.StatusNotFound)
}

func TestTeacherSessionsRoster(t *testing.T) {
	f := newFixture(t)

	other := UserModel.UserModel{FullName: "dave", Email: "dave@school.test", Password: "hashed", Role: constants.RoleStudent, ClassID: &f.class.ID}
	require.NoError(t, f.db.Create(&other).Error)

	_, err := f.svc.Mark(f.session.ID, []dto.AttendanceRecordInput{
		{StudentID: f.student.ID.String(), Status: AttendanceModel.StatusLate},
	}, constants.RoleTeacher, f.teacher.ID)
	require.NoError(t, err)

	sessions, err := f.svc.TeacherSessions(&f.teacher.ID, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, "08:00 - 10:00", sessions[0].Time)
	require.Equal(t, "Mathematics", sessions[0].Subject)
	require.Len(t, sessions[0].Students, 2)

	byName := map[string]dto.RosterStudentDTO{}
	for _, s := range sessions[0].Students {
		byName[s.Name] = s
	}
	require.NotNil(t, byName["carol"].Status)
	require.Equal(t, AttendanceModel.StatusLate, *byName["carol"].Status)
	// Unmarked students appear with a null status.
	require.Nil(t, byName["dave"].Status)
	require.Nil(t, byName["dave"].AttendanceID)

	none, err := f.svc.TeacherSessions(&f.teacher.ID, "2025-03-11")
	require.NoError(t, err)
	require.Empty(t, none)
}
