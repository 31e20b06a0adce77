package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"edacademy_backend/internals/constants"
	ClassModel "edacademy_backend/internals/features/school/classes/model"
	"edacademy_backend/internals/features/school/sessions/dto"
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
	))
	return db
}

func seedTeacher(t *testing.T, db *gorm.DB, name string) UserModel.UserModel {
	t.Helper()
	teacher := UserModel.UserModel{
		FullName: name,
		Email:    name + "@school.test",
		Password: "hashed",
		Role:     constants.RoleTeacher,
	}
	require.NoError(t, db.Create(&teacher).Error)
	return teacher
}

func seedClassWithSubject(t *testing.T, db *gorm.DB, teacher UserModel.UserModel) (ClassModel.ClassModel, SubjectModel.SubjectModel) {
	t.Helper()
	class := ClassModel.ClassModel{Name: "Terminale A", TeacherID: &teacher.ID, CreatedByID: teacher.ID}
	require.NoError(t, db.Create(&class).Error)
	subject := SubjectModel.SubjectModel{Name: "Mathematics", ClassID: class.ID, TeacherID: &teacher.ID}
	require.NoError(t, db.Create(&subject).Error)
	return class, subject
}

func requireFiberStatus(t *testing.T, err error, status int) {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, status, fe.Code)
}

func TestCreateSession(t *testing.T) {
	db := setupDB(t)
	svc := NewSessionService(db)
	teacher := seedTeacher(t, db, "alice")
	class, subject := seedClassWithSubject(t, db, teacher)

	session, err := svc.Create(dto.CreateSessionRequest{
		Date:      "2025-03-10",
		StartTime: "08:00",
		EndTime:   "10:00",
		Room:      "B204",
		ClassID:   class.ID.String(),
		SubjectID: subject.ID.String(),
	}, teacher.ID)
	require.NoError(t, err)
	require.Equal(t, class.ID, session.ClassID)
	require.Equal(t, teacher.ID, session.TeacherID)
	require.Equal(t, "08:00", session.StartTime)

	var count int64
	require.NoError(t, db.Model(&SessionModel.SessionModel{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateSessionSubjectNotFound(t *testing.T) {
	db := setupDB(t)
	svc := NewSessionService(db)
	teacher := seedTeacher(t, db, "alice")
	class, _ := seedClassWithSubject(t, db, teacher)

	_, err := svc.Create(dto.CreateSessionRequest{
		Date:      "2025-03-10",
		StartTime: "08:00",
		EndTime:   "10:00",
		ClassID:   class.ID.String(),
		SubjectID: uuid.NewString(),
	}, teacher.ID)
	requireFiberStatus(t, err, fiber.StatusNotFound)
}

func TestCreateSessionSubjectClassMismatch(t *testing.T) {
	db := setupDB(t)
	svc := NewSessionService(db)
	teacher := seedTeacher(t, db, "alice")
	_, subject := seedClassWithSubject(t, db, teacher)

	other := ClassModel.ClassModel{Name: "Premiere B", CreatedByID: teacher.ID}
	require.NoError(t, db.Create(&other).Error)

	_, err := svc.Create(dto.CreateSessionRequest{
		Date:      "2025-03-10",
		StartTime: "08:00",
		EndTime:   "10:00",
		ClassID:   other.ID.String(),
		SubjectID: subject.ID.String(),
	}, teacher.ID)
	requireFiberStatus(t, err, fiber.StatusBadRequest)
}

func TestUpdateSessionOwnership(t *testing.T) {
	db := setupDB(t)
	svc := NewSessionService(db)
	owner := seedTeacher(t, db, "alice")
	intruder := seedTeacher(t, db, "bob")
	class, subject := seedClassWithSubject(t, db, owner)

	session, err := svc.Create(dto.CreateSessionRequest{
		Date:      "2025-03-10",
		StartTime: "08:00",
		EndTime:   "10:00",
		ClassID:   class.ID.String(),
		SubjectID: subject.ID.String(),
	}, owner.ID)
	require.NoError(t, err)

	room := "C101"
	_, err = svc.Update(session.ID, dto.UpdateSessionRequest{Room: &room}, intruder.ID)
	requireFiberStatus(t, err, fiber.StatusForbidden)

	updated, err := svc.Update(session.ID, dto.UpdateSessionRequest{Room: &room}, owner.ID)
	require.NoError(t, err)
	require.Equal(t, "C101", updated.Room)
}

func TestUpdateSessionMissing(t *testing.T) {
	db := setupDB(t)
	svc := NewSessionService(db)
	teacher := seedTeacher(t, db, "alice")

	_, err := svc.Update(uuid.New(), dto.UpdateSessionRequest{}, teacher.ID)
	requireFiberStatus(t, err, fiber.StatusNotFound)
}

func TestDeleteSessionOwnership(t *testing.T) {
	db := setupDB(t)
	svc := NewSessionService(db)
	owner := seedTeacher(t, db, "alice")
	intruder := seedTeacher(t, db, "bob")
	class, subject := seedClassWithSubject(t, db, owner)

	session, err := svc.Create(dto.CreateSessionRequest{
		Date:      "2025-03-10",
		StartTime: "08:00",
		EndTime:   "10:00",
		ClassID:   class.ID.String(),
		SubjectID: subject.ID.String(),
	}, owner.ID)
	require.NoError(t, err)

	requireFiberStatus(t, svc.Delete(session.ID, intruder.ID), fiber.StatusForbidden)
	require.NoError(t, svc.Delete(session.ID, owner.ID))

	var count int64
	require.NoError(t, db.Model(&SessionModel.SessionModel{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestListSessionsDateFilter(t *testing.T) {
	db := setupDB(t)
	svc := NewSessionService(db)
	teacher := seedTeacher(t, db, "alice")
	class, subject := seedClassWithSubject(t, db, teacher)

	for _, day := range []string{"2025-03-10", "2025-03-11"} {
		_, err := svc.Create(dto.CreateSessionRequest{
			Date:      day,
			StartTime: "08:00",
			EndTime:   "10:00",
			ClassID:   class.ID.String(),
			SubjectID: subject.ID.String(),
		}, teacher.ID)
		require.NoError(t, err)
	}

	all, err := svc.List(dto.SessionFilters{ClassID: class.ID.String()})
	require.NoError(t, err)
	require.Len(t, all, 2)

	oneDay, err := svc.List(dto.SessionFilters{Date: "2025-03-10"})
	require.NoError(t, err)
	require.Len(t, oneDay, 1)
	require.Equal(t, 10, oneDay[0].Date.Day())

	_, err = svc.List(dto.SessionFilters{Date: "not-a-date"})
	requireFiberStatus(t, err, fiber.StatusBadRequest)
}
