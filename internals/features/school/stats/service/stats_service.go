package service

import (
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edacademy_backend/internals/constants"
	AttendanceModel "edacademy_backend/internals/features/school/attendance/model"
	ClassModel "edacademy_backend/internals/features/school/classes/model"
	SessionModel "edacademy_backend/internals/features/school/sessions/model"
	"edacademy_backend/internals/features/school/stats/dto"
	UserModel "edacademy_backend/internals/features/users/user/model"
)

// StatsService aggregates attendance data into reporting figures. Rates are
// percentages rounded to two decimals; LATE counts as present for the rate,
// and class sessions with no record for the student count as absent.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// StudentRate computes one student's attendance rate over every session of
// their class.
func (s *StatsService) StudentRate(studentID uuid.UUID) (*dto.StudentRateDTO, error) {
	var student UserModel.UserModel
	if err := s.DB.First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		return nil, err
	}
	if student.Role != constants.RoleStudent {
		return nil, fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	// A student without a class has no sessions to attend.
	var total int64
	if student.ClassID != nil {
		if err := s.DB.Model(&SessionModel.SessionModel{}).
			Where("class_id = ?", *student.ClassID).
			Count(&total).Error; err != nil {
			return nil, err
		}
	}
	if total == 0 {
		return &dto.StudentRateDTO{}, nil
	}

	var records []AttendanceModel.AttendanceModel
	if err := s.DB.Where("student_id = ?", studentID).Find(&records).Error; err != nil {
		return nil, err
	}

	var presentStrict, late, absentRecorded int64
	for _, rec := range records {
		switch rec.Status {
		case AttendanceModel.StatusPresent:
			presentStrict++
		case AttendanceModel.StatusLate:
			late++
		case AttendanceModel.StatusAbsent:
			absentRecorded++
		}
	}

	present := presentStrict + late
	// Sessions the student was never marked for fold into the absent total.
	absent := absentRecorded + (total - int64(len(records)))

	return &dto.StudentRateDTO{
		Rate:    round2(float64(present) / float64(total) * 100),
		Present: present,
		Absent:  absent,
		Total:   total,
		Details: &dto.StudentRateDetails{
			PresentStrict:  presentStrict,
			Late:           late,
			AbsentRecorded: absentRecorded,
		},
	}, nil
}

// ClassStats lists every student of a class with their individual rate plus
// the unweighted average across them.
func (s *StatsService) ClassStats(classID uuid.UUID) (*dto.ClassStatsDTO, error) {
	var class ClassModel.ClassModel
	if err := s.DB.First(&class, "id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
		}
		return nil, err
	}

	var students []UserModel.UserModel
	if err := s.DB.Where("class_id = ? AND role = ?", classID, constants.RoleStudent).
		Order("full_name ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	result := &dto.ClassStatsDTO{Students: make([]dto.ClassStudentRateDTO, 0, len(students))}
	if len(students) == 0 {
		return result, nil
	}

	var sum float64
	for _, student := range students {
		rate, err := s.StudentRate(student.ID)
		if err != nil {
			return nil, err
		}
		sum += rate.Rate
		result.Students = append(result.Students, dto.ClassStudentRateDTO{
			StudentID: student.ID.String(),
			FullName:  student.FullName,
			Rate:      rate.Rate,
		})
	}
	result.AverageRate = round2(sum / float64(len(students)))
	return result, nil
}

// GlobalStats returns school-wide headcounts.
func (s *StatsService) GlobalStats() (*dto.GlobalStatsDTO, error) {
	out := &dto.GlobalStatsDTO{}
	if err := s.DB.Model(&UserModel.UserModel{}).
		Where("role = ?", constants.RoleStudent).
		Count(&out.TotalStudents).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&UserModel.UserModel{}).
		Where("role = ?", constants.RoleTeacher).
		Count(&out.TotalTeachers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&ClassModel.ClassModel{}).Count(&out.TotalClasses).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&SessionModel.SessionModel{}).Count(&out.TotalSessions).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// TeacherStats summarizes the classes a teacher is responsible for: their
// size, today's sessions, and past sessions still missing attendance.
func (s *StatsService) TeacherStats(teacherID uuid.UUID) (*dto.TeacherStatsDTO, error) {
	var classIDs []uuid.UUID
	if err := s.DB.Model(&ClassModel.ClassModel{}).
		Where("teacher_id = ?", teacherID).
		Pluck("id", &classIDs).Error; err != nil {
		return nil, err
	}

	out := &dto.TeacherStatsDTO{TotalClasses: int64(len(classIDs))}
	if len(classIDs) == 0 {
		return out, nil
	}

	if err := s.DB.Model(&UserModel.UserModel{}).
		Where("class_id IN ? AND role = ?", classIDs, constants.RoleStudent).
		Count(&out.TotalStudents).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	if err := s.DB.Model(&SessionModel.SessionModel{}).
		Where("class_id IN ? AND date >= ? AND date < ?", classIDs, dayStart, dayEnd).
		Count(&out.TodaySessions).Error; err != nil {
		return nil, err
	}

	// Sessions already started or past with no attendance taken at all.
	if err := s.DB.Model(&SessionModel.SessionModel{}).
		Where("class_id IN ? AND date < ?", classIDs, dayEnd).
		Where("NOT EXISTS (SELECT 1 FROM attendances WHERE attendances.session_id = sessions.id)").
		Count(&out.PendingAttendance).Error; err != nil {
		return nil, err
	}

	return out, nil
}
