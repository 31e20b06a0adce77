package dto

// StudentRateDetails breaks the headline numbers down by raw status.
type StudentRateDetails struct {
	PresentStrict  int64 `json:"presentStrict"`
	Late           int64 `json:"late"`
	AbsentRecorded int64 `json:"absentRecorded"`
}

// StudentRateDTO reports a student's attendance rate over their class
// sessions. Sessions without any record count as absent in the report.
type StudentRateDTO struct {
	Rate    float64             `json:"rate"`
	Present int64               `json:"present"`
	Absent  int64               `json:"absent"`
	Total   int64               `json:"total"`
	Details *StudentRateDetails `json:"details,omitempty"`
}

type ClassStudentRateDTO struct {
	StudentID string  `json:"studentId"`
	FullName  string  `json:"fullName"`
	Rate      float64 `json:"rate"`
}

type ClassStatsDTO struct {
	AverageRate float64               `json:"averageRate"`
	Students    []ClassStudentRateDTO `json:"students"`
}

type GlobalStatsDTO struct {
	TotalStudents int64 `json:"totalStudents"`
	TotalTeachers int64 `json:"totalTeachers"`
	TotalClasses  int64 `json:"totalClasses"`
	TotalSessions int64 `json:"totalSessions"`
}

type TeacherStatsDTO struct {
	TotalClasses      int64 `json:"totalClasses"`
	TotalStudents     int64 `json:"totalStudents"`
	TodaySessions     int64 `json:"todaySessions"`
	PendingAttendance int64 `json:"pendingAttendance"`
}
