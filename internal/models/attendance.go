package models

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

// AttendanceRecord holds one student's status for one course day.
// The sheet for a (course, date) pair is replaced wholesale on every
// submission, so a missing row means "no record", not "absent".
type AttendanceRecord struct {
	ID        string           `json:"id" gorm:"primaryKey;size:64"`
	CourseID  string           `json:"course_id" gorm:"not null;size:64;uniqueIndex:idx_attendance_course_student_date;index"`
	StudentID string           `json:"student_id" gorm:"not null;size:64;uniqueIndex:idx_attendance_course_student_date;index"`
	Date      string           `json:"date" gorm:"not null;size:10;uniqueIndex:idx_attendance_course_student_date"` // YYYY-MM-DD
	Status    AttendanceStatus `json:"status" gorm:"not null;size:10"`

	Course  *Course `json:"course,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	Student *User   `json:"student,omitempty" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// IsValidAttendanceStatus reports whether the status is a known value.
func IsValidAttendanceStatus(status AttendanceStatus) bool {
	switch status {
	case AttendancePresent, AttendanceLate, AttendanceAbsent, AttendanceExcused:
		return true
	}
	return false
}
