package dto

// EntityRef is a reference to another entity by id only. Any other fields a
// client sends on the nested object are ignored; resolution always replaces
// the reference with the authoritative stored record.
type EntityRef struct {
	ID int64 `json:"id" example:"1"`
}

// CreateInPersonCourseRequest is the payload for creating an in-person course
type CreateInPersonCourseRequest struct {
	Name       string `json:"name" binding:"required" example:"Information Systems"`
	Code       string `json:"code" binding:"required" example:"SI001"`
	TotalHours int    `json:"totalHours" binding:"gte=0" example:"3600"`
	Room       string `json:"room" binding:"required" example:"Room 101"`
}

// CreateRemoteCourseRequest is the payload for creating a remote course
type CreateRemoteCourseRequest struct {
	Name       string `json:"name" binding:"required" example:"Business Administration"`
	Code       string `json:"code" binding:"required" example:"ADM001"`
	TotalHours int    `json:"totalHours" binding:"gte=0" example:"3000"`
	Platform   string `json:"platform" binding:"required" example:"EduConnect Platform"`
}

// UpdateCourseRequest is the payload for updating a course. The modality is
// part of the course's identity and cannot be changed, so it is not accepted.
type UpdateCourseRequest struct {
	Name       string `json:"name" binding:"required"`
	Code       string `json:"code" binding:"required"`
	TotalHours int    `json:"totalHours" binding:"gte=0"`
	Room       string `json:"room"`
	Platform   string `json:"platform"`
}

// SaveInstructorRequest is the payload for creating or updating an instructor
type SaveInstructorRequest struct {
	Name               string `json:"name" binding:"required" example:"Joao Silva"`
	Login              string `json:"login" binding:"required" example:"joao"`
	Password           string `json:"password" binding:"required" example:"secret"`
	Specialty          string `json:"specialty" example:"IT"`
	RegistrationNumber string `json:"registrationNumber" example:"REG001"`
}

// SaveStudentRequest is the payload for creating or updating a student.
// The course reference is optional and resolved by id before persistence.
type SaveStudentRequest struct {
	Name             string     `json:"name" binding:"required" example:"Pedro Oliveira"`
	Login            string     `json:"login" binding:"required" example:"pedro"`
	Password         string     `json:"password" binding:"required" example:"secret"`
	EnrollmentNumber string     `json:"enrollmentNumber" example:"MAT001"`
	Course           *EntityRef `json:"course,omitempty"`
}

// SaveSectionRequest is the payload for creating or updating a section.
// Instructor and course references are both required and resolved by id.
type SaveSectionRequest struct {
	Code       string      `json:"code" binding:"required" example:"SEC001"`
	Instructor *EntityRef  `json:"instructor,omitempty"`
	Course     *EntityRef  `json:"course,omitempty"`
	Students   []EntityRef `json:"students,omitempty"`
}

// DashboardResponse reports the current cardinality of each entity collection
type DashboardResponse struct {
	TotalStudents    int64 `json:"totalStudents" example:"2"`
	TotalInstructors int64 `json:"totalInstructors" example:"2"`
	TotalCourses     int64 `json:"totalCourses" example:"2"`
	TotalSections    int64 `json:"totalSections" example:"1"`
}
