package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"edusuite_backend/internals/features/school/students/model"
	helper "edusuite_backend/internals/helpers"
)

/* =========================================================
   REQUEST
========================================================= */

type CreateStudentRequest struct {
	FirstName   string     `json:"firstName" validate:"required,max=100"`
	LastName    string     `json:"lastName" validate:"required,max=100"`
	Email       *string    `json:"email" validate:"omitempty,email"`
	DateOfBirth string     `json:"dateOfBirth"`
	Gender      *string    `json:"gender" validate:"omitempty,max=20"`
	Grade       int        `json:"grade" validate:"omitempty,min=1,max=20"`
	Section     *string    `json:"section" validate:"omitempty,max=20"`
	ClassID     *uuid.UUID `json:"classId"`

	BirthCertificate *string `json:"birthCertificate" validate:"omitempty,url"`
	PreviousReport   *string `json:"previousReport" validate:"omitempty,url"`
	MedicalRecords   *string `json:"medicalRecords" validate:"omitempty,url"`
	PassportPhoto    *string `json:"passportPhoto" validate:"omitempty,url"`
}

func (r CreateStudentRequest) ToModel() (model.StudentModel, error) {
	dob, err := helper.ParseDate("dateOfBirth", r.DateOfBirth)
	if err != nil {
		return model.StudentModel{}, err
	}
	first, last := strings.TrimSpace(r.FirstName), strings.TrimSpace(r.LastName)
	return model.StudentModel{
		FirstName:        first,
		LastName:         last,
		Name:             first + " " + last,
		Email:            r.Email,
		DateOfBirth:      dob,
		Gender:           r.Gender,
		Grade:            r.Grade,
		Section:          r.Section,
		ClassID:          r.ClassID,
		AttendanceStatus: model.AttendancePresent,
		BirthCertificate: r.BirthCertificate,
		PreviousReport:   r.PreviousReport,
		MedicalRecords:   r.MedicalRecords,
		PassportPhoto:    r.PassportPhoto,
	}, nil
}

type UpdateStudentRequest struct {
	FirstName        *string    `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName         *string    `json:"lastName" validate:"omitempty,min=1,max=100"`
	Email            *string    `json:"email" validate:"omitempty,email"`
	DateOfBirth      *string    `json:"dateOfBirth"`
	Gender           *string    `json:"gender" validate:"omitempty,max=20"`
	Grade            *int       `json:"grade" validate:"omitempty,min=1,max=20"`
	Section          *string    `json:"section" validate:"omitempty,max=20"`
	ClassID          *uuid.UUID `json:"classId"`
	AttendanceStatus *string    `json:"attendanceStatus" validate:"omitempty,max=20"`

	BirthCertificate *string `json:"birthCertificate" validate:"omitempty,url"`
	PreviousReport   *string `json:"previousReport" validate:"omitempty,url"`
	MedicalRecords   *string `json:"medicalRecords" validate:"omitempty,url"`
	PassportPhoto    *string `json:"passportPhoto" validate:"omitempty,url"`
}

// ToUpdates maps the request onto columns. The display name is rebuilt by the
// service when either half of it changes.
func (r UpdateStudentRequest) ToUpdates() (map[string]any, error) {
	u := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			u[col] = strings.TrimSpace(*v)
		}
	}
	set("first_name", r.FirstName)
	set("last_name", r.LastName)
	set("email", r.Email)
	set("gender", r.Gender)
	set("section", r.Section)
	set("attendance_status", r.AttendanceStatus)
	set("birth_certificate", r.BirthCertificate)
	set("previous_report", r.PreviousReport)
	set("medical_records", r.MedicalRecords)
	set("passport_photo", r.PassportPhoto)
	if r.Grade != nil {
		u["grade"] = *r.Grade
	}
	if r.ClassID != nil {
		u["class_id"] = *r.ClassID
	}
	if r.DateOfBirth != nil {
		dob, err := helper.ParseDate("dateOfBirth", *r.DateOfBirth)
		if err != nil {
			return nil, err
		}
		u["date_of_birth"] = dob
	}
	return u, nil
}

type ListStudentQuery struct {
	ClassID *uuid.UUID
	Grade   *int
}

// EnrollRequest: firstName/lastName are checked by the service so the
// failure carries the enrollment-specific message.
type EnrollRequest struct {
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	DateOfBirth    string     `json:"dateOfBirth"`
	Gender         *string    `json:"gender" validate:"omitempty,max=20"`
	Grade          int        `json:"grade" validate:"omitempty,min=1,max=20"`
	Section        *string    `json:"section" validate:"omitempty,max=20"`
	ClassID        *uuid.UUID `json:"classId"`
	CurriculumType string     `json:"curriculumType" validate:"omitempty,oneof=Nigerian British Both"`

	ParentEmail string  `json:"parentEmail" validate:"omitempty,email"`
	ParentName  string  `json:"parentName" validate:"omitempty,max=200"`
	ParentPhone *string `json:"parentPhone" validate:"omitempty,max=40"`

	BirthCertificate *string `json:"birthCertificate" validate:"omitempty,url"`
	PreviousReport   *string `json:"previousReport" validate:"omitempty,url"`
	MedicalRecords   *string `json:"medicalRecords" validate:"omitempty,url"`
	PassportPhoto    *string `json:"passportPhoto" validate:"omitempty,url"`
}

/* =========================================================
   RESPONSE
========================================================= */

type StudentResponse struct {
	ID               uuid.UUID  `json:"id"`
	SchoolID         uuid.UUID  `json:"schoolId"`
	UserID           *uuid.UUID `json:"userId"`
	ClassID          *uuid.UUID `json:"classId"`
	Name             string     `json:"name"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	Email            *string    `json:"email"`
	DateOfBirth      *string    `json:"dateOfBirth"`
	Gender           *string    `json:"gender"`
	Grade            int        `json:"grade"`
	Section          *string    `json:"section"`
	AttendanceStatus string     `json:"attendanceStatus"`
	BirthCertificate *string    `json:"birthCertificate"`
	PreviousReport   *string    `json:"previousReport"`
	MedicalRecords   *string    `json:"medicalRecords"`
	PassportPhoto    *string    `json:"passportPhoto"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:               m.ID,
		SchoolID:         m.SchoolID,
		UserID:           m.UserID,
		ClassID:          m.ClassID,
		Name:             m.Name,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		DateOfBirth:      helper.FormatDate(m.DateOfBirth),
		Gender:           m.Gender,
		Grade:            m.Grade,
		Section:          m.Section,
		AttendanceStatus: m.AttendanceStatus,
		BirthCertificate: m.BirthCertificate,
		PreviousReport:   m.PreviousReport,
		MedicalRecords:   m.MedicalRecords,
		PassportPhoto:    m.PassportPhoto,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func FromModels(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

type EnrollResponse struct {
	StudentID uuid.UUID  `json:"studentId"`
	Email     string     `json:"email"`
	ParentID  *uuid.UUID `json:"parentId,omitempty"`
}
