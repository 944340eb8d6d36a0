package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"edusuite_backend/internals/features/school/teachers/model"
)

type CreateTeacherRequest struct {
	UserID        *uuid.UUID `json:"userId"`
	Name          string     `json:"name" validate:"required,max=200"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	Phone         *string    `json:"phone" validate:"omitempty,max=40"`
	Qualification *string    `json:"qualification" validate:"omitempty,max=200"`
	Subjects      []string   `json:"subjects" validate:"omitempty,dive,required,max=100"`
	Classes       []string   `json:"classes" validate:"omitempty,dive,required,max=100"`
}

func (r CreateTeacherRequest) ToModel() model.TeacherModel {
	return model.TeacherModel{
		UserID:        r.UserID,
		Name:          strings.TrimSpace(r.Name),
		Email:         r.Email,
		Phone:         r.Phone,
		Qualification: r.Qualification,
	}
}

// UpdateTeacherRequest: a non-nil Subjects or Classes replaces the whole list.
type UpdateTeacherRequest struct {
	UserID        *uuid.UUID `json:"userId"`
	Name          *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Email         *string    `json:"email" validate:"omitempty,email"`
	Phone         *string    `json:"phone" validate:"omitempty,max=40"`
	Qualification *string    `json:"qualification" validate:"omitempty,max=200"`
	Subjects      *[]string  `json:"subjects" validate:"omitempty,dive,required,max=100"`
	Classes       *[]string  `json:"classes" validate:"omitempty,dive,required,max=100"`
}

func (r UpdateTeacherRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	if r.UserID != nil {
		u["user_id"] = *r.UserID
	}
	if r.Name != nil {
		u["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		u["email"] = *r.Email
	}
	if r.Phone != nil {
		u["phone"] = *r.Phone
	}
	if r.Qualification != nil {
		u["qualification"] = *r.Qualification
	}
	return u
}

type TeacherResponse struct {
	ID            uuid.UUID  `json:"id"`
	SchoolID      uuid.UUID  `json:"schoolId"`
	UserID        *uuid.UUID `json:"userId"`
	Name          string     `json:"name"`
	Email         *string    `json:"email"`
	Phone         *string    `json:"phone"`
	Qualification *string    `json:"qualification"`
	Subjects      []string   `json:"subjects"`
	Classes       []string   `json:"classes"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Assignments are the derived subject and class lists of one teacher.
type Assignments struct {
	Subjects []string
	Classes  []string
}

func FromModel(m *model.TeacherModel, a Assignments) TeacherResponse {
	r := TeacherResponse{
		ID:            m.ID,
		SchoolID:      m.SchoolID,
		UserID:        m.UserID,
		Name:          m.Name,
		Email:         m.Email,
		Phone:         m.Phone,
		Qualification: m.Qualification,
		Subjects:      a.Subjects,
		Classes:       a.Classes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if r.Subjects == nil {
		r.Subjects = []string{}
	}
	if r.Classes == nil {
		r.Classes = []string{}
	}
	return r
}

func FromModels(list []model.TeacherModel, byTeacher map[uuid.UUID]Assignments) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i], byTeacher[list[i].ID]))
	}
	return out
}
