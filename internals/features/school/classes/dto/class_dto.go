package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"edusuite_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Grade    int    `json:"grade" validate:"required,min=1,max=20"`
	Section  string `json:"section" validate:"omitempty,max=20"`
	Capacity *int   `json:"capacity" validate:"omitempty,min=1"`
}

func (r CreateClassRequest) ToModel() model.ClassModel {
	return model.ClassModel{
		Name:     strings.TrimSpace(r.Name),
		Grade:    r.Grade,
		Section:  strings.ToUpper(strings.TrimSpace(r.Section)),
		Capacity: r.Capacity,
	}
}

type UpdateClassRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Grade    *int    `json:"grade" validate:"omitempty,min=1,max=20"`
	Section  *string `json:"section" validate:"omitempty,max=20"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=1"`
}

func (r UpdateClassRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	if r.Name != nil {
		u["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Grade != nil {
		u["grade"] = *r.Grade
	}
	if r.Section != nil {
		u["section"] = strings.ToUpper(strings.TrimSpace(*r.Section))
	}
	if r.Capacity != nil {
		u["capacity"] = *r.Capacity
	}
	return u
}

type ClassResponse struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"schoolId"`
	Name      string    `json:"name"`
	Grade     int       `json:"grade"`
	Section   string    `json:"section"`
	Capacity  *int      `json:"capacity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromModel(m *model.ClassModel) ClassResponse {
	return ClassResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		Name:      m.Name,
		Grade:     m.Grade,
		Section:   m.Section,
		Capacity:  m.Capacity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(list []model.ClassModel) []ClassResponse {
	out := make([]ClassResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
