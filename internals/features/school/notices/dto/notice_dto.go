package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"edusuite_backend/internals/features/school/notices/model"
)

type CreateNoticeRequest struct {
	Title     string     `json:"title" validate:"required,max=200"`
	Content   string     `json:"content" validate:"required"`
	Audience  string     `json:"audience" validate:"omitempty,oneof=all students parents teachers staff"`
	Timestamp *time.Time `json:"timestamp"`
}

func (r CreateNoticeRequest) ToModel() model.NoticeModel {
	m := model.NoticeModel{
		Title:    strings.TrimSpace(r.Title),
		Content:  r.Content,
		Audience: r.Audience,
	}
	if r.Timestamp != nil {
		m.Timestamp = r.Timestamp.UTC()
	}
	return m
}

type UpdateNoticeRequest struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	Audience *string `json:"audience" validate:"omitempty,oneof=all students parents teachers staff"`
}

func (r UpdateNoticeRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	if r.Title != nil {
		u["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Content != nil {
		u["content"] = *r.Content
	}
	if r.Audience != nil {
		u["audience"] = *r.Audience
	}
	return u
}

type NoticeResponse struct {
	ID        uuid.UUID  `json:"id"`
	SchoolID  uuid.UUID  `json:"schoolId"`
	AuthorID  *uuid.UUID `json:"authorId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Audience  string     `json:"audience"`
	Timestamp time.Time  `json:"timestamp"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func FromModel(m *model.NoticeModel) NoticeResponse {
	return NoticeResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		AuthorID:  m.AuthorID,
		Title:     m.Title,
		Content:   m.Content,
		Audience:  m.Audience,
		Timestamp: m.Timestamp,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(list []model.NoticeModel) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
