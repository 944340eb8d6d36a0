package dto

import (
	"time"

	"github.com/google/uuid"

	"edusuite_backend/internals/features/ai/assistant/model"
)

type AskRequest struct {
	Question string         `json:"question"`
	Options  map[string]any `json:"options"`
}

// ImageNeeded reads options.image_needed, defaulting to false.
func (r AskRequest) ImageNeeded() bool {
	v, _ := r.Options["image_needed"].(bool)
	return v
}

// AIResponse is the JSON shape the system prompt asks the model for.
type AIResponse struct {
	Answer            string   `json:"answer"`
	Summary           string   `json:"summary"`
	Sources           []string `json:"sources"`
	TokensEstimate    int      `json:"tokens_estimate"`
	Cached            bool     `json:"cached"`
	ImageNeeded       bool     `json:"image_needed"`
	ImageInstructions string   `json:"image_instructions"`
}

// Fallback wraps a model answer that was not valid JSON.
func Fallback(raw string) AIResponse {
	return AIResponse{
		Answer:  raw,
		Summary: "Standard text response",
		Sources: []string{},
	}
}

type CreateDocRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

type DocResponse struct {
	ID        uuid.UUID `json:"id"`
	SchoolID  uuid.UUID `json:"schoolId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromDoc(m *model.SchoolDocModel) DocResponse {
	return DocResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		Title:     m.Title,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromDocs(list []model.SchoolDocModel) []DocResponse {
	out := make([]DocResponse, 0, len(list))
	for i := range list {
		out = append(out, FromDoc(&list[i]))
	}
	return out
}
