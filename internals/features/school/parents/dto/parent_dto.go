package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"edusuite_backend/internals/features/school/parents/model"
)

type CreateParentRequest struct {
	UserID   *uuid.UUID  `json:"userId"`
	Name     string      `json:"name" validate:"required,max=200"`
	Email    *string     `json:"email" validate:"omitempty,email"`
	Phone    *string     `json:"phone" validate:"omitempty,max=40"`
	Address  *string     `json:"address"`
	ChildIDs []uuid.UUID `json:"childIds"`
}

func (r CreateParentRequest) ToModel() model.ParentModel {
	m := model.ParentModel{
		UserID:  r.UserID,
		Name:    strings.TrimSpace(r.Name),
		Phone:   r.Phone,
		Address: r.Address,
	}
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		m.Email = &e
	}
	return m
}

type UpdateParentRequest struct {
	UserID  *uuid.UUID `json:"userId"`
	Name    *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Email   *string    `json:"email" validate:"omitempty,email"`
	Phone   *string    `json:"phone" validate:"omitempty,max=40"`
	Address *string    `json:"address"`
}

func (r UpdateParentRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	if r.UserID != nil {
		u["user_id"] = *r.UserID
	}
	if r.Name != nil {
		u["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		u["email"] = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	if r.Phone != nil {
		u["phone"] = *r.Phone
	}
	if r.Address != nil {
		u["address"] = *r.Address
	}
	return u
}

type ParentResponse struct {
	ID        uuid.UUID   `json:"id"`
	SchoolID  uuid.UUID   `json:"schoolId"`
	UserID    *uuid.UUID  `json:"userId"`
	Name      string      `json:"name"`
	Email     *string     `json:"email"`
	Phone     *string     `json:"phone"`
	Address   *string     `json:"address"`
	ChildIDs  []uuid.UUID `json:"childIds"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func FromModel(m *model.ParentModel, childIDs []uuid.UUID) ParentResponse {
	if childIDs == nil {
		childIDs = []uuid.UUID{}
	}
	return ParentResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		UserID:    m.UserID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		ChildIDs:  childIDs,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(list []model.ParentModel, children map[uuid.UUID][]uuid.UUID) []ParentResponse {
	out := make([]ParentResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i], children[list[i].ID]))
	}
	return out
}
