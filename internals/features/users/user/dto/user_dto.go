package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"edusuite_backend/internals/features/users/user/model"
)

/* =========================================================
   REQUEST
========================================================= */

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required,max=150"`
	Role     string `json:"role" validate:"required"`
}

type InviteUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"omitempty,max=150"`
	Role     string `json:"role" validate:"required"`
}

type UpdateUserRequest struct {
	FullName *string `json:"fullName" validate:"omitempty,max=150"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

// ToUpdates expects Role to be normalised already.
func (r UpdateUserRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	if r.FullName != nil {
		u["full_name"] = strings.TrimSpace(*r.FullName)
	}
	if r.Role != nil {
		u["role"] = *r.Role
	}
	if r.IsActive != nil {
		u["is_active"] = *r.IsActive
	}
	return u
}

/* =========================================================
   RESPONSE
========================================================= */

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName"`
	Role      string     `json:"role"`
	SchoolID  *uuid.UUID `json:"schoolId"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName,
		Role:      m.Role,
		SchoolID:  m.SchoolID,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(list []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
