package dto

import (
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"edusuite_backend/internals/features/schools/school/model"
)

/* =========================================================
   REQUEST
========================================================= */

type CreateSchoolRequest struct {
	Name     string         `json:"name" validate:"required,min=2,max=200"`
	Email    *string        `json:"email" validate:"omitempty,email"`
	Phone    *string        `json:"phone" validate:"omitempty,max=40"`
	Address  *string        `json:"address"`
	Metadata map[string]any `json:"metadata"`
}

func (r CreateSchoolRequest) ToModel() model.SchoolModel {
	m := model.SchoolModel{
		Name:    strings.TrimSpace(r.Name),
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
	if r.Metadata != nil {
		if b, err := sonic.Marshal(r.Metadata); err == nil {
			m.Metadata = datatypes.JSON(b)
		}
	}
	return m
}

type UpdateSchoolRequest struct {
	Name     *string        `json:"name" validate:"omitempty,min=2,max=200"`
	Email    *string        `json:"email" validate:"omitempty,email"`
	Phone    *string        `json:"phone" validate:"omitempty,max=40"`
	Address  *string        `json:"address"`
	Metadata map[string]any `json:"metadata"`
}

func (r UpdateSchoolRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	if r.Name != nil {
		u["name"] = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		u["email"] = *r.Email
	}
	if r.Phone != nil {
		u["phone"] = *r.Phone
	}
	if r.Address != nil {
		u["address"] = *r.Address
	}
	if r.Metadata != nil {
		if b, err := sonic.Marshal(r.Metadata); err == nil {
			u["metadata"] = datatypes.JSON(b)
		}
	}
	return u
}

/* =========================================================
   RESPONSE
========================================================= */

type SchoolResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Email     *string        `json:"email"`
	Phone     *string        `json:"phone"`
	Address   *string        `json:"address"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func FromModel(m *model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		Metadata:  m.Metadata,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromModels(list []model.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
