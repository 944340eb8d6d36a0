package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"edusuite_backend/internals/features/school/transport/buses/model"
)

type CreateBusRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	PlateNumber *string `json:"plateNumber" validate:"omitempty,max=30"`
	DriverName  *string `json:"driverName" validate:"omitempty,max=150"`
	DriverPhone *string `json:"driverPhone" validate:"omitempty,max=40"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=1"`
	Route       *string `json:"route"`
}

func (r CreateBusRequest) ToModel() model.BusModel {
	return model.BusModel{
		Name:        strings.TrimSpace(r.Name),
		PlateNumber: r.PlateNumber,
		DriverName:  r.DriverName,
		DriverPhone: r.DriverPhone,
		Capacity:    r.Capacity,
		Route:       r.Route,
	}
}

type UpdateBusRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	PlateNumber *string `json:"plateNumber" validate:"omitempty,max=30"`
	DriverName  *string `json:"driverName" validate:"omitempty,max=150"`
	DriverPhone *string `json:"driverPhone" validate:"omitempty,max=40"`
	Capacity    *int    `json:"capacity" validate:"omitempty,min=1"`
	Route       *string `json:"route"`
}

func (r UpdateBusRequest) ToUpdates() map[string]any {
	u := map[string]any{}
	if r.Name != nil {
		u["name"] = strings.TrimSpace(*r.Name)
	}
	if r.PlateNumber != nil {
		u["plate_number"] = *r.PlateNumber
	}
	if r.DriverName != nil {
		u["driver_name"] = *r.DriverName
	}
	if r.DriverPhone != nil {
		u["driver_phone"] = *r.DriverPhone
	}
	if r.Capacity != nil {
		u["capacity"] = *r.Capacity
	}
	if r.Route != nil {
		u["route"] = *r.Route
	}
	return u
}

type BusResponse struct {
	ID          uuid.UUID `json:"id"`
	SchoolID    uuid.UUID `json:"schoolId"`
	Name        string    `json:"name"`
	PlateNumber *string   `json:"plateNumber"`
	DriverName  *string   `json:"driverName"`
	DriverPhone *string   `json:"driverPhone"`
	Capacity    *int      `json:"capacity"`
	Route       *string   `json:"route"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromModel(m *model.BusModel) BusResponse {
	return BusResponse{
		ID:          m.ID,
		SchoolID:    m.SchoolID,
		Name:        m.Name,
		PlateNumber: m.PlateNumber,
		DriverName:  m.DriverName,
		DriverPhone: m.DriverPhone,
		Capacity:    m.Capacity,
		Route:       m.Route,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(list []model.BusModel) []BusResponse {
	out := make([]BusResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
