package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"edusuite_backend/internals/features/finance/fees/model"
	helper "edusuite_backend/internals/helpers"
)

type CreateFeeRequest struct {
	StudentID  uuid.UUID `json:"studentId" validate:"required"`
	Title      string    `json:"title" validate:"required,max=200"`
	Term       *string   `json:"term" validate:"omitempty,max=50"`
	Amount     float64   `json:"amount" validate:"required,gt=0"`
	PaidAmount float64   `json:"paidAmount" validate:"omitempty,gte=0"`
	Status     string    `json:"status" validate:"omitempty,oneof=Pending Paid Overdue"`
	DueDate    string    `json:"dueDate"`
}

func (r CreateFeeRequest) ToModel() (model.FeeModel, error) {
	due, err := helper.ParseDate("dueDate", r.DueDate)
	if err != nil {
		return model.FeeModel{}, err
	}
	m := model.FeeModel{
		StudentID:  r.StudentID,
		Title:      strings.TrimSpace(r.Title),
		Term:       r.Term,
		Amount:     r.Amount,
		PaidAmount: r.PaidAmount,
		Status:     r.Status,
		DueDate:    due,
	}
	if m.Status == model.StatusPaid {
		now := time.Now().UTC()
		m.PaymentDate = &now
	}
	return m, nil
}

type UpdateFeeRequest struct {
	StudentID  *uuid.UUID `json:"studentId"`
	Title      *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Term       *string    `json:"term" validate:"omitempty,max=50"`
	Amount     *float64   `json:"amount" validate:"omitempty,gt=0"`
	PaidAmount *float64   `json:"paidAmount" validate:"omitempty,gte=0"`
	Status     *string    `json:"status" validate:"omitempty,oneof=Pending Paid Overdue"`
	DueDate    *string    `json:"dueDate"`
}

func (r UpdateFeeRequest) ToUpdates() (map[string]any, error) {
	u := map[string]any{}
	if r.StudentID != nil {
		u["student_id"] = *r.StudentID
	}
	if r.Title != nil {
		u["title"] = strings.TrimSpace(*r.Title)
	}
	if r.Term != nil {
		u["term"] = *r.Term
	}
	if r.Amount != nil {
		u["amount"] = *r.Amount
	}
	if r.PaidAmount != nil {
		u["paid_amount"] = *r.PaidAmount
	}
	if r.Status != nil {
		u["status"] = *r.Status
		if *r.Status == model.StatusPaid {
			u["payment_date"] = time.Now().UTC()
		} else {
			u["payment_date"] = nil
		}
	}
	if r.DueDate != nil {
		due, err := helper.ParseDate("dueDate", *r.DueDate)
		if err != nil {
			return nil, err
		}
		u["due_date"] = due
	}
	return u, nil
}

// UpdateStatusRequest: status is checked by the service for its own message.
type UpdateStatusRequest struct {
	Status     string   `json:"status"`
	PaidAmount *float64 `json:"paidAmount" validate:"omitempty,gte=0"`
}

type FeeResponse struct {
	ID          uuid.UUID  `json:"id"`
	SchoolID    uuid.UUID  `json:"schoolId"`
	StudentID   uuid.UUID  `json:"studentId"`
	Title       string     `json:"title"`
	Term        *string    `json:"term"`
	Amount      float64    `json:"amount"`
	PaidAmount  float64    `json:"paidAmount"`
	Status      string     `json:"status"`
	DueDate     *string    `json:"dueDate"`
	PaymentDate *time.Time `json:"paymentDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func FromModel(m *model.FeeModel) FeeResponse {
	return FeeResponse{
		ID:          m.ID,
		SchoolID:    m.SchoolID,
		StudentID:   m.StudentID,
		Title:       m.Title,
		Term:        m.Term,
		Amount:      m.Amount,
		PaidAmount:  m.PaidAmount,
		Status:      m.Status,
		DueDate:     helper.FormatDate(m.DueDate),
		PaymentDate: m.PaymentDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(list []model.FeeModel) []FeeResponse {
	out := make([]FeeResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

type ListFeeQuery struct {
	StudentID *uuid.UUID
	Status    string
}
