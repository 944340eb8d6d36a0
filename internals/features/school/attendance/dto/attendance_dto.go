package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"edusuite_backend/internals/features/school/attendance/model"
	helper "edusuite_backend/internals/helpers"
)

type MarkRecord struct {
	StudentID uuid.UUID  `json:"studentId" validate:"required"`
	ClassID   *uuid.UUID `json:"classId"`
	Date      string     `json:"date" validate:"required"`
	Status    string     `json:"status" validate:"required,oneof=Present Absent Late Excused"`
	Notes     *string    `json:"notes" validate:"omitempty,max=1000"`
}

// SaveAttendanceRequest: a nil Records slice is rejected by the controller.
type SaveAttendanceRequest struct {
	Records []MarkRecord `json:"records" validate:"dive"`
}

func (r MarkRecord) ToModel() (model.AttendanceModel, error) {
	d, err := helper.ParseDate("date", r.Date)
	if err != nil {
		return model.AttendanceModel{}, err
	}
	if d == nil {
		return model.AttendanceModel{}, helper.ErrBadRequest("date is required")
	}
	m := model.AttendanceModel{
		StudentID: r.StudentID,
		ClassID:   r.ClassID,
		Date:      *d,
		Status:    r.Status,
	}
	if r.Notes != nil {
		n := strings.TrimSpace(*r.Notes)
		m.Notes = &n
	}
	return m, nil
}

type AttendanceResponse struct {
	ID          uuid.UUID  `json:"id"`
	SchoolID    uuid.UUID  `json:"schoolId"`
	StudentID   uuid.UUID  `json:"studentId"`
	StudentName string     `json:"studentName,omitempty"`
	ClassID     *uuid.UUID `json:"classId"`
	Date        string     `json:"date"`
	Status      string     `json:"status"`
	Notes       *string    `json:"notes"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func FromModel(m *model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:        m.ID,
		SchoolID:  m.SchoolID,
		StudentID: m.StudentID,
		ClassID:   m.ClassID,
		Date:      *helper.FormatDate(&m.Date),
		Status:    m.Status,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromModels attaches student names when names is non-nil.
func FromModels(list []model.AttendanceModel, names map[uuid.UUID]string) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for i := range list {
		r := FromModel(&list[i])
		if names != nil {
			r.StudentName = names[r.StudentID]
		}
		out = append(out, r)
	}
	return out
}
