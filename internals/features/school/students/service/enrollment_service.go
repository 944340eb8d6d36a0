package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"edusuite_backend/internals/constants"
	classModel "edusuite_backend/internals/features/school/classes/model"
	parentModel "edusuite_backend/internals/features/school/parents/model"
	"edusuite_backend/internals/features/school/students/dto"
	"edusuite_backend/internals/features/school/students/model"
	userModel "edusuite_backend/internals/features/users/user/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/supabase"
	"edusuite_backend/internals/helpers/tenant"
)

const (
	MsgEnrollNameRequired = "First name and last name are required for enrollment."
	StudentEmailDomain    = "student.school.com"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// EnrollmentService provisions credentials with the identity provider and
// writes the student graph in one transaction, deleting the credentials
// again when the transaction fails.
type EnrollmentService struct {
	db       *gorm.DB
	provider supabase.Provider
	students *tenant.Repo[model.StudentModel]
	classes  *tenant.Repo[classModel.ClassModel]
	parents  *tenant.Repo[parentModel.ParentModel]
}

func NewEnrollmentService(db *gorm.DB, provider supabase.Provider) *EnrollmentService {
	return &EnrollmentService{
		db:       db,
		provider: provider,
		students: tenant.NewRepo[model.StudentModel](db, "Student"),
		classes:  tenant.NewRepo[classModel.ClassModel](db, "Class"),
		parents:  tenant.NewRepo[parentModel.ParentModel](db, "Parent"),
	}
}

// StudentEmail builds first.last<0-999>@student.school.com.
func StudentEmail(first, last string) string {
	clean := func(s string) string { return nonAlnum.ReplaceAllString(strings.ToLower(s), "") }
	return fmt.Sprintf("%s.%s%d@%s", clean(first), clean(last), mrand.Intn(1000), StudentEmailDomain)
}

func randomPassword() (string, error) {
	b := make([]byte, 18)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// parentPlan is what enrollment does about the guardian.
type parentPlan struct {
	linkID  *uuid.UUID               // parents.id to link
	profile *userModel.UserModel     // new users row
	parent  *parentModel.ParentModel // new parents row
}

func (s *EnrollmentService) Enroll(ctx context.Context, scope helperAuth.Scope, req dto.EnrollRequest) (*dto.EnrollResponse, error) {
	first, last := strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName)
	if first == "" || last == "" {
		return nil, helper.ErrBadRequest(MsgEnrollNameRequired)
	}
	schoolID, err := scope.Require()
	if err != nil {
		return nil, err
	}
	dob, err := helper.ParseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	if req.ClassID != nil {
		if err := s.classes.EnsureAll(ctx, nil, scope, *req.ClassID); err != nil {
			return nil, err
		}
	}

	var provisioned []uuid.UUID

	email := StudentEmail(first, last)
	password, err := randomPassword()
	if err != nil {
		return nil, err
	}
	su, err := s.provider.CreateUser(ctx, supabase.CreateUserParams{
		Email:        email,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: map[string]any{
			"full_name": first + " " + last,
			"role":      strings.ToLower(constants.RoleStudent),
			"school_id": schoolID.String(),
		},
	})
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Auth creation failed: "+err.Error())
	}
	provisioned = append(provisioned, su.ID)

	plan, err := s.resolveParent(ctx, scope, schoolID, req)
	if err != nil {
		s.compensate(provisioned)
		return nil, err
	}
	if plan.profile != nil {
		provisioned = append(provisioned, plan.profile.ID)
	}

	grade := req.Grade
	if grade == 0 {
		grade = model.DefaultGrade
	}
	student := model.StudentModel{
		UserID:           &su.ID,
		ClassID:          req.ClassID,
		Name:             first + " " + last,
		FirstName:        first,
		LastName:         last,
		Email:            &email,
		DateOfBirth:      dob,
		Gender:           req.Gender,
		Grade:            grade,
		Section:          req.Section,
		AttendanceStatus: model.AttendancePresent,
		BirthCertificate: req.BirthCertificate,
		PreviousReport:   req.PreviousReport,
		MedicalRecords:   req.MedicalRecords,
		PassportPhoto:    req.PassportPhoto,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profile := userModel.UserModel{
			ID:       su.ID,
			Email:    email,
			FullName: student.Name,
			Role:     constants.RoleStudent,
			SchoolID: &schoolID,
			IsActive: true,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		if err := s.students.Create(ctx, tx, scope, &student); err != nil {
			return err
		}
		if err := createTracks(tx, schoolID, student.ID, req.CurriculumType); err != nil {
			return err
		}

		if plan.profile != nil {
			if err := tx.Create(plan.profile).Error; err != nil {
				return err
			}
		}
		if plan.parent != nil {
			if err := s.parents.Create(ctx, tx, scope, plan.parent); err != nil {
				return err
			}
			plan.linkID = &plan.parent.ID
		}
		if plan.linkID != nil {
			link := parentModel.ParentChildModel{ParentID: *plan.linkID, StudentID: student.ID, SchoolID: schoolID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.compensate(provisioned)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Student record creation failed: "+err.Error())
	}

	log.Info().
		Str("school_id", schoolID.String()).
		Str("student_id", student.ID.String()).
		Bool("parent_linked", plan.linkID != nil).
		Msg("student enrolled")
	return &dto.EnrollResponse{StudentID: student.ID, Email: email, ParentID: plan.linkID}, nil
}

// resolveParent reuses an existing guardian in this school or provisions a new
// credential. Provider failures here only skip the parent step.
func (s *EnrollmentService) resolveParent(ctx context.Context, scope helperAuth.Scope, schoolID uuid.UUID, req dto.EnrollRequest) (parentPlan, error) {
	pe := strings.ToLower(strings.TrimSpace(req.ParentEmail))
	if pe == "" {
		return parentPlan{}, nil
	}
	name := strings.TrimSpace(req.ParentName)
	if name == "" {
		name = pe
	}

	var known parentModel.ParentModel
	err := s.parents.Query(ctx, nil, scope).Where("LOWER(email) = ?", pe).Take(&known).Error
	if err == nil {
		return parentPlan{linkID: &known.ID}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return parentPlan{}, err
	}

	var existing userModel.UserModel
	err = s.db.WithContext(ctx).Where("LOWER(email) = ?", pe).Take(&existing).Error
	switch {
	case err == nil:
		if existing.SchoolID == nil || *existing.SchoolID != schoolID {
			log.Warn().Str("school_id", schoolID.String()).Msg("parent email belongs to another school, skipping link")
			return parentPlan{}, nil
		}
		var p parentModel.ParentModel
		err := s.parents.Query(ctx, nil, scope).Where("user_id = ?", existing.ID).Take(&p).Error
		if err == nil {
			return parentPlan{linkID: &p.ID}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return parentPlan{}, err
		}
		return parentPlan{parent: &parentModel.ParentModel{UserID: &existing.ID, Name: existing.FullName, Email: &pe, Phone: req.ParentPhone}}, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return parentPlan{}, err
	}

	password, err := randomPassword()
	if err != nil {
		return parentPlan{}, err
	}
	pu, err := s.provider.CreateUser(ctx, supabase.CreateUserParams{
		Email:        pe,
		Password:     password,
		EmailConfirm: true,
		UserMetadata: map[string]any{"full_name": name, "role": strings.ToLower(constants.RoleParent), "school_id": schoolID.String()},
	})
	if err != nil {
		log.Warn().Err(err).Msg("parent credential provisioning failed, enrolling without parent")
		return parentPlan{}, nil
	}
	return parentPlan{
		profile: &userModel.UserModel{ID: pu.ID, Email: pe, FullName: name, Role: constants.RoleParent, SchoolID: &schoolID, IsActive: true},
		parent:  &parentModel.ParentModel{UserID: &pu.ID, Name: name, Email: &pe, Phone: req.ParentPhone},
	}, nil
}

// createTracks inserts one academic track per curriculum; unknown curricula are skipped.
func createTracks(tx *gorm.DB, schoolID, studentID uuid.UUID, curriculumType string) error {
	names := model.CurriculaFor(curriculumType)
	if len(names) == 0 {
		return nil
	}
	var curricula []model.CurriculumModel
	if err := tx.Where("name IN ?", names).Find(&curricula).Error; err != nil {
		return err
	}
	for _, c := range curricula {
		t := model.AcademicTrackModel{SchoolID: schoolID, StudentID: studentID, CurriculumID: c.ID, Status: "active"}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *EnrollmentService) compensate(ids []uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, id := range ids {
		if err := s.provider.DeleteUser(ctx, id); err != nil {
			log.Error().Err(err).Str("user_id", id.String()).Msg("compensation: delete provider user failed")
		}
	}
}
