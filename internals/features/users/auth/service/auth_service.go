package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/users/auth/dto"
	schoolDTO "edusuite_backend/internals/features/schools/school/dto"
	schoolModel "edusuite_backend/internals/features/schools/school/model"
	schoolService "edusuite_backend/internals/features/schools/school/service"
	userModel "edusuite_backend/internals/features/users/user/model"
	helper "edusuite_backend/internals/helpers"
	"edusuite_backend/internals/helpers/supabase"
)

type AuthService struct {
	db       *gorm.DB
	provider supabase.Provider
	schools  *schoolService.SchoolService
}

func NewAuthService(db *gorm.DB, provider supabase.Provider) *AuthService {
	return &AuthService{db: db, provider: provider, schools: schoolService.NewSchoolService(db)}
}

// Signup provisions the Admin credential, then writes school and profile in one
// transaction. A failed transaction deletes the credential again.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*schoolModel.SchoolModel, *userModel.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullName := strings.TrimSpace(req.FullName)

	pu, err := s.provider.CreateUser(ctx, supabase.CreateUserParams{
		Email:        email,
		Password:     req.Password,
		EmailConfirm: true,
		UserMetadata: map[string]any{"full_name": fullName, "role": constants.RoleAdmin},
	})
	if err != nil {
		return nil, nil, supabase.AsFiberError("Auth creation failed", err)
	}

	var (
		school  *schoolModel.SchoolModel
		profile *userModel.UserModel
	)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		school, err = s.schools.Create(ctx, tx, schoolDTO.CreateSchoolRequest{
			Name:    req.SchoolName,
			Email:   req.SchoolEmail,
			Phone:   req.SchoolPhone,
			Address: req.SchoolAddress,
		})
		if err != nil {
			return err
		}
		profile = &userModel.UserModel{
			ID:       pu.ID,
			Email:    email,
			FullName: fullName,
			Role:     constants.RoleAdmin,
			SchoolID: &school.ID,
			IsActive: true,
		}
		return tx.Create(profile).Error
	})
	if err != nil {
		s.deleteCredential(pu.ID)
		return nil, nil, err
	}

	log.Info().Str("school_id", school.ID.String()).Str("admin_id", pu.ID.String()).Msg("school registered")
	return school, profile, nil
}

// Login exchanges credentials for a provider session; the profile may be nil.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*supabase.Session, *userModel.UserModel, error) {
	sess, err := s.provider.SignInWithPassword(ctx, strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		var apiErr *supabase.APIError
		if errors.As(err, &apiErr) && apiErr.Status < fiber.StatusInternalServerError {
			return nil, nil, helper.ErrUnauthorized("Invalid email or password")
		}
		return nil, nil, helper.Upstream("Login failed", err)
	}

	var profile userModel.UserModel
	err = s.db.WithContext(ctx).Where("id = ?", sess.User.ID).Take(&profile).Error
	switch {
	case err == nil:
		if !profile.IsActive {
			return nil, nil, helper.ErrForbidden("Account is deactivated")
		}
		return sess, &profile, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return sess, nil, nil
	default:
		return nil, nil, err
	}
}

func (s *AuthService) deleteCredential(id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.provider.DeleteUser(ctx, id); err != nil {
		log.Error().Err(err).Str("user_id", id.String()).Msg("compensation: delete provider user failed")
	}
}
