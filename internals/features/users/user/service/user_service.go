package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"edusuite_backend/internals/constants"
	"edusuite_backend/internals/features/users/user/dto"
	"edusuite_backend/internals/features/users/user/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/supabase"
	"edusuite_backend/internals/helpers/tenant"
)

const compensationTimeout = 10 * time.Second

type UserService struct {
	repo       *tenant.Repo[model.UserModel]
	provider   supabase.Provider
	redirectTo string
}

func NewUserService(db *gorm.DB, provider supabase.Provider, redirectTo string) *UserService {
	return &UserService{
		repo:       tenant.NewRepo[model.UserModel](db, "User"),
		provider:   provider,
		redirectTo: redirectTo,
	}
}

// assignableRole normalises role and rejects SuperAdmin and unknown values.
func assignableRole(raw string) (string, error) {
	role, ok := constants.ParseRole(raw)
	if !ok || !constants.IsAssignable(role) {
		return "", helper.ErrBadRequest("Invalid role")
	}
	return role, nil
}

func (s *UserService) List(ctx context.Context, scope helperAuth.Scope, role string, p helper.Paging) ([]model.UserModel, int64, error) {
	var filters []func(*gorm.DB) *gorm.DB
	if role = strings.TrimSpace(role); role != "" {
		if r, ok := constants.ParseRole(role); ok {
			role = r
		}
		filters = append(filters, func(tx *gorm.DB) *gorm.DB { return tx.Where("role = ?", role) })
	}
	return s.repo.List(ctx, scope, p, "created_at DESC", filters...)
}

func (s *UserService) Get(ctx context.Context, scope helperAuth.Scope, id uuid.UUID) (*model.UserModel, error) {
	return s.repo.Find(ctx, nil, scope, id)
}

// Create provisions the credential with the provider, then the profile row.
func (s *UserService) Create(ctx context.Context, scope helperAuth.Scope, req dto.CreateUserRequest) (*model.UserModel, error) {
	role, err := assignableRole(req.Role)
	if err != nil {
		return nil, err
	}
	schoolID, err := scope.Require()
	if err != nil {
		return nil, err
	}

	pu, err := s.provider.CreateUser(ctx, supabase.CreateUserParams{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Password:     req.Password,
		EmailConfirm: true,
		UserMetadata: map[string]any{"full_name": req.FullName, "role": role, "school_id": schoolID.String()},
	})
	if err != nil {
		return nil, supabase.AsFiberError("Auth creation failed", err)
	}

	m := &model.UserModel{ID: pu.ID, Email: pu.Email, FullName: strings.TrimSpace(req.FullName), Role: role, IsActive: true}
	if err := s.repo.Create(ctx, nil, scope, m); err != nil {
		s.compensate(pu.ID)
		return nil, err
	}
	return m, nil
}

// MsgOtherSchool rejects inviting someone whose profile is held by another tenant.
const MsgOtherSchool = "User already belongs to another school"

// Invite sends a provider invitation and pre-creates the invitee's profile in this school.
// A repeated invite to a user of the same school refreshes role and name. A user whose
// profile lives in another school (or is platform-wide) is a 409 and is never moved.
func (s *UserService) Invite(ctx context.Context, scope helperAuth.Scope, req dto.InviteUserRequest) (*model.UserModel, error) {
	role, err := assignableRole(req.Role)
	if err != nil {
		return nil, err
	}
	schoolID, err := scope.Require()
	if err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullName := strings.TrimSpace(req.FullName)
	db := s.repo.DB().WithContext(ctx)

	// refuse before the provider mails anyone on behalf of the wrong school
	var byEmail model.UserModel
	err = db.Where("LOWER(email) = ?", email).Take(&byEmail).Error
	switch {
	case err == nil:
		if !sameSchool(&byEmail, schoolID) {
			return nil, helper.ErrConflict(MsgOtherSchool)
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	pu, err := s.provider.InviteUserByEmail(ctx, email, map[string]any{
		"full_name": fullName,
		"role":      role,
		"school_id": schoolID.String(),
	}, s.redirectTo)
	if err != nil {
		return nil, supabase.AsFiberError("Invite failed", err)
	}

	var existing model.UserModel
	err = db.Where("id = ?", pu.ID).Take(&existing).Error
	switch {
	case err == nil:
		if !sameSchool(&existing, schoolID) {
			return nil, helper.ErrConflict(MsgOtherSchool)
		}
		updates := map[string]any{"role": role}
		if fullName != "" {
			updates["full_name"] = fullName
		}
		m, err := s.repo.Update(ctx, nil, scope, existing.ID, updates)
		if err != nil {
			return nil, err
		}
		log.Info().Str("school_id", schoolID.String()).Str("role", role).Msg("user re-invited")
		return m, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	// no profile: the credential is ours to roll back
	m := &model.UserModel{ID: pu.ID, Email: email, FullName: fullName, Role: role, IsActive: true}
	if err := s.repo.Create(ctx, nil, scope, m); err != nil {
		s.compensate(pu.ID)
		return nil, err
	}
	log.Info().Str("school_id", schoolID.String()).Str("role", role).Msg("user invited")
	return m, nil
}

func sameSchool(u *model.UserModel, schoolID uuid.UUID) bool {
	return u.SchoolID != nil && *u.SchoolID == schoolID
}

func (s *UserService) Update(ctx context.Context, scope helperAuth.Scope, actor *helperAuth.Identity, id uuid.UUID, req dto.UpdateUserRequest) (*model.UserModel, error) {
	if req.Role != nil {
		role, err := assignableRole(*req.Role)
		if err != nil {
			return nil, err
		}
		if actor != nil && actor.ID == id && role != actor.Role {
			return nil, helper.ErrForbidden("You cannot change your own role")
		}
		req.Role = &role
	}
	return s.repo.Update(ctx, nil, scope, id, req.ToUpdates())
}

// compensate removes a credential whose profile could not be written.
func (s *UserService) compensate(id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), compensationTimeout)
	defer cancel()
	if err := s.provider.DeleteUser(ctx, id); err != nil {
		log.Error().Err(err).Str("user_id", id.String()).Msg("compensation: delete provider user failed")
	}
}
