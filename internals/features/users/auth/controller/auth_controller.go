package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edusuite_backend/internals/features/users/auth/dto"
	"edusuite_backend/internals/features/users/auth/service"
	schoolDTO "edusuite_backend/internals/features/schools/school/dto"
	userDTO "edusuite_backend/internals/features/users/user/dto"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/supabase"
)

type AuthController struct {
	svc *service.AuthService
}

func NewAuthController(db *gorm.DB, provider supabase.Provider) *AuthController {
	return &AuthController{svc: service.NewAuthService(db, provider)}
}

// POST /api/auth/signup
func (ctl *AuthController) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	school, user, err := ctl.svc.Signup(helper.ReqCtx(c), req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	return helper.JsonCreated(c, "School registered", dto.SignupResponse{
		School: schoolDTO.FromModel(school),
		User:   userDTO.FromModel(user),
	})
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := helper.ParseBody(c, &req); err != nil {
		return helper.FromServiceError(c, err)
	}
	sess, profile, err := ctl.svc.Login(helper.ReqCtx(c), req)
	if err != nil {
		return helper.FromServiceError(c, err)
	}
	resp := dto.LoginResponse{
		AccessToken:  sess.AccessToken,
		RefreshToken: sess.RefreshToken,
		TokenType:    sess.TokenType,
		ExpiresIn:    sess.ExpiresIn,
	}
	if profile != nil {
		u := userDTO.FromModel(profile)
		resp.User = &u
	}
	return helper.JsonOK(c, "Login successful", resp)
}

// GET /api/auth/verify
func (ctl *AuthController) Verify(c *fiber.Ctx) error {
	id, ok := helperAuth.GetIdentity(c)
	if !ok {
		return helper.ErrUnauthorized("User not authenticated")
	}
	return helper.JsonOK(c, "", dto.IdentityResponse{
		ID:       id.ID,
		Email:    id.Email,
		FullName: id.FullName,
		Role:     id.Role,
		SchoolID: id.SchoolID,
	})
}
