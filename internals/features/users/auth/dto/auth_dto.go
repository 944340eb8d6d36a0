package dto

import (
	"github.com/google/uuid"

	schoolDTO "edusuite_backend/internals/features/schools/school/dto"
	userDTO "edusuite_backend/internals/features/users/user/dto"
)

// SignupRequest registers a new school together with its first Admin.
type SignupRequest struct {
	SchoolName    string  `json:"schoolName" validate:"required,min=2,max=200"`
	SchoolEmail   *string `json:"schoolEmail" validate:"omitempty,email"`
	SchoolPhone   *string `json:"schoolPhone" validate:"omitempty,max=40"`
	SchoolAddress *string `json:"schoolAddress"`

	FullName string `json:"fullName" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignupResponse struct {
	School schoolDTO.SchoolResponse `json:"school"`
	User   userDTO.UserResponse     `json:"user"`
}

type LoginResponse struct {
	AccessToken  string                `json:"accessToken"`
	RefreshToken string                `json:"refreshToken"`
	TokenType    string                `json:"tokenType"`
	ExpiresIn    int                   `json:"expiresIn"`
	User         *userDTO.UserResponse `json:"user"`
}

// IdentityResponse echoes the resolved caller.
type IdentityResponse struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	FullName string     `json:"fullName"`
	Role     string     `json:"role"`
	SchoolID *uuid.UUID `json:"schoolId"`
}
