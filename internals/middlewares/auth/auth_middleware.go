// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	userModel "edusuite_backend/internals/features/users/user/model"
	helper "edusuite_backend/internals/helpers"
	helperAuth "edusuite_backend/internals/helpers/auth"
	"edusuite_backend/internals/helpers/supabase"
)

// AuthMiddleware resolves the caller from a provider-issued bearer token and the users profile row.
func AuthMiddleware(db *gorm.DB, verifier supabase.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.ErrUnauthorized(err.Error())
		}

		ctx := helper.ReqCtx(c)
		user, err := verifier.Verify(ctx, tokenString)
		if err != nil {
			if !errors.Is(err, supabase.ErrInvalidToken) {
				log.Warn().Err(err).Msg("token verification failed upstream")
			}
			return helper.ErrUnauthorized("Invalid or expired token")
		}

		identity := &helperAuth.Identity{ID: user.ID, Email: user.Email}

		// role and school come only from the profile row; token metadata is user-editable
		var profile userModel.UserModel
		err = db.WithContext(ctx).Where("id = ?", user.ID).Take(&profile).Error
		switch {
		case err == nil:
			if !profile.IsActive {
				return helper.ErrForbidden("Account is deactivated")
			}
			identity.Role = profile.Role
			identity.SchoolID = profile.SchoolID
			identity.FullName = profile.FullName
			if identity.Email == "" {
				identity.Email = profile.Email
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Debug().Str("user_id", user.ID.String()).Msg("no profile row for authenticated user")
		default:
			return helper.Upstream("load profile", err)
		}

		helperAuth.SetIdentity(c, identity)
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errors.New("No token provided")
	}
	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("Invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errors.New("Empty token")
	}
	return tok, nil
}
