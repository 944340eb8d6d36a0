package helper

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"edusuite_backend/internals/helpers/reporter"
)

// ErrUpstream marks failures of the database or an external provider.
var ErrUpstream = errors.New("upstream failure")

func ErrBadRequest(msg string) error   { return fiber.NewError(fiber.StatusBadRequest, msg) }
func ErrUnauthorized(msg string) error { return fiber.NewError(fiber.StatusUnauthorized, msg) }
func ErrForbidden(msg string) error    { return fiber.NewError(fiber.StatusForbidden, msg) }
func ErrNotFound(msg string) error     { return fiber.NewError(fiber.StatusNotFound, msg) }
func ErrConflict(msg string) error     { return fiber.NewError(fiber.StatusConflict, msg) }

// Upstream wraps err so it classifies as ErrUpstream while keeping its message.
func Upstream(msg string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstream, msg, err)
}

// Postgres error codes we translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// MsgInternal is the only message a client sees for an unclassified failure.
const MsgInternal = "Internal server error"

// StatusFromError maps a service error to its HTTP status and public message.
func StatusFromError(err error) (int, string) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, fe.Message
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.StatusNotFound, "Record not found"
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fiber.StatusConflict, "Record already exists"
		case pgForeignKeyViolation:
			return fiber.StatusBadRequest, "Referenced record does not exist"
		case pgNotNullViolation, pgCheckViolation:
			return fiber.StatusBadRequest, "Invalid value for " + pgErr.ColumnName
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fiber.StatusConflict, "Record already exists"
	}
	return fiber.StatusInternalServerError, MsgInternal
}

// FromServiceError renders any service error with the standard error envelope.
func FromServiceError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return JsonValidationError(c, TranslateValidation(ve))
	}

	status, msg := StatusFromError(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Interface("request_id", c.Locals("reqid")).
			Msg("request failed")
		reporter.Error(err, map[string]interface{}{
			"method": c.Method(),
			"path":   c.Path(),
		})
	}
	return JsonError(c, status, msg)
}
