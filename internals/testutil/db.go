// Package testutil provides the SQLite harness, fakes and fixtures shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	database "edusuite_backend/internals/databases"
	schoolModel "edusuite_backend/internals/features/schools/school/model"
	userModel "edusuite_backend/internals/features/users/user/model"
)

// NewDB returns an isolated in-memory database with every model migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the in-memory database alive and serialises writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.SeedCurricula(context.Background(), db))
	return db
}

func CreateSchool(t *testing.T, db *gorm.DB, name string) schoolModel.SchoolModel {
	t.Helper()
	s := schoolModel.SchoolModel{Name: name}
	require.NoError(t, db.Create(&s).Error)
	return s
}

// CreateUser inserts a profile row; schoolID may be nil for a SuperAdmin.
func CreateUser(t *testing.T, db *gorm.DB, role string, schoolID *uuid.UUID) userModel.UserModel {
	t.Helper()
	id := uuid.New()
	u := userModel.UserModel{
		ID:       id,
		Email:    id.String()[:8] + "@school.test",
		FullName: role + " user",
		Role:     role,
		SchoolID: schoolID,
		IsActive: true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func Ptr[T any](v T) *T { return &v }
