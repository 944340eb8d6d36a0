package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"edusuite_backend/internals/configs"
	"edusuite_backend/internals/constants"
	database "edusuite_backend/internals/databases"
	userModel "edusuite_backend/internals/features/users/user/model"
	"edusuite_backend/internals/helpers/supabase"
)

func createSuperAdminCmd() *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "create-superadmin",
		Short: "Provision a platform-wide SuperAdmin account",
		Example: `  schoolctl create-superadmin --email ops@example.com --password 's3cret-pass' --name "Platform Ops"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = configs.GetEnv("SUPERADMIN_EMAIL")
			}
			if password == "" {
				password = configs.GetEnv("SUPERADMIN_PASSWORD")
			}
			email = strings.ToLower(strings.TrimSpace(email))
			if email == "" || len(password) < 8 {
				return errors.New("--email and a --password of at least 8 characters are required")
			}

			cfg, db, err := open()
			if err != nil {
				return err
			}
			defer database.Close(db)

			provider := supabase.NewAuthClient(cfg.SupabaseURL, cfg.SupabaseServiceKey)
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			u, err := provider.CreateUser(ctx, supabase.CreateUserParams{
				Email:        email,
				Password:     password,
				EmailConfirm: true,
				UserMetadata: map[string]any{"full_name": name, "role": constants.RoleSuperAdmin},
			})
			if err != nil {
				return fmt.Errorf("create credential: %w", err)
			}

			profile := userModel.UserModel{ID: u.ID, Email: email, FullName: name, Role: constants.RoleSuperAdmin, IsActive: true}
			if err := db.WithContext(ctx).Create(&profile).Error; err != nil {
				if derr := provider.DeleteUser(context.Background(), u.ID); derr != nil {
					return fmt.Errorf("create profile: %w (credential %s left behind: %v)", err, u.ID, derr)
				}
				return fmt.Errorf("create profile: %w", err)
			}
			fmt.Printf("SuperAdmin %s created (%s)\n", email, u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "login email (falls back to SUPERADMIN_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "initial password (falls back to SUPERADMIN_PASSWORD)")
	cmd.Flags().StringVar(&name, "name", "Super Admin", "display name")
	return cmd
}
