// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/canonical/chapter-service/internal/db"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring"
	"github.com/canonical/chapter-service/internal/storage"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/internal/types"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage role assignments directly in the database",
	Long: `Manage role assignments directly in the database.

Used to bootstrap the first super admin, who can then administer tenants over the API.`,
}

var rolesGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Grant a role to a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user-id")
		role, _ := cmd.Flags().GetString("role")
		tenantID, _ := cmd.Flags().GetString("tenant-id")

		ra, err := grantRole(cmd, userID, role, tenantID)
		if err != nil {
			return err
		}

		return json.NewEncoder(cmd.OutOrStdout()).Encode(ra)
	},
}

var rolesRevokeCmd = &cobra.Command{
	Use:   "revoke ASSIGNMENT_ID",
	Short: "Revoke a role assignment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRoleStore(cmd, func(ctx context.Context, s storage.RoleStorageInterface) error {
			if err := s.DeleteRoleAssignment(ctx, args[0], nil); err != nil {
				return fmt.Errorf("failed to revoke %s: %w", args[0], err)
			}
			cmd.Printf("Revoked %s\n", args[0])
			return nil
		})
	},
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the role assignments of a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user-id")

		return withRoleStore(cmd, func(ctx context.Context, s storage.RoleStorageInterface) error {
			rows, err := s.ListRoleAssignments(ctx, userID)
			if err != nil {
				return err
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(rows)
		})
	},
}

func validateGrant(role, tenantID string) error {
	if role != types.RoleSuperAdmin && !slices.Contains(types.TenantRoles, role) {
		return fmt.Errorf("unknown role %q", role)
	}
	if role == types.RoleSuperAdmin && tenantID != "" {
		return fmt.Errorf("role %q is global and cannot take --tenant-id", role)
	}
	if role != types.RoleSuperAdmin && tenantID == "" {
		return fmt.Errorf("role %q requires --tenant-id", role)
	}
	return nil
}

func grantRole(cmd *cobra.Command, userID, role, tenantID string) (*types.RoleAssignment, error) {
	if err := validateGrant(role, tenantID); err != nil {
		return nil, err
	}

	ra := &types.RoleAssignment{UserID: userID, Role: role}
	if tenantID != "" {
		ra.TenantID = &tenantID
	}

	var created *types.RoleAssignment
	err := withRoleStore(cmd, func(ctx context.Context, s storage.RoleStorageInterface) error {
		var err error
		created, err = s.CreateRoleAssignment(ctx, ra)
		return err
	})

	return created, err
}

func withRoleStore(cmd *cobra.Command, fn func(context.Context, storage.RoleStorageInterface) error) error {
	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		return fmt.Errorf("a DSN is required, pass --dsn or set DSN")
	}

	logger := logging.NewLogger("error")
	defer logger.Sync()

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor(serviceName)

	client, err := db.NewDBClient(db.Config{DSN: dsn, MaxConns: 2}, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	return fn(cmd.Context(), storage.NewStorage(client, tracer, monitor, logger))
}

func init() {
	rolesCmd.PersistentFlags().String("dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string (defaults to $DSN)")

	rolesGrantCmd.Flags().String("user-id", "", "Identity provider subject of the user")
	rolesGrantCmd.Flags().String("role", "", "One of super_admin, chapter_admin, organizer, member")
	rolesGrantCmd.Flags().String("tenant-id", "", "Tenant the role applies to, omitted for super_admin")
	_ = rolesGrantCmd.MarkFlagRequired("user-id")
	_ = rolesGrantCmd.MarkFlagRequired("role")

	rolesListCmd.Flags().String("user-id", "", "Identity provider subject of the user")
	_ = rolesListCmd.MarkFlagRequired("user-id")

	rolesCmd.AddCommand(rolesGrantCmd, rolesRevokeCmd, rolesListCmd)
	rootCmd.AddCommand(rolesCmd)
}
