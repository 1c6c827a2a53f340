package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dispatch_admin/internal/config"
	"dispatch_admin/internal/middleware"
)

func newTokenCmd(getConfig func() *config.Config) *cobra.Command {
	var (
		username string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "签发管理接口访问令牌",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			if !cfg.Auth.Enabled {
				return errors.New("auth is disabled, no token needed")
			}
			if role != middleware.RoleAdmin && role != middleware.RoleViewer {
				return fmt.Errorf("unknown role %q, expected %s or %s", role, middleware.RoleAdmin, middleware.RoleViewer)
			}

			token, err := middleware.GenerateAccessToken(cfg.Auth, username, role)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "user", "", "用户名")
	cmd.Flags().StringVar(&role, "role", middleware.RoleViewer, "角色 (admin|viewer)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
