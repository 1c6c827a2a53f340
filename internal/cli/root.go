// Package cli dispatch-admin 命令行
package cli

import (
	"github.com/spf13/cobra"

	"dispatch_admin/internal/config"
)

// NewRootCmd 根命令，配置在子命令执行前从环境变量加载
func NewRootCmd() *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:           "dispatch-admin",
		Short:         "配送规则、运费矩阵及基础数据管理",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	getConfig := func() *config.Config { return cfg }

	rootCmd.AddCommand(
		newServeCmd(getConfig),
		newMigrateCmd(getConfig),
		newPurgeMatrixCmd(getConfig),
		newOrphansCmd(getConfig),
		newTokenCmd(getConfig),
	)
	return rootCmd
}
