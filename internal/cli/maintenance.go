package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dispatch_admin/internal/config"
	"dispatch_admin/internal/middleware"
	"dispatch_admin/internal/model"
	"dispatch_admin/internal/task"
	"dispatch_admin/pkg/database"
)

func newMigrateCmd(getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "建表并输出各表行数",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(getConfig())
			if err != nil {
				return err
			}
			defer app.Close()

			stats, err := database.NewMigrator(app.DB, app.Log, model.Models()...).Migrate(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TABLE\tROWS")
			for _, s := range stats {
				fmt.Fprintf(w, "%s\t%d\n", s.TableName, s.Rows)
			}
			return w.Flush()
		},
	}
}

func newPurgeMatrixCmd(getConfig func() *config.Config) *cobra.Command {
	var dispatchID int64

	cmd := &cobra.Command{
		Use:   "purge-matrix",
		Short: "清空指定配送规则的运费矩阵",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(getConfig())
			if err != nil {
				return err
			}
			defer app.Close()

			// 命令行操作以 cli 身份记入审计日志
			ctx := middleware.WithAuditInfo(cmd.Context(), middleware.AuditInfo{Username: "cli"})

			resp, err := app.DispatchSvc.PurgeCostsMatrix(ctx, dispatchID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "dispatch %d: %d shipping cost rows deleted\n", resp.DispatchID, resp.Deleted)
			return nil
		},
	}

	cmd.Flags().Int64Var(&dispatchID, "dispatch-id", 0, "配送规则 ID")
	_ = cmd.MarkFlagRequired("dispatch-id")
	return cmd
}

func newOrphansCmd(getConfig func() *config.Config) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "orphans",
		Short: "列出限定店铺已删除的配送规则",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			app, err := newApp(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			report, err := task.NewOrphanDispatchTask(app.DispatchSvc, cfg.Task.OrphanReportSpec, app.Log).RunOnce(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			if report.Count == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No orphaned dispatches found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tMULTI_SHOP_ID")
			for _, item := range report.Items {
				fmt.Fprintf(w, "%d\t%s\t%d\n", item.ID, item.Name, item.MultiShopID)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d\n", report.Count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "以 JSON 输出")
	return cmd
}
