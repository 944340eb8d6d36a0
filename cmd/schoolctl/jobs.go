package main

import (
	"fmt"

	"github.com/spf13/cobra"

	database "edusuite_backend/internals/databases"
	assistantService "edusuite_backend/internals/features/ai/assistant/service"
	feeService "edusuite_backend/internals/features/finance/fees/service"
	"edusuite_backend/internals/jobs"
)

func sweepFeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-fees",
		Short: "Mark pending fees past their due date as Overdue",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := open()
			if err != nil {
				return err
			}
			defer database.Close(db)

			n, err := jobs.RunOverdueSweep(cmd.Context(), feeService.NewFeeService(db))
			if err != nil {
				return err
			}
			fmt.Printf("%d fee(s) marked overdue\n", n)
			return nil
		},
	}
}

func pruneCacheCmd() *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "prune-ai-cache",
		Short: "Delete cached assistant answers older than the TTL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := open()
			if err != nil {
				return err
			}
			defer database.Close(db)

			if !cmd.Flags().Changed("days") {
				days = cfg.AICacheTTLDays
			}
			n, err := jobs.RunCachePrune(cmd.Context(), assistantService.NewAssistantService(db, nil), days)
			if err != nil {
				return err
			}
			fmt.Printf("%d cache entr(ies) pruned\n", n)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "override AI_CACHE_TTL_DAYS")
	return cmd
}
