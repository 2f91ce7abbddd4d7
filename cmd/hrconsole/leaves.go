package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/aerohr/console/internal/listview"
	"github.com/aerohr/console/internal/render"
	"github.com/aerohr/console/pkg/derive"
	"github.com/aerohr/console/pkg/models"
)

func newLeavesCmd() *cobra.Command {
	var (
		days   int
		viewer string
	)

	cmd := &cobra.Command{
		Use:   "leaves",
		Short: "Show who is on leave today, tomorrow and in the coming days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd)
			if err != nil {
				return err
			}
			if days <= 0 {
				days = sess.cfg.UpcomingDays
			}
			if viewer == "" {
				viewer = sess.cfg.ViewerID
			}

			now := time.Now()
			today := models.DateOf(now)
			ctx, cancel := context.WithTimeout(context.Background(), sess.cfg.Timeout)
			defer cancel()
			leaves, err := sess.client.ListLeaves(ctx, today, today.AddDays(days))
			if err != nil {
				sess.notifier.Notify(listview.Result{Action: "leaves", Err: err})
				return err
			}
			render.Leaves(cmd.OutOrStdout(), derive.SummarizeUpdates(now, days, viewer, leaves))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Length of the upcoming window (default AERO_UPCOMING_DAYS)")
	cmd.Flags().StringVar(&viewer, "viewer", "", "Your user id; you are excluded from counts (default AERO_VIEWER_ID)")
	return cmd
}
