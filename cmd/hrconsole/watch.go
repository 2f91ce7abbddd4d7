package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aerohr/console/internal/listview"
	"github.com/aerohr/console/internal/schedule"
)

func newWatchCmd() *cobra.Command {
	var (
		so   screenOptions
		spec string
	)

	cmd := &cobra.Command{
		Use:   "watch <resource>",
		Short: "Keep a list on screen and refresh it on a cron schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd)
			if err != nil {
				return err
			}
			if spec == "" {
				spec = sess.cfg.RefreshSchedule
			}
			next, err := schedule.NextRun(spec, time.Now())
			if err != nil {
				return err
			}
			s, err := newScreen(sess, args[0], so)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			out := cmd.OutOrStdout()
			sess.notifier.Notify(s.Load(ctx))
			s.Render(out)
			fmt.Fprintf(out, "⏰ next refresh at %s (Ctrl-C to stop)\n", next.Format("15:04:05"))

			refresher, err := schedule.NewRefresher(s, spec, func(res listview.Result) {
				sess.notifier.Notify(res)
				if res.OK && res.Action == listview.ActionRefresh {
					s.Render(out)
				}
			})
			if err != nil {
				return err
			}
			refresher.Start(ctx)
			<-ctx.Done()
			refresher.Stop()
			return nil
		},
	}

	addScreenFlags(cmd, &so)
	cmd.Flags().StringVar(&spec, "schedule", "", "Cron expression (default AERO_REFRESH_SCHEDULE)")
	return cmd
}
