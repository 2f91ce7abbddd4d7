package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aerohr/console/internal/listview"
)

func newStatusCmd() *cobra.Command {
	var reactivate bool

	cmd := &cobra.Command{
		Use:   "status <resource> <id> [status]",
		Short: "Change a record's status",
		Long:  "Change a record's status. Archived or expired records can only return to active with --reactivate.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd)
			if err != nil {
				return err
			}
			s, err := newScreen(sess, args[0], screenOptions{})
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := context.Background()
			sess.notifier.Notify(s.Load(ctx))

			var res listview.Result
			switch {
			case reactivate:
				res = s.Reactivate(ctx, args[1])
			case len(args) == 3:
				res = s.UpdateStatus(ctx, args[1], args[2])
			default:
				return fmt.Errorf("status is required unless --reactivate is set")
			}
			sess.notifier.Notify(res)
			return res.Err
		},
	}

	cmd.Flags().BoolVar(&reactivate, "reactivate", false, "Bring an archived or expired record back to active")
	return cmd
}

func newApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <resource> <id>",
		Short: "Approve a pending_approval record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd)
			if err != nil {
				return err
			}
			s, err := newScreen(sess, args[0], screenOptions{})
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := context.Background()
			sess.notifier.Notify(s.Load(ctx))
			res := s.Approve(ctx, args[1])
			sess.notifier.Notify(res)
			return res.Err
		},
	}
}
