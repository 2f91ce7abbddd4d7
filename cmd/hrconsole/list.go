package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func addScreenFlags(cmd *cobra.Command, so *screenOptions) {
	cmd.Flags().StringVar(&so.search, "search", "", "Free-text search")
	cmd.Flags().StringToStringVar(&so.filters, "filter", nil, "Field filter key=value (repeatable, \"all\" clears)")
	cmd.Flags().IntVar(&so.perPage, "per-page", 0, "Records per page (default AERO_PER_PAGE)")
	cmd.Flags().StringVar(&so.expr, "where", "", "Expression filter over the loaded page, e.g. 'department == \"HR\"'")
}

func newListCmd() *cobra.Command {
	var (
		so     screenOptions
		page   int
		format string
	)

	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List one page of a resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" {
				return fmt.Errorf("invalid format: %s (valid values: table, json)", format)
			}
			sess, err := newSession(cmd)
			if err != nil {
				return err
			}
			s, err := newScreen(sess, args[0], so)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := context.Background()
			res := s.Load(ctx)
			sess.notifier.Notify(res)
			if res.Err != nil {
				return res.Err
			}
			if page > 1 {
				res = s.SetPage(ctx, page)
				sess.notifier.Notify(res)
			}

			if format == "json" {
				return s.RenderJSON(cmd.OutOrStdout())
			}
			s.Render(cmd.OutOrStdout())
			return nil
		},
	}

	addScreenFlags(cmd, &so)
	cmd.Flags().IntVar(&page, "page", 1, "Page number (clamped to the last page)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table or json")
	return cmd
}
