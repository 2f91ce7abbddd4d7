package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aerohr/console/internal/notify"
	"github.com/aerohr/console/internal/render"
	"github.com/aerohr/console/pkg/models"
)

func newSalaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "salary",
		Short: "Salary structure tools",
	}
	cmd.AddCommand(newSalaryValidateCmd())
	return cmd
}

func newSalaryValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a salary structure form and show the computed breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var form models.SalaryStructure
			if err := json.NewDecoder(in).Decode(&form); err != nil {
				return fmt.Errorf("decode salary structure: %w", err)
			}
			breakdown, err := form.Breakdown()
			if err != nil {
				notify.New(cmd.OutOrStdout()).ValidationError("salary", err)
				return err
			}
			render.Salary(cmd.OutOrStdout(), breakdown)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON form file, or - for stdin")
	return cmd
}
