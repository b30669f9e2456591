package cli

import (
	"github.com/alexanderramin/wellspring/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Import routines, workout plans and diet plans from JSON",
		Long: "Import a combined JSON file, or a directory holding daily_routines.json,\n" +
			"workout_plans.json and diet_plans.json. The import is validated first and\n" +
			"written in one transaction; a routine on an already-stored date replaces it.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := r.app.Import.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return r.emit(cmd, res, func() string { return formatter.FormatImportResult(args[0], res) })
		},
	}
}

func newExportCmd(r *runner) *cobra.Command {
	var asDir bool

	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export all stored data as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := r.app.Export.Export(cmd.Context(), args[0], asDir)
			if err != nil {
				return err
			}
			return r.emit(cmd, res, func() string { return formatter.FormatExportResult(res) })
		},
	}

	cmd.Flags().BoolVar(&asDir, "dir", false, "write one file per collection into the directory at <path>")
	return cmd
}
