package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/wellspring/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(r *runner) *cobra.Command {
	var (
		asHTML bool
		out    string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown wellness report",
		Long: "Write a wellness report covering the profile, every recommendation kind and the summary.\n" +
			"The report is markdown unless --html is given; --json prints the raw report data.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := r.now()
			if err != nil {
				return err
			}
			rep, err := r.app.Insights.Report(cmd.Context(), now)
			if err != nil {
				return err
			}

			var body string
			switch {
			case r.flags.json:
				return r.emit(cmd, rep, nil)
			case asHTML:
				if body, err = formatter.RenderReportHTML(rep); err != nil {
					return err
				}
			default:
				body = formatter.ReportMarkdown(rep)
			}

			if out == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), body)
				return err
			}
			if err := os.WriteFile(out, []byte(body), 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Report written to %s\n", formatter.StyleGreen.Render("✔"), formatter.Bold(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asHTML, "html", false, "render the report as a standalone HTML page")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the report to a file instead of stdout")
	return cmd
}
