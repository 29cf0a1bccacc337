package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/famdoapp/famdo/internal/famdo/app"
)

func reportCmd(application *app.Application) *cobra.Command {
	var weeksBack int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show your weekly progress report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd, application)
			sess, err := requireSession(ctx, application)
			if err != nil {
				return err
			}

			ref := time.Now().AddDate(0, 0, -7*weeksBack)
			report, err := application.Reports.Weekly(ctx, sess.Identity, ref)
			if err != nil {
				return err
			}

			fmt.Printf("week of %s\n\n",
				report.WeekStart.Format("Mon, 02 Jan 2006"))
			fmt.Printf("  total:      %d\n", report.Total)
			fmt.Printf("  completed:  %d (%d%%)\n", report.Completed, report.CompletionRate)
			fmt.Printf("  pending:    %d\n", report.Pending)
			fmt.Printf("  priorities: %d high / %d medium / %d low\n\n",
				report.High, report.Medium, report.Low)

			if len(report.CompletedTasks) == 0 && len(report.PendingTasks) == 0 {
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "STATUS\tTITLE\tPRIORITY")
			for _, t := range report.PendingTasks {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.Status, t.Title, t.Priority)
			}
			for _, t := range report.CompletedTasks {
				fmt.Fprintf(w, "%s\t%s\t%s\n", t.Status, t.Title, t.Priority)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&weeksBack, "weeks-back", "w", 0, "Report on an earlier week (0 = current)")
	return cmd
}
