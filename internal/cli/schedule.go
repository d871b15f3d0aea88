package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/backstop/internal/tui"
	"github.com/vvka-141/backstop/pkg/backstop"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule [flags]",
	Short: "Print the delay schedule for a spec or profile",
	Long: `Schedule materializes the delay sequence a run would follow and prints it,
one delay per line, with the cumulative wait.

With jitter enabled every invocation samples a fresh sequence; pass
--jitter 0 to see the deterministic geometric schedule.

Examples:
  backstop schedule -n 6 --first-delay 200ms --jitter 0
  backstop schedule -p ci`,
	Args: cobra.NoArgs,
	RunE: runSchedule,
}

func init() {
	addSpecFlags(scheduleCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	spec, err := resolveSpec(cmd)
	if err != nil {
		if errors.Is(err, backstop.ErrInvalidSpec) {
			return err
		}
		return fmt.Errorf("%w: %v", backstop.ErrInvalidSpec, err)
	}

	delays := spec.Delays()
	interactive := tui.IsInteractive()

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	header := "RETRY\tDELAY\tCUMULATIVE"
	if interactive {
		header = tui.HeaderStyle.Render("RETRY") + "\t" +
			tui.HeaderStyle.Render("DELAY") + "\t" +
			tui.HeaderStyle.Render("CUMULATIVE")
	}
	fmt.Fprintln(w, header)

	var total time.Duration
	for i, d := range delays {
		total += d
		delay, cumulative := d.String(), total.String()
		if interactive {
			delay = tui.DelayStyle.Render(delay)
			cumulative = tui.MutedStyle.Render(cumulative)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, delay, cumulative)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	summary := fmt.Sprintf("%d delays, %s total wait, up to %d attempts",
		len(delays), total, len(delays)+1)
	if interactive {
		summary = tui.MutedStyle.Render(summary)
	}
	fmt.Fprintln(os.Stderr, summary)
	return nil
}
