package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/backstop/internal/logging"
	"github.com/vvka-141/backstop/internal/tui"
	"github.com/vvka-141/backstop/pkg/backoff"
	"github.com/vvka-141/backstop/pkg/backstop"
	"github.com/vvka-141/backstop/pkg/retry"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] -- COMMAND [ARGS...]",
	Short: "Run a command, retrying failures with backoff",
	Long: `Run executes a command and, when it exits non-zero, runs it again after a
backoff delay, until it succeeds or the delay schedule is exhausted.

A schedule of N delays allows N+1 attempts. Delays grow geometrically from
--first-delay by --factor, are capped at --max-delay, and get +/- --jitter
randomness mixed in to avoid synchronized retry storms.

Profiles:
  Recurring configurations live in backstop.yaml next to your project (or
  under --config). Flags set explicitly on the command line override the
  chosen profile's fields.

A .env file in the working directory is loaded before flag resolution.

Examples:
  # Retry a flaky smoke test up to 6 times total
  backstop run -n 5 --first-delay 500ms -- ./scripts/smoke.sh

  # Use the "ci" profile from ./backstop.yaml
  backstop run -p ci -- curl -fsS https://internal.example.com/healthz

  # Deterministic schedule (no jitter), capped at 10s between attempts
  backstop run -n 8 --jitter 0 --max-delay 10s -- pg_isready -h db`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	addSpecFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	spec, err := resolveSpec(cmd)
	if err != nil {
		if errors.Is(err, backstop.ErrInvalidSpec) {
			return err
		}
		return fmt.Errorf("%w: %v", backstop.ErrInvalidSpec, err)
	}

	verbose := getVerboseFlag(cmd)
	runID := uuid.NewString()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if tui.IsInteractive() {
		return runInteractive(ctx, spec, args, runID)
	}
	return runPlain(ctx, spec, args, runID, verbose)
}

func runPlain(ctx context.Context, spec *backoff.Exponential, args []string, runID string, verbose bool) error {
	logger := logging.NewConsoleLogger(verbose)
	logger.Verbose("run %s: %s", runID, strings.Join(args, " "))

	executor := retry.NewExecutor(spec, retry.WithLogger(logger)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			logger.Info("attempt %d/%d failed (%v), retrying in %v [run %s]",
				attempt+1, spec.Count()+1, err, delay, runID)
		})

	err := executor.Execute(ctx, func(ctx context.Context) error {
		c := exec.CommandContext(ctx, args[0], args[1:]...)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	})
	if err != nil {
		return finishRun(ctx, spec, err)
	}

	logger.Verbose("run %s succeeded", runID)
	return nil
}

// finishRun translates the executor's terminal error into the command's
// error. Cancellation surfaces as ctx.Err() rather than retries-exceeded.
func finishRun(ctx context.Context, spec *backoff.Exponential, err error) error {
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return fmt.Errorf("command failed after %d attempts: %v: %w",
		spec.Count()+1, err, backstop.ErrRetriesExceeded)
}

func runInteractive(ctx context.Context, spec *backoff.Exponential, args []string, runID string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	label := strings.Join(args, " ")
	program := tea.NewProgram(tui.NewProgress(label, spec.Count()+1))

	// Command output is captured per attempt and replayed once the live
	// view has closed, so the two never interleave.
	var lastOutput bytes.Buffer
	var runErr error

	go func() {
		attempt := 0
		executor := retry.NewExecutor(spec).
			WithOnRetry(func(attempt int, err error, delay time.Duration) {
				program.Send(tui.WaitMsg{Attempt: attempt, Err: err, Delay: delay})
			})

		runErr = executor.Execute(ctx, func(ctx context.Context) error {
			program.Send(tui.AttemptMsg{Attempt: attempt})
			attempt++

			lastOutput.Reset()
			c := exec.CommandContext(ctx, args[0], args[1:]...)
			c.Stdout = &lastOutput
			c.Stderr = &lastOutput
			return c.Run()
		})
		program.Send(tui.DoneMsg{Err: runErr})
	}()

	final, err := program.Run()
	if err != nil {
		return err
	}
	if p, ok := final.(tui.Progress); ok && p.Canceled() {
		cancel()
		return fmt.Errorf("run %s canceled", runID)
	}

	if lastOutput.Len() > 0 {
		os.Stdout.Write(lastOutput.Bytes())
	}

	return finishRun(ctx, spec, runErr)
}
