package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `  _             _       _
 | |__  __ _ __| |__ __| |_ ___ _ __
 | '_ \/ _' / _| / /(_-<  _/ _ \ '_ \
 |_.__/\__,_\__|_\_\/__/\__\___/ .__/
                               |_|`

var rootCmd = &cobra.Command{
	Use:   "backstop",
	Short: "Retry commands with exponential backoff",
	Long: asciiLogo + `

backstop runs a command, and when it fails, runs it again - after a jittered,
exponentially growing delay, until it succeeds or the delay schedule runs out.

Retry behavior comes from flags or from named profiles in backstop.yaml.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid backoff spec, profile, or parameters
  11 - A precondition check failed
  12 - Command failed on every attempt`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for backstop")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
