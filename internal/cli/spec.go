package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/backstop/internal/config"
	"github.com/vvka-141/backstop/pkg/backoff"
)

// Flag names shared by run and schedule.
const (
	flagAttempts   = "attempts"
	flagFirstDelay = "first-delay"
	flagMaxDelay   = "max-delay"
	flagFactor     = "factor"
	flagJitter     = "jitter"
	flagProfile    = "profile"
	flagConfig     = "config"
)

func addSpecFlags(cmd *cobra.Command) {
	cmd.Flags().IntP(flagAttempts, "n", 0, "Number of retry delays (command runs at most attempts+1 times)")
	cmd.Flags().String(flagFirstDelay, "", "Delay before the first retry (e.g. 200ms)")
	cmd.Flags().String(flagMaxDelay, "", "Ceiling on any single delay (e.g. 30s)")
	cmd.Flags().Float64(flagFactor, 0, "Multiplier applied to each delay step")
	cmd.Flags().Float64(flagJitter, -1, "Jitter fraction in [0,1] mixed into each delay")
	cmd.Flags().StringP(flagProfile, "p", "", "Named profile from "+config.ConfigFileName)
	cmd.Flags().StringP(flagConfig, "c", ".", "Directory containing "+config.ConfigFileName)
}

// resolveSpec builds the backoff spec for a command invocation: the named
// profile (if any) supplies the base, explicitly set flags override it.
func resolveSpec(cmd *cobra.Command) (*backoff.Exponential, error) {
	var profile config.Profile

	profileName, _ := cmd.Flags().GetString(flagProfile)
	if profileName != "" {
		configDir, _ := cmd.Flags().GetString(flagConfig)
		f, err := config.Load(configDir)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("profile %q requested but %s not found in %s",
					profileName, config.ConfigFileName, configDir)
			}
			return nil, err
		}
		profile, err = f.Profile(profileName)
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed(flagAttempts) {
		profile.Attempts, _ = cmd.Flags().GetInt(flagAttempts)
	}
	if cmd.Flags().Changed(flagFirstDelay) {
		profile.FirstDelay, _ = cmd.Flags().GetString(flagFirstDelay)
	}
	if cmd.Flags().Changed(flagMaxDelay) {
		profile.MaxDelay, _ = cmd.Flags().GetString(flagMaxDelay)
	}
	if cmd.Flags().Changed(flagFactor) {
		profile.Factor, _ = cmd.Flags().GetFloat64(flagFactor)
	}
	if cmd.Flags().Changed(flagJitter) {
		profile.Jitter, _ = cmd.Flags().GetFloat64(flagJitter)
		profile.JitterSet = true
	}

	return profile.Backoff()
}
