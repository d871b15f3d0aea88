package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/backstop/pkg/backoff"
	"github.com/vvka-141/backstop/pkg/backstop"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Profile is one named retry configuration.
// Durations use Go syntax ("200ms", "1m30s"). Zero-valued fields fall back
// to the package defaults.
type Profile struct {
	Attempts   int     `yaml:"attempts"`
	FirstDelay string  `yaml:"first_delay,omitempty"`
	MaxDelay   string  `yaml:"max_delay,omitempty"`
	Factor     float64 `yaml:"factor,omitempty"`
	Jitter     float64 `yaml:"jitter,omitempty"`

	// JitterSet distinguishes an explicit jitter of 0 from an absent field.
	JitterSet bool `yaml:"-"`
}

// File is the parsed backstop.yaml.
type File struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

const ConfigFileName = "backstop.yaml"

// Load reads and parses the profiles file in dir.
func Load(dir string) (*File, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	// Re-read profiles as raw nodes to see which fields were present.
	var raw struct {
		Profiles map[string]map[string]yaml.Node `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &raw); err == nil {
		for name, fields := range raw.Profiles {
			if _, present := fields["jitter"]; present {
				p := f.Profiles[name]
				p.JitterSet = true
				f.Profiles[name] = p
			}
		}
	}

	return &f, nil
}

// Profile resolves a named profile from the file.
func (f *File) Profile(name string) (Profile, error) {
	p, ok := f.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w %q", backstop.ErrUnknownProfile, name)
	}
	return p, nil
}

// Backoff converts the profile into a validated backoff spec.
func (p Profile) Backoff() (*backoff.Exponential, error) {
	attempts := p.Attempts
	if attempts == 0 {
		attempts = backstop.DefaultAttempts
	}

	opts := []backoff.Option{}
	if p.FirstDelay != "" {
		d, err := time.ParseDuration(p.FirstDelay)
		if err != nil {
			return nil, fmt.Errorf("first_delay: %w", err)
		}
		opts = append(opts, backoff.WithFirstDelay(d))
	}
	if p.MaxDelay != "" {
		d, err := time.ParseDuration(p.MaxDelay)
		if err != nil {
			return nil, fmt.Errorf("max_delay: %w", err)
		}
		opts = append(opts, backoff.WithMaxDelay(d))
	}
	if p.Factor != 0 {
		opts = append(opts, backoff.WithFactor(p.Factor))
	}
	if p.JitterSet {
		opts = append(opts, backoff.WithJitter(p.Jitter))
	}

	return backoff.New(attempts, opts...)
}
