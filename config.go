// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picogk

import (
	"os"
	"time"

	"github.com/leap71/PicoGK-sub001/base/errors"
	"github.com/leap71/PicoGK-sub001/viewer"
	"github.com/pelletier/go-toml/v2"
)

// Config configures a [Runtime.Run]. The zero value is not usable
// as-is; call [Config.Defaults] or start from [NewConfig].
type Config struct {

	// VoxelSize is the global voxel size in millimeters for the
	// geometry library. Must be positive.
	VoxelSize float32 `toml:"voxel-size"`

	// LogPath is where the run log is written.
	// Empty selects [DefaultLogPath].
	LogPath string `toml:"log-path"`

	// WindowTitle is the viewer window title.
	WindowTitle string `toml:"window-title"`

	// Width and Height are the viewer window size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// LightsFile optionally points to a TOML lighting configuration
	// that is loaded into the viewer and hot-reloaded on change.
	LightsFile string `toml:"lights-file"`

	// EndAppWithTask closes the app when the task has finished and
	// all pending animations have settled. When false, the app stays
	// up until the user closes the viewer window.
	EndAppWithTask bool `toml:"end-app-with-task"`

	// PollInterval is the sleep between viewer polls. The poll loop
	// blocks for this long on every iteration, so it is an upper
	// bound on responsiveness, not a guarantee.
	PollInterval time.Duration `toml:"-"`

	// ShutdownGrace is how long the supervisor waits for the task
	// to react to cancellation before tearing down regardless.
	ShutdownGrace time.Duration `toml:"-"`

	// Backend overrides the build-selected viewer window backend.
	// Tests use this to inject the offscreen backend.
	Backend viewer.Backend `toml:"-"`
}

// NewConfig returns a [Config] with all defaults set.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Defaults sets all fields to their default values.
func (cfg *Config) Defaults() {
	cfg.VoxelSize = 0.5
	cfg.WindowTitle = "PicoGK"
	cfg.Width = 1280
	cfg.Height = 720
	cfg.PollInterval = 5 * time.Millisecond
	cfg.ShutdownGrace = 2 * time.Second
}

// ambientDefaults fills in the loop timings and window geometry if
// they are unset, leaving the caller's functional settings alone.
func (cfg *Config) ambientDefaults() {
	if cfg.WindowTitle == "" {
		cfg.WindowTitle = "PicoGK"
	}
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Millisecond
	}
	if cfg.ShutdownGrace <= 0 {
		cfg.ShutdownGrace = 2 * time.Second
	}
}

// OpenConfig reads the given TOML file over the existing values of
// the config.
func (cfg *Config) OpenConfig(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrap(err)
	}
	if err := toml.Unmarshal(b, cfg); err != nil {
		return errors.Errorf("picogk: invalid config file %q: %w", filename, err)
	}
	return nil
}
