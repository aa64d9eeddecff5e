// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/leap71/PicoGK-sub001/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Light is one light source in the viewer scene.
type Light struct {

	// Position is the light position in scene units.
	Position [3]float32 `toml:"position"`

	// Color is the RGB light color, each channel in [0,1].
	Color [3]float32 `toml:"color"`

	// Intensity scales the light contribution.
	Intensity float32 `toml:"intensity"`
}

// Lights is the viewer lighting configuration, loadable from a
// TOML file and hot-reloadable while the viewer is running.
type Lights struct {

	// Ambient is the ambient light level in [0,1].
	Ambient float32 `toml:"ambient"`

	// Lights are the individual light sources.
	Lights []Light `toml:"light"`
}

// Defaults sets a neutral two-light studio setup.
func (l *Lights) Defaults() {
	l.Ambient = 0.2
	l.Lights = []Light{
		{Position: [3]float32{50, 50, 100}, Color: [3]float32{1, 1, 1}, Intensity: 1},
		{Position: [3]float32{-50, -20, 60}, Color: [3]float32{1, 1, 1}, Intensity: 0.4},
	}
}

// LoadLights replaces the viewer lighting with the configuration in
// the given TOML file.
func (v *Viewer) LoadLights(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err)
	}
	var lights Lights
	if err := toml.Unmarshal(b, &lights); err != nil {
		return errors.Errorf("viewer: invalid lights file %q: %w", path, err)
	}
	v.mu.Lock()
	v.lights = lights
	v.mu.Unlock()
	return nil
}

// WatchLights loads the given lights file and then reloads it
// whenever it changes on disk, until the viewer is closed.
func (v *Viewer) WatchLights(path string) error {
	if err := v.LoadLights(path); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.watcher != nil {
		errors.Log(v.watcher.stop())
	}
	w, err := newLightsWatcher(path, func() {
		errors.Log(v.LoadLights(path))
	})
	if err != nil {
		return err
	}
	v.watcher = w
	return nil
}

// lightsWatcher reloads a lights file when it is written. Editors
// commonly replace files on save, so the parent directory is
// watched and events are filtered to the file itself.
type lightsWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

func newLightsWatcher(path string, reload func()) (*lightsWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, errors.Wrap(err)
	}
	lw := &lightsWatcher{watcher: watcher, done: make(chan struct{})}
	name := filepath.Base(path)
	go func() {
		for {
			select {
			case <-lw.done:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					reload()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return lw, nil
}

func (lw *lightsWatcher) stop() error {
	close(lw.done)
	return lw.watcher.Close()
}
