// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package picogk

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/leap71/PicoGK-sub001/base/errors"
	"github.com/leap71/PicoGK-sub001/kernel"
	homedir "github.com/mitchellh/go-homedir"
)

// Logger is the run log collaborator: a single Log operation writing
// one timestamped message. Log failures never abort a run.
type Logger interface {
	Log(format string, a ...any)
}

// LogFile is the default [Logger]: a plain text file with elapsed
// timestamps, one line per message, written as the run progresses.
type LogFile struct {
	mu    sync.Mutex
	file  *os.File
	path  string
	start time.Time
}

// DefaultLogPath returns the path a run log is written to when none
// is configured: a timestamped file under PicoGK in the user's home
// directory.
func DefaultLogPath() string {
	home := errors.Ignore1(homedir.Dir())
	name := "PicoGK_" + time.Now().Format("20060102_150405") + ".log"
	return filepath.Join(home, "PicoGK", name)
}

// NewLogFile opens a run log at the given path, creating parent
// directories as needed, and writes the opening diagnostic header.
// An empty path selects [DefaultLogPath].
func NewLogFile(path string) (*LogFile, error) {
	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		return nil, errors.Errorf("picogk: failed to create log folder: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Errorf("picogk: failed to create log file: %w", err)
	}
	lg := &LogFile{file: file, path: path, start: time.Now()}
	lg.Log("%s %s", kernel.Name, kernel.Version)
	lg.Log("Log started %s", lg.start.Format(time.RFC1123))
	lg.Log("Log file    %s", path)
	return lg, nil
}

// Path returns the path the log is written to.
func (lg *LogFile) Path() string { return lg.path }

// Log writes one message with the elapsed run time. Write errors
// are swallowed; the log is an aid, not a dependency.
func (lg *LogFile) Log(format string, a ...any) {
	lg.mu.Lock()
	defer lg.mu.Unlock()
	if lg.file == nil {
		return
	}
	elapsed := time.Since(lg.start).Seconds()
	fmt.Fprintf(lg.file, "%10.3f | %s\n", elapsed, fmt.Sprintf(format, a...))
}

// Close flushes and closes the log file. It is idempotent.
func (lg *LogFile) Close() error {
	lg.mu.Lock()
	defer lg.mu.Unlock()
	if lg.file == nil {
		return nil
	}
	err := lg.file.Close()
	lg.file = nil
	return err
}
