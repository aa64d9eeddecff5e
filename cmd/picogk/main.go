// Copyright (c) 2025, The PicoGK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command picogk runs a demo task in the PicoGK viewer, useful for
// verifying that the viewer, the run log, and the animation system
// work on the current machine.
package main

import (
	"fmt"
	"os"
	"time"

	picogk "github.com/leap71/PicoGK-sub001"
	"github.com/leap71/PicoGK-sub001/anim"
	"github.com/leap71/PicoGK-sub001/base/errors"
	"github.com/leap71/PicoGK-sub001/base/logx"
	"github.com/spf13/cobra"
)

var (
	voxelSize   float32
	configFile  string
	windowTitle string
	lightsFile  string
	logPath     string
	endWithTask bool
	verbose     bool
	veryVerbose bool
	quiet       bool
)

func main() {
	root := &cobra.Command{
		Use:   "picogk",
		Short: "Run a PicoGK demo task in the viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
			logx.UseDefault()

			cfg := picogk.NewConfig()
			if configFile != "" {
				if err := cfg.OpenConfig(configFile); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("voxel-size") {
				cfg.VoxelSize = voxelSize
			}
			if cmd.Flags().Changed("title") {
				cfg.WindowTitle = windowTitle
			}
			if lightsFile != "" {
				cfg.LightsFile = lightsFile
			}
			if logPath != "" {
				cfg.LogPath = logPath
			}
			cfg.EndAppWithTask = endWithTask

			logx.PrintfInfo("starting run at %gmm voxel size", cfg.VoxelSize)
			return picogk.Run(demoTask(cfg.WindowTitle), cfg)
		},
	}

	root.Flags().Float32Var(&voxelSize, "voxel-size", 0.5, "global voxel size in mm")
	root.Flags().StringVar(&configFile, "config", "", "TOML config file")
	root.Flags().StringVar(&windowTitle, "title", "PicoGK", "viewer window title")
	root.Flags().StringVar(&lightsFile, "lights", "", "TOML lights file, hot-reloaded on change")
	root.Flags().StringVar(&logPath, "log", "", "run log path")
	root.Flags().BoolVar(&endWithTask, "end-with-task", false, "close the viewer when the task is done")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	root.Flags().BoolVar(&veryVerbose, "vv", false, "debug output")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "errors only")

	if err := root.Execute(); err != nil {
		logx.PrintfError("%v", err)
		os.Exit(1)
	}
}

// demoTask pulses the window title with a wiggle animation and logs
// a heartbeat until the task is asked to stop.
func demoTask(title string) func() {
	return func() {
		vw := errors.Must1(picogk.Viewer())
		lg := errors.Must1(picogk.Log())

		vw.AddAnimation(anim.New(anim.ActionFunc(func(p float32) {
			vw.SetTitle(fmt.Sprintf("%s — %3.0f%%", title, p*100))
		}), 2, anim.Wiggle, anim.SineInOut))

		for i := 0; picogk.ContinueTask(false); i++ {
			lg.Log("demo heartbeat %d", i)
			time.Sleep(time.Second)
		}
		lg.Log("demo task stopping")
	}
}
