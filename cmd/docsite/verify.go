package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/nephio-oran/docsite/internal/verify"
)

func verifyCmd() *cobra.Command {
	var (
		verbose   bool
		strict    bool
		overrides string
		watch     bool
	)

	cmd := &cobra.Command{
		Use:   "verify [path]",
		Short: "Check manifests against the compatibility matrix",
		Long: `verify scans a directory tree of YAML manifests and reports any
component versions outside the documented compatibility matrix.
Errors fail the run; warnings fail it only with --strict.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg := verify.Config{
				Root:          root,
				Verbose:       verbose,
				Strict:        strict,
				OverridesPath: overrides,
			}

			if !watch {
				_, err := verify.Run(cfg, cmd.OutOrStdout())
				return err
			}
			return watchAndVerify(cmd, cfg)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include INFO findings")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on warnings too")
	cmd.Flags().StringVar(&overrides, "config", "", "Constraint overrides file (YAML)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run on manifest changes")

	return cmd
}

// watchAndVerify re-runs the check whenever a YAML file under the root
// changes. Watches are not recursive, so directories are added as they
// appear; all output is written from this goroutine only.
func watchAndVerify(cmd *cobra.Command, cfg verify.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchTree(watcher, cfg.Root); err != nil {
		return fmt.Errorf("watching %s: %w", cfg.Root, err)
	}

	out := cmd.OutOrStdout()
	runOnce := func() {
		if _, err := verify.Run(cfg, out); err != nil {
			fmt.Fprintf(out, "verify: %v\n", err)
		}
	}
	runOnce()

	// Editors fire several events per save; collapse a burst into one run.
	var debounce <-chan time.Time
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-debounce:
			debounce = nil
			runOnce()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "watch error: %v\n", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			trigger := false
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					// A new subtree may already hold manifests whose own
					// events were missed before the watch existed.
					if err := watchTree(watcher, event.Name); err != nil {
						fmt.Fprintf(out, "watch error: %v\n", err)
					}
					trigger = true
				}
			}
			if strings.HasSuffix(event.Name, ".yaml") || strings.HasSuffix(event.Name, ".yml") {
				trigger = true
			}
			if !trigger {
				continue
			}
			if debounce == nil {
				fmt.Fprintf(out, "\nchange detected: %s\n", event.Name)
			}
			debounce = time.After(250 * time.Millisecond)
		}
	}
}

// watchTree adds root and every directory below it to the watcher.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || strings.Contains(path, "/vendor/") {
			return nil
		}
		return watcher.Add(path)
	})
}
