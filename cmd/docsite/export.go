package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nephio-oran/docsite/internal/export"
)

func exportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every page to static HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			written, err := export.Run(export.Config{
				OutDir: outDir,
				Logger: logger,
			})
			if err != nil {
				return err
			}
			logger.Info("export complete", "files", written, "dir", outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "Output directory")

	return cmd
}
