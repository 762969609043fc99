package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nephio-oran/docsite/internal/releases"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print build information and the component versions the site documents.`,
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Println(version)
				return
			}

			fmt.Printf("  Version:    %s\n", version)
			fmt.Printf("  Commit:     %s\n", commit)
			fmt.Printf("  Built:      %s\n", date)
			fmt.Printf("  Go version: %s\n", runtime.Version())
			fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Println()
			fmt.Println("  Documented components:")
			for _, key := range releases.Keys() {
				entry, err := releases.Get(key)
				if err != nil {
					continue
				}
				fmt.Printf("    %-12s %s\n", entry.Label+":", entry.Version)
			}
			fmt.Printf("\n  Matrix last updated: %s\n", releases.LastUpdated)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}
