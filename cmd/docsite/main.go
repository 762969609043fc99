// Command docsite serves, exports, verifies and publishes the
// Nephio O-RAN orchestration agents documentation site.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nephio-oran/docsite/internal/releases"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "docsite",
		Short: "Documentation site for the Nephio O-RAN orchestration agents",
		Long: `docsite serves the documentation site for the Nephio O-RAN
orchestration agents, exports it to static HTML, verifies deployment
manifests against the published compatibility matrix, and publishes
exported output to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The registry is the single source of truth for every
			// version string the site shows. Refuse to start on an
			// incomplete one.
			return releases.Validate()
		},
	}

	rootCmd.AddCommand(
		serveCmd(),
		exportCmd(),
		publishCmd(),
		verifyCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
