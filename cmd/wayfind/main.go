// Command wayfind runs the demo application and prints version information.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wayfind",
		Short: "Server-driven client-side routing for Go",
		Long: `Wayfind is a server-driven router for Go web applications.

Route resolution, history integration, and view rendering run on the
server; a thin JavaScript client relays navigation events over a
WebSocket and applies container patches. Both path-based and
fragment-based URL strategies are supported.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		routesCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
