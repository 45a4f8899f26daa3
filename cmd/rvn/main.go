// The rvn command provides tools for working with RVN files.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "rvn",
	Short:        "Tools for working with RVN files",
	SilenceUsage: true,
}

func main() {
	logrus.SetOutput(os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
