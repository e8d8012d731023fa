package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the release the binary reports; bumped on tagging.
const version = "0.1.0"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the arbor version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("arbor v%s\n", version)
		},
	}
}
