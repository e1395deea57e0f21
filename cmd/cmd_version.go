package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	api "github.com/srptools/srpboot/srp"
)

// VersionCommand provides version command
func VersionCommand() *cobra.Command {
	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Version",
		Run:   printVersion,
	}
	return cmdVersion
}

func printVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("srpboot version: %s\n", api.Version)
}
