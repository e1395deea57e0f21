package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/srptools/srpboot/log"
	"github.com/srptools/srpboot/types"
)

// GetRootCommand provides all commands for srpboot
func GetRootCommand() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:   "srpboot",
		Short: "On-device bootstrapper for switch-rom-packer bundles",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := &types.Config{}
			globalFlags := NewGlobalCommandFlags(cmd.Flags())
			if err := globalFlags.MergeToConfig(config); err != nil {
				return err
			}
			log.InitDefault(os.Stdout, config)
			return nil
		},
	}

	// persist flags transversal to every command
	PersistGlobalCommandFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(StageCommand())
	rootCmd.AddCommand(ForwardCommand())
	rootCmd.AddCommand(VersionCommand())

	return rootCmd
}
