package cmd

import (
	"github.com/spf13/pflag"

	"github.com/srptools/srpboot/types"
)

// GlobalCommandFlags are flags accepted by every command
type GlobalCommandFlags struct {
	Verbose      bool
	ShowWarnings bool
	ShowDebug    bool
	LogPath      string
}

// MergeToConfig append command flags that are used transversally for all commands to configuration
func (flags *GlobalCommandFlags) MergeToConfig(config *types.Config) (err error) {
	config.RunConfig.Verbose = flags.Verbose
	config.RunConfig.ShowWarnings = flags.ShowWarnings
	config.RunConfig.ShowDebug = flags.ShowDebug
	if flags.LogPath != "" {
		config.RunConfig.LogPath = flags.LogPath
	}

	return
}

// NewGlobalCommandFlags returns an instance of GlobalCommandFlags
func NewGlobalCommandFlags(cmdFlags *pflag.FlagSet) (flags *GlobalCommandFlags) {
	flags = &GlobalCommandFlags{}

	flags.Verbose, _ = cmdFlags.GetBool("verbose")
	flags.ShowWarnings, _ = cmdFlags.GetBool("show-warnings")
	flags.ShowDebug, _ = cmdFlags.GetBool("show-debug")
	flags.LogPath, _ = cmdFlags.GetString("log-path")

	return flags
}

// PersistGlobalCommandFlags append the global flags to a command
func PersistGlobalCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.BoolP("verbose", "v", false, "display info messages")
	cmdFlags.Bool("show-warnings", false, "display warning messages")
	cmdFlags.Bool("show-debug", false, "display debug messages")
	cmdFlags.String("log-path", "", "persistent diagnostic log file")
}
