package cmd

import (
	"github.com/spf13/pflag"

	"github.com/srptools/srpboot/srp"
	"github.com/srptools/srpboot/types"
)

// ForwardCommandFlags consolidates all command flags of the forward command
type ForwardCommandFlags struct {
	ArchiveRoot  string
	TargetRecord string
	ArgvRecord   string
	DryRun       bool
}

// MergeToConfig overrides forward configuration with the set flags
func (flags *ForwardCommandFlags) MergeToConfig(c *types.Config) (err error) {
	if flags.ArchiveRoot != "" {
		c.Forward.ArchiveRoot = flags.ArchiveRoot
	}
	if flags.TargetRecord != "" {
		c.Forward.TargetRecord = flags.TargetRecord
	}
	if flags.ArgvRecord != "" {
		c.Forward.ArgvRecord = flags.ArgvRecord
	}
	if flags.DryRun {
		c.Forward.DryRun = true
	}

	if c.Forward.ArchiveRoot == "" {
		c.Forward.ArchiveRoot = "."
	}
	if c.Forward.TargetRecord == "" {
		c.Forward.TargetRecord = srp.DefaultTargetRecord
	}
	if c.Forward.ArgvRecord == "" {
		c.Forward.ArgvRecord = srp.DefaultArgvRecord
	}
	if c.RunConfig.LogPath == "" {
		c.RunConfig.LogPath = srp.DefaultLogPath
	}

	return
}

// NewForwardCommandFlags returns an instance of ForwardCommandFlags
func NewForwardCommandFlags(cmdFlags *pflag.FlagSet) (flags *ForwardCommandFlags) {
	flags = &ForwardCommandFlags{}

	flags.ArchiveRoot, _ = cmdFlags.GetString("archive-root")
	flags.TargetRecord, _ = cmdFlags.GetString("target-record")
	flags.ArgvRecord, _ = cmdFlags.GetString("argv-record")
	flags.DryRun, _ = cmdFlags.GetBool("dry-run")

	return
}

// PersistForwardCommandFlags append the forward flags to a command
func PersistForwardCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.String("archive-root", "", "mounted read-only bundle directory")
	cmdFlags.String("target-record", "", "target-path record relative to the archive root")
	cmdFlags.String("argv-record", "", "argument-string record relative to the archive root")
	cmdFlags.Bool("dry-run", false, "validate the handoff without transferring control")
}
