package cmd

import (
	"github.com/spf13/pflag"

	"github.com/srptools/srpboot/srp"
	"github.com/srptools/srpboot/types"
)

// StageCommandFlags consolidates all command flags of the stage command
type StageCommandFlags struct {
	ArchiveRoot string
	Manifest    string
	OutputRoot  string
	Progress    bool
}

// MergeToConfig overrides stage configuration with the set flags
func (flags *StageCommandFlags) MergeToConfig(c *types.Config) (err error) {
	if flags.ArchiveRoot != "" {
		c.Stage.ArchiveRoot = flags.ArchiveRoot
	}
	if flags.Manifest != "" {
		c.Stage.Manifest = flags.Manifest
	}
	if flags.OutputRoot != "" {
		c.Stage.OutputRoot = flags.OutputRoot
	}
	if flags.Progress {
		c.Stage.Progress = true
	}

	if c.Stage.ArchiveRoot == "" {
		c.Stage.ArchiveRoot = "."
	}
	if c.Stage.Manifest == "" {
		c.Stage.Manifest = srp.DefaultManifest
	}
	if c.Stage.OutputRoot == "" {
		c.Stage.OutputRoot = srp.DefaultOutputRoot
	}
	if c.RunConfig.LogPath == "" {
		c.RunConfig.LogPath = srp.DefaultLogPath
	}

	return
}

// NewStageCommandFlags returns an instance of StageCommandFlags
func NewStageCommandFlags(cmdFlags *pflag.FlagSet) (flags *StageCommandFlags) {
	flags = &StageCommandFlags{}

	flags.ArchiveRoot, _ = cmdFlags.GetString("archive-root")
	flags.Manifest, _ = cmdFlags.GetString("manifest")
	flags.OutputRoot, _ = cmdFlags.GetString("output-root")
	flags.Progress, _ = cmdFlags.GetBool("progress")

	return
}

// PersistStageCommandFlags append the stage flags to a command
func PersistStageCommandFlags(cmdFlags *pflag.FlagSet) {
	cmdFlags.String("archive-root", "", "mounted read-only bundle directory")
	cmdFlags.String("manifest", "", "copy manifest path relative to the archive root")
	cmdFlags.String("output-root", "", "writable tree staged files are copied beneath")
	cmdFlags.Bool("progress", false, "display a per-entry progress bar")
}
