package cmd

import (
	"fmt"
	"os"

	goerrors "github.com/go-errors/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"

	"github.com/srptools/srpboot/log"
	api "github.com/srptools/srpboot/srp"
	"github.com/srptools/srpboot/types"
	"github.com/srptools/srpboot/util"
)

// ForwardCommand chainloads the bundled target executable
func ForwardCommand() *cobra.Command {
	var cmdForward = &cobra.Command{
		Use:   "forward",
		Short: "Chainload the bundled target executable",
		Run:   forwardCommandHandler,
	}

	PersistConfigCommandFlags(cmdForward.PersistentFlags())
	PersistForwardCommandFlags(cmdForward.PersistentFlags())

	return cmdForward
}

func forwardCommandHandler(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	configFlags := NewConfigCommandFlags(flags)
	globalFlags := NewGlobalCommandFlags(flags)
	forwardFlags := NewForwardCommandFlags(flags)

	c := &types.Config{}
	mergeContainer := NewMergeConfigContainer(configFlags, globalFlags, forwardFlags)
	if err := mergeContainer.Merge(c); err != nil {
		exitWithError(err.Error())
	}

	archive := afero.NewBasePathFs(afero.NewReadOnlyFs(afero.NewOsFs()), c.Forward.ArchiveRoot)
	device := afero.NewOsFs()

	plog := log.NewPersistentLog(device, c.RunConfig.LogPath)
	plog.Event("SRP forwarder start")

	var record api.HandoffRecord
	progress := &util.ProgressSpinner{}
	progress.Do(func() error {
		record = api.LoadHandoffRecord(archive, c.Forward.TargetRecord, c.Forward.ArgvRecord)
		return nil
	}, "reading handoff records")

	plog.Eventf("nextNroPath=%s", orMissing(record.TargetPath))
	plog.Eventf("nextArgv=%s", orMissing(record.Argv))

	// The archive mount is the only resource acquired after the log; release
	// it first. The persistent log opens per event and holds no handle.
	releases := []api.ReleaseFunc{
		func() { log.Debug("released archive mount") },
	}

	handoff := api.NewHandoff(record, device, releases, nil, plog, log.Default())

	if c.Forward.DryRun {
		if err := handoff.Validate(); err != nil {
			reportHandoffFailure(err, c)
			os.Exit(1)
		}
		fmt.Printf("would transfer control to %s %s\n", record.TargetPath, record.Argv)
		return
	}

	if err := handoff.Run(); err != nil {
		reportHandoffFailure(err, c)
		os.Exit(1)
	}

	// Only reachable when the control transfer was simulated.
}

func reportHandoffFailure(err error, c *types.Config) {
	fmt.Println(chalk.Red, "Handoff failed:", err.Error(), chalk.Reset)
	fmt.Println(chalk.Red, "Reason:", api.KindOf(err).String(), chalk.Reset)
	if c.RunConfig.ShowDebug {
		fmt.Println(goerrors.Wrap(err, 0).ErrorStack())
	}
}

func orMissing(value string) string {
	if value == "" {
		return "(missing)"
	}
	return value
}
