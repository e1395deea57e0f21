package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	goerrors "github.com/go-errors/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/ttacon/chalk"

	"github.com/srptools/srpboot/log"
	api "github.com/srptools/srpboot/srp"
	"github.com/srptools/srpboot/types"
)

// StageCommand copies bundled files from the archive to the output tree
func StageCommand() *cobra.Command {
	var cmdStage = &cobra.Command{
		Use:   "stage",
		Short: "Copy bundled files from the archive to the output tree",
		Run:   stageCommandHandler,
	}

	PersistConfigCommandFlags(cmdStage.PersistentFlags())
	PersistStageCommandFlags(cmdStage.PersistentFlags())

	return cmdStage
}

func stageCommandHandler(cmd *cobra.Command, args []string) {
	flags := cmd.Flags()

	configFlags := NewConfigCommandFlags(flags)
	globalFlags := NewGlobalCommandFlags(flags)
	stageFlags := NewStageCommandFlags(flags)

	c := &types.Config{}
	mergeContainer := NewMergeConfigContainer(configFlags, globalFlags, stageFlags)
	if err := mergeContainer.Merge(c); err != nil {
		panicOnError(goerrors.Wrap(err, 0))
	}

	archive := afero.NewBasePathFs(afero.NewReadOnlyFs(afero.NewOsFs()), c.Stage.ArchiveRoot)
	output := afero.NewOsFs()

	plog := log.NewPersistentLog(output, c.RunConfig.LogPath)
	plog.Event("SRP stage start")

	engine := api.NewEngine(archive, output, plog, log.Default())

	if c.Stage.Progress {
		bar := progressbar.Default(-1, "staging")
		engine.Progress = func(api.EntryResult) {
			bar.Add(1)
		}
	}

	summary, err := engine.Run(c.Stage.Manifest, c.Stage.OutputRoot)
	if err != nil {
		exitWithError(err.Error())
	}

	renderStageSummary(summary)

	if summary.Failed > 0 || summary.Malformed > 0 {
		fmt.Println(chalk.Yellow, "Some entries were not staged; see", c.RunConfig.LogPath, chalk.Reset)
	}
}

func renderStageSummary(summary *api.Summary) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "File", "Size", "Status"})
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor},
		tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor})
	table.SetRowLine(true)

	for _, result := range summary.Results {
		var row []string
		if result.Err != nil && (result.Entry == api.Entry{}) {
			row = append(row, "-", "-", "-", result.Err.Error())
		} else {
			status := "copied"
			if result.Err != nil {
				status = result.Err.Error()
			}
			row = append(row,
				result.Entry.Category,
				result.Entry.Filename,
				humanize.Bytes(uint64(result.Bytes)),
				status)
		}
		table.Append(row)
	}

	table.Render()

	fmt.Printf("%d attempted, %d succeeded, %d failed, %d malformed\n",
		summary.Attempted, summary.Succeeded, summary.Failed, summary.Malformed)
}
