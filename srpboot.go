package main

import (
	"os"

	"github.com/srptools/srpboot/cmd"
)

func main() {
	if err := cmd.GetRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
