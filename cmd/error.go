package cmd

import (
	"fmt"
	"os"

	"github.com/go-errors/errors"

	api "github.com/srptools/srpboot/srp"
)

func exitWithError(errs string) {
	fmt.Println(fmt.Sprintf(api.ErrorColor, errs))
	os.Exit(1)
}

func panicOnError(err error) {
	if err != nil {
		fmt.Println(err.(*errors.Error).ErrorStack())
		panic(err)
	}
}
