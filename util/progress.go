package util

import (
	"fmt"
	"sync"
	"time"

	"github.com/tj/go-spin"

	"github.com/srptools/srpboot/log"
)

// ProgressSpinner is an indefinite progress indicator using a spinner.
type ProgressSpinner struct {
	spinner *spin.Spinner
	message string
	wg      *sync.WaitGroup

	done     bool
	spinning bool
}

// Start starts the spinner.
func (ps *ProgressSpinner) Start(messages ...interface{}) {
	ps.message = fmt.Sprint(messages...)
	ps.spinner = spin.New()
	ps.done = false
	ps.spinning = true
	ps.wg = &sync.WaitGroup{}
	ps.wg.Add(1)

	go func() {
		for !ps.done {
			fmt.Printf("\r%s%s %s%s", log.ColorYellow, ps.spinner.Next(), log.ColorReset, ps.message)
			time.Sleep(time.Millisecond * 100)
		}
		ps.wg.Done()
		ps.spinning = false
	}()
}

// Do executes given function with given messages as label.
func (ps *ProgressSpinner) Do(workFunc func() error, messages ...interface{}) error {
	ps.Start(messages...)
	err := workFunc()
	ps.stop()
	return err
}

func (ps *ProgressSpinner) stop() {
	if !ps.spinning {
		return
	}
	ps.done = true
	ps.wg.Wait()
	fmt.Printf("\r%s     \n", ps.message)
}
