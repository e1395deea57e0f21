package log

import (
	"bytes"
	"errors"
	"testing"
)

const (
	newline = "\n"
)

func TestLogger(t *testing.T) {
	t.Run("Logf should print to output", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.Logf("test %d,%d,%d", 1, 2, 3)

		got := b.String()
		want := "test 1,2,3" + newline

		if got != want {
			t.Errorf("got %v want %v", got, want)
		}
	})

	t.Run("Infof should not print to output by default", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.Infof("test %d,%d,%d", 1, 2, 3)

		got := b.String()
		want := ""

		if got != want {
			t.Errorf("got %v want %v", got, want)
		}
	})

	t.Run("Infof should print if set", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.SetInfo(true)
		logger.Infof("test %d,%d,%d", 1, 2, 3)

		got := b.String()
		want := ColorBlue + "test 1,2,3" + ColorReset + newline

		if got != want {
			t.Errorf("got %v want %v", got, want)
		}
	})

	t.Run("Warnf should not print to output by default", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.Warnf("test %d,%d,%d", 1, 2, 3)

		got := b.String()
		want := ""

		if got != want {
			t.Errorf("got %v want %v", got, want)
		}
	})

	t.Run("Warnf should print if set", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.SetWarn(true)
		logger.Warnf("test %d,%d,%d", 1, 2, 3)

		got := b.String()
		want := ColorYellow + "test 1,2,3" + ColorReset + newline

		if got != want {
			t.Errorf("got %v want %v", got, want)
		}
	})

	t.Run("Errorf should always print", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.Errorf("test %d,%d,%d", 1, 2, 3)

		got := b.String()
		want := ColorRed + "test 1,2,3" + ColorReset + newline

		if got != want {
			t.Errorf("got %v want %v", got, want)
		}
	})

	t.Run("Error should always print", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.Error(errors.New("boom"))

		got := b.String()
		want := ColorRed + "boom" + ColorReset + newline

		if got != want {
			t.Errorf("got %v want %v", got, want)
		}
	})

	t.Run("Debugf should not print to output by default", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.Debugf("test %d,%d,%d", 1, 2, 3)

		got := b.String()
		want := ""

		if got != want {
			t.Errorf("got %v want %v", got, want)
		}
	})

	t.Run("Debugf should print if set", func(t *testing.T) {
		var b bytes.Buffer
		logger := New(&b)

		logger.SetDebug(true)
		logger.Debugf("test %d,%d,%d", 1, 2, 3)

		got := b.String()
		want := ColorCyan + "test 1,2,3" + ColorReset + newline

		if got != want {
			t.Errorf("got %v want %v", got, want)
		}
	})
}
