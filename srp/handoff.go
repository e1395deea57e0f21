package srp

import (
	"io"

	"github.com/spf13/afero"

	"github.com/srptools/srpboot/log"
)

// ExecFunc replaces the current process image with the target executable.
// A real implementation only returns on failure; a nil return is only
// possible from a test double and callers must treat it as terminal success.
type ExecFunc func(targetPath string, argv []string) error

// ReleaseFunc releases one owned resource ahead of the control transfer.
type ReleaseFunc func()

// Handoff transfers control of this process to the recorded target
// executable. The outgoing process and the incoming one may contend for the
// same storage devices, so every owned resource is released in reverse
// acquisition order before the transfer is attempted.
type Handoff struct {
	record   HandoffRecord
	targets  afero.Fs
	releases []ReleaseFunc
	exec     ExecFunc
	plog     *log.PersistentLog
	logger   *log.Logger
}

// NewHandoff returns a Handoff for record. The targets filesystem is where
// the target executable lives; releases run innermost-acquired-first before
// the transfer. A nil exec uses the platform process replacement.
func NewHandoff(record HandoffRecord, targets afero.Fs, releases []ReleaseFunc, exec ExecFunc, plog *log.PersistentLog, logger *log.Logger) *Handoff {
	if exec == nil {
		exec = Exec
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handoff{
		record:   record,
		targets:  targets,
		releases: releases,
		exec:     exec,
		plog:     plog,
		logger:   logger,
	}
}

// Validate checks the handoff preconditions without attempting a transfer:
// the target record must be non-empty and name an existing regular file.
func (h *Handoff) Validate() error {
	if h.record.TargetPath == "" {
		h.plog.Event("ERROR: target path record missing")
		return errTargetMissing(DefaultTargetRecord)
	}
	info, err := h.targets.Stat(h.record.TargetPath)
	if err != nil {
		h.plog.Eventf("ERROR: target not found: %s", h.record.TargetPath)
		return errTargetNotFound(h.record.TargetPath, err)
	}
	if !info.Mode().IsRegular() {
		h.plog.Eventf("ERROR: target not a regular file: %s", h.record.TargetPath)
		return errTargetNotFound(h.record.TargetPath, nil)
	}
	return nil
}

// Run attempts the control transfer. On success it does not return: the
// process image is replaced. On failure it returns the typed reason and the
// process stays alive so the caller can report it.
func (h *Handoff) Run() error {
	if err := h.Validate(); err != nil {
		return err
	}

	h.logger.Infof("transferring control: %s %s", h.record.TargetPath, h.record.Argv)
	h.plog.Eventf("transferring control: %s %s", h.record.TargetPath, h.record.Argv)

	for _, release := range h.releases {
		release()
	}

	argv := []string{h.record.TargetPath}
	if h.record.Argv != "" {
		argv = append(argv, h.record.Argv)
	}
	if err := h.exec(h.record.TargetPath, argv); err != nil {
		h.plog.Eventf("ERROR: transfer failed: %v", err)
		return errTransferFailed(h.record.TargetPath, err)
	}
	return nil
}
