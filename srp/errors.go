package srp

import (
	"errors"
	"fmt"
)

// Kind classifies a bootstrapper failure. Per-entry kinds are recoverable
// within a stage batch; handoff kinds are fatal to the handoff attempt but
// never to the process, which stays alive to report them.
type Kind int

// Failure kinds.
const (
	KindUnknown Kind = iota
	KindInputMissing
	KindParseFailure
	KindDirectoryCreateFailure
	KindSourceOpenFailure
	KindDestinationOpenFailure
	KindShortWriteFailure
	KindHandoffTargetNotFound
	KindHandoffTransferFailure
)

func (k Kind) String() string {
	switch k {
	case KindInputMissing:
		return "input missing"
	case KindParseFailure:
		return "parse failure"
	case KindDirectoryCreateFailure:
		return "directory create failure"
	case KindSourceOpenFailure:
		return "source open failure"
	case KindDestinationOpenFailure:
		return "destination open failure"
	case KindShortWriteFailure:
		return "short write failure"
	case KindHandoffTargetNotFound:
		return "handoff target not found"
	case KindHandoffTransferFailure:
		return "handoff transfer failure"
	}
	return "unknown"
}

type errCustom struct {
	Msg   string
	Cause error
}

func (e *errCustom) Error() string {
	if e.Cause == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.Cause.Error()
}

func (e *errCustom) Unwrap() error {
	return e.Cause
}

// ErrManifestMissing reports an absent copy manifest; nothing was staged.
type ErrManifestMissing struct{ errCustom }

// ErrLineMalformed reports a manifest line that does not parse; the line is
// skipped and the batch continues.
type ErrLineMalformed struct {
	errCustom
	Line string
}

// ErrDirectoryCreate reports a destination directory that could not be
// created for a reason other than already existing.
type ErrDirectoryCreate struct{ errCustom }

// ErrSourceOpen reports a manifest entry whose bundled source is unreadable.
type ErrSourceOpen struct{ errCustom }

// ErrDestinationOpen reports a destination file that could not be opened for
// writing.
type ErrDestinationOpen struct{ errCustom }

// ErrShortWrite reports a copy that stopped mid-file. The destination is left
// partial; there is no rollback.
type ErrShortWrite struct{ errCustom }

// ErrTargetMissing reports an empty chainload target record. No transfer is
// attempted.
type ErrTargetMissing struct{ errCustom }

// ErrTargetNotFound reports a chainload target that does not exist or is not
// a regular file.
type ErrTargetNotFound struct{ errCustom }

// ErrTransferFailed reports a control transfer that was attempted and failed.
type ErrTransferFailed struct{ errCustom }

func errManifestMissing(path string, cause error) *ErrManifestMissing {
	return &ErrManifestMissing{errCustom{Msg: "manifest missing: " + path, Cause: cause}}
}

func errLineMalformed(line string) *ErrLineMalformed {
	return &ErrLineMalformed{errCustom: errCustom{Msg: "bad manifest line: " + line}, Line: line}
}

func errDirectoryCreate(dir string, cause error) *ErrDirectoryCreate {
	return &ErrDirectoryCreate{errCustom{Msg: "cannot create directory " + dir, Cause: cause}}
}

func errSourceOpen(path string, cause error) *ErrSourceOpen {
	return &ErrSourceOpen{errCustom{Msg: "cannot open source " + path, Cause: cause}}
}

func errDestinationOpen(path string, cause error) *ErrDestinationOpen {
	return &ErrDestinationOpen{errCustom{Msg: "cannot open destination " + path, Cause: cause}}
}

func errShortWrite(path string, cause error) *ErrShortWrite {
	return &ErrShortWrite{errCustom{Msg: "short write on " + path, Cause: cause}}
}

func errTargetMissing(record string) *ErrTargetMissing {
	return &ErrTargetMissing{errCustom{Msg: fmt.Sprintf("target path record %s missing or empty", record)}}
}

func errTargetNotFound(target string, cause error) *ErrTargetNotFound {
	return &ErrTargetNotFound{errCustom{Msg: "target not found: " + target, Cause: cause}}
}

func errTransferFailed(target string, cause error) *ErrTransferFailed {
	return &ErrTransferFailed{errCustom{Msg: "transfer to " + target + " failed", Cause: cause}}
}

// KindOf maps err to its failure kind.
func KindOf(err error) Kind {
	var (
		targetErrManifestMissing *ErrManifestMissing
		targetErrLineMalformed   *ErrLineMalformed
		targetErrDirectoryCreate *ErrDirectoryCreate
		targetErrSourceOpen      *ErrSourceOpen
		targetErrDestinationOpen *ErrDestinationOpen
		targetErrShortWrite      *ErrShortWrite
		targetErrTargetMissing   *ErrTargetMissing
		targetErrTargetNotFound  *ErrTargetNotFound
		targetErrTransferFailed  *ErrTransferFailed
	)
	switch {
	case errors.As(err, &targetErrManifestMissing):
		return KindInputMissing
	case errors.As(err, &targetErrTargetMissing):
		return KindInputMissing
	case errors.As(err, &targetErrLineMalformed):
		return KindParseFailure
	case errors.As(err, &targetErrDirectoryCreate):
		return KindDirectoryCreateFailure
	case errors.As(err, &targetErrSourceOpen):
		return KindSourceOpenFailure
	case errors.As(err, &targetErrDestinationOpen):
		return KindDestinationOpenFailure
	case errors.As(err, &targetErrShortWrite):
		return KindShortWriteFailure
	case errors.As(err, &targetErrTargetNotFound):
		return KindHandoffTargetNotFound
	case errors.As(err, &targetErrTransferFailed):
		return KindHandoffTransferFailure
	}
	return KindUnknown
}
