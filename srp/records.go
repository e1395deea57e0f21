package srp

import (
	"strings"

	"github.com/spf13/afero"
)

// Byte caps for the two handoff records, inherited from the packer contract.
const (
	MaxTargetRecordLen = 511
	MaxArgvRecordLen   = 767
)

// HandoffRecord carries the chainload parameters read from the archive: the
// target executable path and the opaque argument string passed through to it.
// An empty TargetPath makes the record unusable; an empty Argv is forwarded
// as empty.
type HandoffRecord struct {
	TargetPath string
	Argv       string
}

// LoadHandoffRecord reads both handoff records from the archive. A missing or
// unreadable record yields an empty field; validation happens at handoff time.
func LoadHandoffRecord(archive afero.Fs, targetRecord, argvRecord string) HandoffRecord {
	return HandoffRecord{
		TargetPath: readRecord(archive, targetRecord, MaxTargetRecordLen),
		Argv:       readRecord(archive, argvRecord, MaxArgvRecordLen),
	}
}

// readRecord reads at most limit bytes and trims trailing whitespace. Content
// past the limit is dropped; the record contract is a single short line.
func readRecord(fs afero.Fs, recordPath string, limit int) string {
	f, err := fs.Open(recordPath)
	if err != nil {
		return ""
	}
	defer f.Close()

	buf := make([]byte, limit)
	n := 0
	for n < limit {
		read, readErr := f.Read(buf[n:])
		n += read
		if readErr != nil {
			break
		}
	}
	return strings.TrimRight(string(buf[:n]), " \t\r\n")
}
