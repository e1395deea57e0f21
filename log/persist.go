package log

import (
	"fmt"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// PersistentLog appends one diagnostic line per event to a file on persistent
// storage. The containing directory is created lazily on the first event and
// the file is opened per event, so no handle is held across a control
// transfer. The log is never read back, rotated, or truncated. Events carry a
// short per-boot session id so interleaved boots can be told apart.
//
// A nil *PersistentLog discards events, which lets tests and dry runs skip
// the sink without guarding every call site.
type PersistentLog struct {
	fs      afero.Fs
	path    string
	session string
	ready   bool
	closed  bool
}

// NewPersistentLog returns a PersistentLog appending to logPath on fs.
func NewPersistentLog(fs afero.Fs, logPath string) *PersistentLog {
	return &PersistentLog{
		fs:      fs,
		path:    logPath,
		session: uuid.NewString()[:8],
	}
}

// Event appends one line to the log. Write failures are swallowed: the log is
// diagnostic-only and must never take down the boot path.
func (p *PersistentLog) Event(message string) {
	if p == nil || p.closed {
		return
	}
	if !p.ready {
		if dir := path.Dir(p.path); dir != "." && dir != "/" {
			p.fs.MkdirAll(dir, 0777)
		}
		p.ready = true
	}
	f, err := p.fs.OpenFile(p.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	fmt.Fprintf(f, "[%s] %s\n", p.session, message)
	f.Close()
}

// Eventf appends one formatted line to the log.
func (p *PersistentLog) Eventf(format string, a ...interface{}) {
	p.Event(fmt.Sprintf(format, a...))
}

// Close stops the log; later events are dropped. There is no held handle to
// release, but a closed log guarantees nothing lands after a handoff.
func (p *PersistentLog) Close() {
	if p == nil {
		return
	}
	p.closed = true
}
