package srp

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/srptools/srpboot/log"
)

// CopyChunkSize is the fixed read/write unit for staged copies.
const CopyChunkSize = 8192

// Engine copies manifest entries from the bundled archive into a
// category-scoped tree under the output root. It is a best-effort batch
// processor: no entry's failure affects any other entry.
type Engine struct {
	archive afero.Fs
	output  afero.Fs
	plog    *log.PersistentLog
	logger  *log.Logger

	// Progress, when set, is invoked once per manifest line after its
	// attempt, malformed lines included.
	Progress func(EntryResult)
}

// NewEngine returns an Engine reading from archive and writing to output.
func NewEngine(archive, output afero.Fs, plog *log.PersistentLog, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{archive: archive, output: output, plog: plog, logger: logger}
}

// Run consumes the manifest at manifestPath (archive-relative) and copies
// each entry beneath outputRoot. A missing manifest is the only fatal
// condition; per-line and per-entry failures are logged, counted, and
// skipped. Re-running against a populated output tree overwrites destination
// files byte-for-byte and never errors on existing directories.
func (e *Engine) Run(manifestPath, outputRoot string) (*Summary, error) {
	summary := &Summary{}

	manifest, err := e.archive.Open(manifestPath)
	if err != nil {
		e.plog.Eventf("ERROR: manifest missing: %s", manifestPath)
		return summary, errManifestMissing(manifestPath, err)
	}
	defer manifest.Close()

	reader := bufio.NewReader(manifest)
	for {
		line, truncated, readErr := readManifestLine(reader)
		if truncated {
			e.logger.Warnf("manifest line truncated at %d bytes", MaxLineLen)
			e.plog.Eventf("manifest line truncated at %d bytes", MaxLineLen)
		}
		if line != "" {
			result := e.stageLine(line, outputRoot)
			summary.record(result)
			if e.Progress != nil {
				e.Progress(result)
			}
		}
		if readErr != nil {
			if readErr != io.EOF {
				e.logger.Errorf("manifest read failed: %v", readErr)
				e.plog.Eventf("ERROR: manifest read failed: %v", readErr)
			}
			break
		}
	}

	e.plog.Eventf("stage done: %d attempted, %d succeeded, %d failed, %d malformed",
		summary.Attempted, summary.Succeeded, summary.Failed, summary.Malformed)
	return summary, nil
}

func (e *Engine) stageLine(line, outputRoot string) EntryResult {
	entry, err := ParseLine(line)
	if err != nil {
		e.logger.Warnf("bad manifest line: %s", line)
		e.plog.Eventf("bad manifest line: %s", line)
		return EntryResult{Err: err}
	}

	dest := outputRoot + "/" + entry.Category + "/" + entry.Filename
	result := EntryResult{Entry: entry, Destination: dest}

	e.logger.Infof("copying %s -> %s", entry.Filename, dest)

	result.Bytes, result.Err = e.copyEntry(entry, dest)
	if result.Err != nil {
		e.logger.Errorf("copy failed: %v", result.Err)
		e.plog.Eventf("ERROR: copy %s: %v", entry.Filename, result.Err)
	}
	return result
}

func (e *Engine) copyEntry(entry Entry, dest string) (int64, error) {
	if dir := dest[:strings.LastIndex(dest, "/")]; dir != "" {
		if err := e.ensureDir(dir); err != nil {
			return 0, errDirectoryCreate(dir, err)
		}
	}

	src, err := e.archive.Open(entry.Filename)
	if err != nil {
		return 0, errSourceOpen(entry.Filename, err)
	}
	defer src.Close()

	dst, err := e.output.Create(dest)
	if err != nil {
		return 0, errDestinationOpen(dest, err)
	}

	written, err := copyPayload(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// Destination stays present but partial; there is no rollback.
		return written, errShortWrite(dest, err)
	}
	return written, nil
}

// ensureDir walks dir segment by segment, creating each missing directory.
// A segment that already exists as a directory is success; one that exists
// as anything else fails the walk.
func (e *Engine) ensureDir(dir string) error {
	built := ""
	if strings.HasPrefix(dir, "/") {
		built = "/"
	}
	for _, segment := range strings.Split(strings.Trim(dir, "/"), "/") {
		if segment == "" {
			continue
		}
		if built == "" || built == "/" {
			built += segment
		} else {
			built += "/" + segment
		}
		err := e.output.Mkdir(built, 0777)
		if err == nil {
			continue
		}
		if info, statErr := e.output.Stat(built); statErr == nil && info.IsDir() {
			continue
		}
		return err
	}
	return nil
}

// copyPayload streams src into dst in fixed-size chunks. A write that lands
// fewer bytes than read aborts the copy as a short write.
func copyPayload(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, CopyChunkSize)
	var written int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			wn, writeErr := dst.Write(buf[:n])
			written += int64(wn)
			if writeErr != nil {
				return written, writeErr
			}
			if wn < n {
				return written, io.ErrShortWrite
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}

func readManifestLine(r *bufio.Reader) (line string, truncated bool, err error) {
	line, err = r.ReadString('\n')
	if len(line) > MaxLineLen {
		truncated = true
		line = line[:MaxLineLen]
	}
	return strings.TrimRight(line, "\r\n"), truncated, err
}
