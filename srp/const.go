package srp

// Version is set at release build time via -ldflags.
var Version = "0.1.0"

const (
	// WarningColor used in warning texts
	WarningColor = "\033[1;33m%s\033[0m"
	// ErrorColor used in error texts
	ErrorColor = "\033[1;31m%s\033[0m"
)

// Well-known names inside a packed bundle. The packer writes these at build
// time; the bootstrapper only ever reads them.
const (
	// DefaultManifest is the archive-relative path of the copy manifest.
	DefaultManifest = "filelist.txt"

	// DefaultTargetRecord is the archive-relative path of the record naming
	// the chainload target executable.
	DefaultTargetRecord = "nextNroPath"

	// DefaultArgvRecord is the archive-relative path of the record carrying
	// the argument string forwarded to the chainload target.
	DefaultArgvRecord = "nextArgv"
)

const (
	// DefaultOutputRoot is where staged files land on persistent storage.
	DefaultOutputRoot = "/roms"

	// DefaultLogPath is the append-only diagnostic log on persistent storage.
	DefaultLogPath = "/switch-rom-packer/forwarder.log"
)
