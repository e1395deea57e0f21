package types

// Config is the full bootstrapper configuration, assembled from command
// flags and an optional JSON config file. Flags win over the file; empty
// fields fall back to the packed-bundle defaults at command time.
type Config struct {
	// Stage configures the manifest copy engine.
	Stage StageConfig `json:",omitempty"`

	// Forward configures the chainload handoff.
	Forward ForwardConfig `json:",omitempty"`

	// RunConfig configures logging behavior shared by every command.
	RunConfig RunConfig `json:",omitempty"`
}

// StageConfig configures the manifest copy engine.
type StageConfig struct {
	// ArchiveRoot is the mounted read-only bundle directory.
	ArchiveRoot string `json:",omitempty"`

	// Manifest is the copy manifest path relative to ArchiveRoot.
	Manifest string `json:",omitempty"`

	// OutputRoot is the writable tree staged files are copied beneath.
	OutputRoot string `json:",omitempty"`

	// Progress enables the per-entry progress bar.
	Progress bool `json:",omitempty"`
}

// ForwardConfig configures the chainload handoff.
type ForwardConfig struct {
	// ArchiveRoot is the mounted read-only bundle directory.
	ArchiveRoot string `json:",omitempty"`

	// TargetRecord is the target-path record, relative to ArchiveRoot.
	TargetRecord string `json:",omitempty"`

	// ArgvRecord is the argument-string record, relative to ArchiveRoot.
	ArgvRecord string `json:",omitempty"`

	// DryRun validates the handoff without transferring control.
	DryRun bool `json:",omitempty"`
}

// RunConfig configures logging behavior shared by every command.
type RunConfig struct {
	// Verbose enables info-level console messages.
	Verbose bool `json:",omitempty"`

	// ShowWarnings enables warning-level console messages.
	ShowWarnings bool `json:",omitempty"`

	// ShowDebug enables all console messages.
	ShowDebug bool `json:",omitempty"`

	// LogPath overrides the persistent diagnostic log location.
	LogPath string `json:",omitempty"`
}
