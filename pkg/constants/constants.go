package constants

// Application constants
const (
	AppName = "tree-to-text"
	// Note: AppVersion is managed via build-time ldflags injection in main.go
	// Use cmd.GetVersionInfo() to get the current version at runtime
)

// Pipeline defaults
const (
	// Default file permissions
	DefaultFilePermission = 0644
	DefaultDirPermission  = 0755

	// Candidate selection
	DefaultExtension  = "html"
	DefaultOutputFile = "combined.txt"
	DefaultVCSDirName = ".git"

	// Output assembly
	// The separator block is appended after a file's newline-terminated
	// text: blank line, marker line, blank line.
	SeparatorFormat = "\n--- End of %s ---\n\n"
)

// External tool invocation
const (
	PandocOutputFormat = "plain"
	LynxDumpFlag       = "-dump"
	LynxNoListFlag     = "-nolist"
)

// Error messages
const (
	ErrEmptyExtension     = "file extension is empty after normalization"
	ErrInputDirMissing    = "input directory does not exist or is not a directory"
	ErrNoExtractionMethod = "no extraction method is available"
	ErrSelfOverwrite      = "output path resolves to the running program"
)
