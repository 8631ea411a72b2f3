package constants

import (
	"runtime"
)

// Platform-specific constants
var (
	// Current operating system
	CurrentOS = runtime.GOOS

	// Platform-specific executable extensions
	ExecutableExt = getExecutableExtension()
)

// PlatformConfig holds platform-specific tool locations
type PlatformConfig struct {
	PandocPaths  []string
	LynxPaths    []string
	DefaultShell string
}

// GetPlatformConfig returns platform-specific configuration
func GetPlatformConfig() *PlatformConfig {
	switch runtime.GOOS {
	case "windows":
		return &PlatformConfig{
			PandocPaths: []string{
				"pandoc.exe",
				"C:\\Program Files\\Pandoc\\pandoc.exe",
				"C:\\Program Files (x86)\\Pandoc\\pandoc.exe",
			},
			LynxPaths: []string{
				"lynx.exe",
				"C:\\Program Files\\Lynx\\lynx.exe",
				"C:\\Program Files (x86)\\Lynx\\lynx.exe",
			},
			DefaultShell: "cmd.exe",
		}
	case "darwin":
		return &PlatformConfig{
			PandocPaths: []string{
				"pandoc",
				"/usr/local/bin/pandoc",
				"/opt/homebrew/bin/pandoc",
				"/usr/bin/pandoc",
			},
			LynxPaths: []string{
				"lynx",
				"/usr/local/bin/lynx",
				"/opt/homebrew/bin/lynx",
				"/usr/bin/lynx",
			},
			DefaultShell: "/bin/sh",
		}
	default: // Linux and other Unix-like systems
		return &PlatformConfig{
			PandocPaths: []string{
				"pandoc",
				"/usr/bin/pandoc",
				"/usr/local/bin/pandoc",
				"/bin/pandoc",
			},
			LynxPaths: []string{
				"lynx",
				"/usr/bin/lynx",
				"/usr/local/bin/lynx",
				"/bin/lynx",
			},
			DefaultShell: "/bin/sh",
		}
	}
}

// getExecutableExtension returns the executable file extension for the current platform
func getExecutableExtension() string {
	if runtime.GOOS == "windows" {
		return ".exe"
	}
	return ""
}

// IsWindows returns true if running on Windows
func IsWindows() bool {
	return runtime.GOOS == "windows"
}

// IsUnixLike returns true if running on a Unix-like system (macOS, Linux, etc.)
func IsUnixLike() bool {
	return runtime.GOOS != "windows"
}
