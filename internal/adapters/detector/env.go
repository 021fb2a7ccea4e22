package detector

import (
	"os"

	"golang.org/x/term"
)

// LogFormat selects how log records are rendered.
type LogFormat int

const (
	// FormatPretty renders colored, human-oriented lines.
	FormatPretty LogFormat = iota
	// FormatJSON renders one JSON object per record.
	FormatJSON
)

// DetectLogFormat picks JSON output when stderr is not a terminal or CI is set.
func DetectLogFormat() LogFormat {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveLogFormat applies the user's --log-format flag to auto-detection.
// userFlag should be one of: "auto", "pretty", "json", or empty.
func ResolveLogFormat(autoDetected LogFormat, userFlag string) LogFormat {
	switch userFlag {
	case "pretty":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return autoDetected
	}
}
