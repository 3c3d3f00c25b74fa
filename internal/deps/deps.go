// Package deps inspects the external binaries Darkroom relies on.
package deps

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Requirement defines an external dependency.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}

// ResolveFFmpegPath returns the transcoder binary to use. The
// DARKROOM_FFMPEG environment variable wins over the configured value so
// users can point a single run at a different build without editing
// config.
func ResolveFFmpegPath(configured string) string {
	if env := strings.TrimSpace(os.Getenv("DARKROOM_FFMPEG")); env != "" {
		return env
	}
	if configured = strings.TrimSpace(configured); configured != "" {
		return configured
	}
	return "ffmpeg"
}

// FFmpegAvailable reports whether the resolved transcoder binary can be
// found.
func FFmpegAvailable(configured string) (string, bool) {
	binary := ResolveFFmpegPath(configured)
	if _, err := exec.LookPath(binary); err != nil {
		return binary, false
	}
	return binary, true
}
