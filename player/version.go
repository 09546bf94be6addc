package player

import (
	"os/exec"
	"strings"
)

// Version asks binary for its version, e.g. "mpv v0.38.0".
func Version(binary string) (string, error) {
	out, err := exec.Command(binary, "--version").Output()
	if err != nil {
		return "", err
	}
	return banner(string(out)), nil
}

// banner keeps the name and version from the first line of a --version output.
func banner(output string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	fields := strings.Fields(line)
	if len(fields) > 2 {
		fields = fields[:2]
	}
	return strings.Join(fields, " ")
}
