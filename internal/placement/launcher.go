package placement

import (
	"fmt"
	"os/exec"
	"strings"
)

// ExecLauncher starts executables as detached child processes. The
// launched process is never waited on or tracked; applications are
// long-lived and outlast the run.
type ExecLauncher struct{}

var _ Launcher = ExecLauncher{}

// Launch splits the executable string into argv and starts it. The
// value may be a bare name resolved via PATH, an absolute path, or a
// command line with arguments ("slack --startup"). Quoting follows
// shell conventions so paths with spaces work.
func (ExecLauncher) Launch(executable string) error {
	argv, err := splitCommand(executable)
	if err != nil {
		return fmt.Errorf("invalid executable %q: %w", executable, err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("executable is empty")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %q: %w", argv[0], err)
	}
	// Do not wait; the application runs independently of this process.
	return nil
}

// splitCommand splits a command line into argv honoring single quotes,
// double quotes, and backslash escapes.
func splitCommand(s string) ([]string, error) {
	var out []string

	var buf strings.Builder
	inSingle := false
	inDouble := false
	escaped := false

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		out = append(out, buf.String())
		buf.Reset()
	}

	for _, r := range s {
		if escaped {
			buf.WriteRune(r)
			escaped = false
			continue
		}

		if !inSingle && r == '\\' {
			escaped = true
			continue
		}

		if !inDouble && r == '\'' {
			inSingle = !inSingle
			continue
		}
		if !inSingle && r == '"' {
			inDouble = !inDouble
			continue
		}

		if !inSingle && !inDouble {
			if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
				flush()
				continue
			}
		}

		buf.WriteRune(r)
	}

	if escaped {
		return nil, fmt.Errorf("unfinished escape in command")
	}
	if inSingle || inDouble {
		return nil, fmt.Errorf("unterminated quote in command")
	}

	flush()
	return out, nil
}
