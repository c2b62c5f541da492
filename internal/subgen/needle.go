package subgen

import (
	"fmt"
	"os"
	"strings"
)

// InsertBelowNeedle inserts line directly below the first line containing
// needle, using the needle line's indentation. A line already present is not
// inserted twice; the first result reports whether the file changed.
func InsertBelowNeedle(file, needle, line string) (bool, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return false, err
	}
	info, err := os.Stat(file)
	if err != nil {
		return false, err
	}

	lines := strings.Split(string(data), "\n")
	at := -1
	for i, l := range lines {
		if strings.Contains(l, needle) {
			at = i
			break
		}
	}
	if at < 0 {
		return false, fmt.Errorf("%w: %q", ErrNeedleNotFound, needle)
	}
	for _, l := range lines {
		if strings.TrimSpace(l) == strings.TrimSpace(line) {
			return false, nil
		}
	}

	indent := lines[at][:len(lines[at])-len(strings.TrimLeft(lines[at], " \t"))]
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at+1]...)
	out = append(out, indent+line)
	out = append(out, lines[at+1:]...)

	if err := os.WriteFile(file, []byte(strings.Join(out, "\n")), info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}
