package config

import (
	"os"
	"strings"
)

// LoadUtilities reads the ordered utility list from a line-oriented
// text file. Blank lines and #-comments are skipped; file order is
// preserved and defines display order. A missing file yields an empty
// list, since an empty dashboard is a valid state.
func LoadUtilities(path string) ([]string, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	utilities := []string{}
	for _, line := range strings.Split(string(contents), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		utilities = append(utilities, line)
	}

	return utilities, nil
}
