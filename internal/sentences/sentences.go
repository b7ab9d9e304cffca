// Package sentences loads sentence sets from files.
package sentences

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned when a file yields no scorable sentences.
var ErrEmpty = errors.New("sentence list is empty")

// File is the YAML layout of a sentence set.
type File struct {
	Name      string   `yaml:"name"`
	Sentences []string `yaml:"sentences"`
}

// LoadFile reads a sentence set. YAML files (.yaml, .yml) decode into File;
// other files hold one sentence per line with blank lines and # comments skipped.
// The returned name is empty when the file does not carry one.
func LoadFile(path string) (string, []string, error) {
	var (
		name  string
		lines []string
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		name, lines, err = loadYAML(path)
	default:
		lines, err = loadLines(path)
	}
	if err != nil {
		return "", nil, err
	}
	kept := Filter(lines, Scorable)
	if len(kept) == 0 {
		return "", nil, ErrEmpty
	}
	return strings.TrimSpace(name), kept, nil
}

func loadYAML(path string) (string, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return f.Name, f.Sentences, nil
}

func loadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only sentence list.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
