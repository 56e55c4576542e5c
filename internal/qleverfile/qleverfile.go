// internal/qleverfile/qleverfile.go
// Package qleverfile ships pre-configured Qleverfile deployment configs and
// writes customized copies of them.
//
// A Qleverfile is an INI-style file with [data], [index], [server], [runtime]
// and [ui] sections, consumed by the qlever control script. This package does
// not parse the format beyond what the overrides need: values are rewritten
// line by line inside their section, the way the shipped files lay them out.
package qleverfile

import (
	"crypto/rand"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

//go:embed configs/Qleverfile.*
var configFS embed.FS

const (
	// OutputName is the file name every generated config is written under.
	OutputName = "Qleverfile"

	tokenLength = 12
)

// Overrides holds the optional value replacements applied to a generated
// Qleverfile. Zero-valued fields leave the template's default in place.
type Overrides struct {
	Port    int    // PORT in [server]
	Timeout string // TIMEOUT in [server]
	System  string // SYSTEM in [runtime]
}

// Names returns the available config names, sorted.
func Names() []string {
	entries, err := configFS.ReadDir("configs")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutPrefix(e.Name(), "Qleverfile."); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Template returns the raw embedded Qleverfile for the given config name.
func Template(name string) (string, error) {
	data, err := configFS.ReadFile("configs/Qleverfile." + name)
	if err != nil {
		return "", fmt.Errorf("no pre-configured Qleverfile %q (available: %s)",
			name, strings.Join(Names(), ", "))
	}
	return string(data), nil
}

// Render produces the Qleverfile contents for the given config: a fresh
// random ACCESS_TOKEN in the [server] section, plus any requested overrides.
func Render(name string, ov Overrides) (string, error) {
	content, err := Template(name)
	if err != nil {
		return "", err
	}

	content = setValue(content, "server", "ACCESS_TOKEN", name+"_"+randomToken())
	if ov.Port != 0 {
		content = setValue(content, "server", "PORT", fmt.Sprintf("%d", ov.Port))
	}
	if ov.Timeout != "" {
		content = setValue(content, "server", "TIMEOUT", ov.Timeout)
	}
	if ov.System != "" {
		content = setValue(content, "runtime", "SYSTEM", ov.System)
	}
	return content, nil
}

// WriteConfig renders the named config and writes it as "Qleverfile" in dir.
// It refuses to overwrite an existing Qleverfile.
func WriteConfig(dir, name string, ov Overrides) (string, error) {
	content, err := Render(name, ov)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, OutputName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%q already exists, delete it first to create a new one", path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %q: %w", path, err)
	}
	return path, nil
}

var sectionPattern = regexp.MustCompile(`^\[([a-z]+)\]\s*$`)

// setValue rewrites the value of key inside the given section, preserving the
// column alignment of the original line. A key missing from the section is
// inserted right after the section header.
func setValue(content, section, key, value string) string {
	lines := strings.Split(content, "\n")
	current := ""
	headerIdx := -1
	keyPattern := regexp.MustCompile(`^(` + regexp.QuoteMeta(key) + `\s*)=.*$`)

	for i, line := range lines {
		if m := sectionPattern.FindStringSubmatch(line); m != nil {
			current = m[1]
			if current == section {
				headerIdx = i
			}
			continue
		}
		if current != section {
			continue
		}
		if m := keyPattern.FindStringSubmatch(line); m != nil {
			lines[i] = m[1] + "= " + value
			return strings.Join(lines, "\n")
		}
	}

	if headerIdx >= 0 {
		inserted := fmt.Sprintf("%s = %s", key, value)
		lines = append(lines[:headerIdx+1],
			append([]string{inserted}, lines[headerIdx+1:]...)...)
	}
	return strings.Join(lines, "\n")
}

const tokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomToken() string {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the platform source is broken.
		panic(err)
	}
	for i, b := range buf {
		buf[i] = tokenAlphabet[int(b)%len(tokenAlphabet)]
	}
	return string(buf)
}
