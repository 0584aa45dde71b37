package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/ini.v1"
)

// FileReader reads whole files by name. fstest.MapFS satisfies it in tests.
type FileReader interface {
	ReadFile(name string) ([]byte, error)
}

// OSFiles reads from the local file system.
type OSFiles struct{}

func (OSFiles) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// Environment is a snapshot of environment variables.
type Environment map[string]string

// EnvironmentFromList builds a snapshot from KEY=VALUE pairs as returned by os.Environ.
func EnvironmentFromList(pairs []string) Environment {
	env := make(Environment, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// ProcessEnvironment snapshots the current process environment.
func ProcessEnvironment() Environment {
	return EnvironmentFromList(os.Environ())
}

// Lookup returns the value for name when it is set and non-empty.
func (e Environment) Lookup(name string) (string, bool) {
	value, ok := e[name]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// WithFallback returns a new snapshot where variables missing from e are
// taken from fallback. e is left untouched.
func (e Environment) WithFallback(fallback map[string]string) Environment {
	merged := make(Environment, len(e)+len(fallback))
	for k, v := range fallback {
		merged[k] = v
	}
	for k, v := range e {
		merged[k] = v
	}
	return merged
}

// ReadDotEnv parses a .env file into a variable map without touching the
// process environment.
func ReadDotEnv(files FileReader, path string) (map[string]string, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return vars, nil
}

// PersistedLayer exposes the user section of the persisted settings file.
// The zero value is an empty layer.
type PersistedLayer struct {
	section  *ini.Section
	defaults *ini.Section
}

// Lookup returns the file value for key, consulting the file's DEFAULT
// section when the user section does not define it.
func (p PersistedLayer) Lookup(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, sec := range []*ini.Section{p.section, p.defaults} {
		if sec == nil || !sec.HasKey(key) {
			continue
		}
		return sec.Key(key).String(), true
	}
	return "", false
}

// Empty reports whether the layer was built without a file.
func (p PersistedLayer) Empty() bool {
	return p.section == nil
}

var iniOptions = ini.LoadOptions{
	InsensitiveKeys:            true,
	IgnoreInlineComment:        true,
	IgnoreContinuation:         true,
	AllowPythonMultilineValues: true,
	PreserveSurroundedQuote:    true,
}

// checkStructure rejects layouts the INI parser would silently repair:
// options outside any section, a repeated section header, a repeated option
// within a section, and lines that are neither a header nor an option.
// Option names compare case-insensitively; section names do not.
func checkStructure(data []byte) error {
	sections := make(map[string]bool)
	options := make(map[string]map[string]bool)

	section := ""
	inOption := false
	for i, line := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "" || trimmed[0] == '#' || trimmed[0] == ';':
			continue
		case inOption && (line[0] == ' ' || line[0] == '\t'):
			// continuation of the previous value
			continue
		case trimmed[0] == '[':
			if !strings.HasSuffix(trimmed, "]") {
				return fmt.Errorf("line %d: malformed section header %q", lineNo, trimmed)
			}
			section = trimmed[1 : len(trimmed)-1]
			if sections[section] && section != ini.DefaultSection {
				return fmt.Errorf("line %d: section [%s] already defined", lineNo, section)
			}
			sections[section] = true
			if options[section] == nil {
				options[section] = make(map[string]bool)
			}
			inOption = false
			continue
		}

		if section == "" {
			return fmt.Errorf("line %d: option %q appears before any section header", lineNo, trimmed)
		}
		idx := strings.IndexAny(trimmed, "=:")
		if idx <= 0 {
			return fmt.Errorf("line %d: expected \"key = value\" in section [%s], got %q", lineNo, section, trimmed)
		}
		key := strings.ToLower(strings.TrimSpace(trimmed[:idx]))
		if options[section][key] {
			return fmt.Errorf("line %d: option %q already set in section [%s]", lineNo, key, section)
		}
		options[section][key] = true
		inOption = true
	}
	return nil
}

// LoadPersisted reads the persisted settings file. A missing file yields an
// empty layer and a warning; a file that cannot be parsed, that repeats a
// section or option, or that lacks the user section, yields a *LoadError.
// Values are taken verbatim, surrounding quotes included.
func LoadPersisted(files FileReader, path string, logger *zap.Logger) (PersistedLayer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := files.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("no configuration file found, assuming default config",
			zap.String("path", path),
			zap.String("section", UserSection),
		)
		return PersistedLayer{}, nil
	}
	if err != nil {
		return PersistedLayer{}, &LoadError{Path: path, Err: err}
	}

	if err := checkStructure(data); err != nil {
		return PersistedLayer{}, &LoadError{Path: path, Err: err}
	}
	file, err := ini.LoadSources(iniOptions, data)
	if err != nil {
		return PersistedLayer{}, &LoadError{Path: path, Err: err}
	}

	section, err := file.GetSection(UserSection)
	if err != nil {
		return PersistedLayer{}, &LoadError{Path: path, Err: fmt.Errorf("section [%s] not found", UserSection)}
	}

	return PersistedLayer{
		section:  section,
		defaults: file.Section(ini.DefaultSection),
	}, nil
}
