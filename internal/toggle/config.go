package toggle

import (
	"path/filepath"
	"strings"

	"github.com/example/symlink-toggle/internal/toggle/domain"
)

// Environment variable fallbacks, consulted only for options the command line
// leaves unset.
const (
	EnvDirectory      = "CONFIG_PATH"
	EnvTarget         = "TARGET"
	EnvSource1        = "SOURCE1"
	EnvSource2        = "SOURCE2"
	EnvPossibleValues = "POSSIBLE_VALUES"
)

// EnvLookup mirrors os.LookupEnv so tests can inject environments.
type EnvLookup func(key string) (string, bool)

// Config is the merged, immutable invocation configuration.
type Config struct {
	Directory string
	Target    string
	Source1   string
	Source2   string
	Possible  []string
}

// MergeConfig layers environment variable fallbacks under the flag values and
// normalizes the directory. Flags always win. POSSIBLE_VALUES is a
// space-delimited list.
func MergeConfig(flags Config, lookup EnvLookup) Config {
	merged := flags
	if lookup != nil {
		if merged.Directory == "" {
			if v, ok := lookup(EnvDirectory); ok {
				merged.Directory = v
			}
		}
		if merged.Target == "" {
			if v, ok := lookup(EnvTarget); ok {
				merged.Target = v
			}
		}
		if merged.Source1 == "" {
			if v, ok := lookup(EnvSource1); ok {
				merged.Source1 = v
			}
		}
		if merged.Source2 == "" {
			if v, ok := lookup(EnvSource2); ok {
				merged.Source2 = v
			}
		}
		if len(merged.Possible) == 0 {
			if v, ok := lookup(EnvPossibleValues); ok {
				merged.Possible = strings.Fields(v)
			}
		}
	}
	merged.Directory = stripTrailingSlash(merged.Directory)
	return merged
}

// Validate enforces required options and the mutual exclusivity of the two
// candidate modes.
func (c Config) Validate() error {
	if c.Directory == "" {
		return domain.ErrDirectoryUnset
	}
	if c.Target == "" {
		return domain.ErrTargetUnset
	}
	if len(c.Possible) > 0 {
		if c.Source1 != "" || c.Source2 != "" {
			return domain.ErrModeConflict
		}
		return nil
	}
	if c.Source1 == "" || c.Source2 == "" {
		return domain.ErrModeIncomplete
	}
	return nil
}

// AutoDetect reports whether candidates are resolved by scanning Possible.
func (c Config) AutoDetect() bool {
	return len(c.Possible) > 0
}

// LinkPath returns the path of the symlink being toggled.
func (c Config) LinkPath() string {
	return filepath.Join(c.Directory, c.Target)
}

// CandidatePath returns the path of a candidate inside the directory.
func (c Config) CandidatePath(name string) string {
	return filepath.Join(c.Directory, name)
}

func stripTrailingSlash(dir string) string {
	if len(dir) > 1 && strings.HasSuffix(dir, "/") {
		if trimmed := strings.TrimRight(dir, "/"); trimmed != "" {
			return trimmed
		}
		return "/"
	}
	return dir
}
