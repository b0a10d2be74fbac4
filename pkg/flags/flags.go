// Package flags provides the feature-flag oracle consumed by the collection
// service.
//
// Flags are read from a YAML file with environment variable overrides and
// are resolved before an operation begins; the service never observes a flag
// change mid-operation.
package flags

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Flag names read by this core.
const (
	// FlexibleCollections gates the flexible query path for listing
	// collections assigned to a user.
	FlexibleCollections = "flexible-collections"

	// FlexibleCollectionsV1 gates the manage-rights invariant on save and
	// the flexible cipher query path.
	FlexibleCollectionsV1 = "flexible-collections-v1"
)

// Oracle answers boolean feature-flag queries. Unknown flags are disabled.
type Oracle interface {
	IsEnabled(flag string) bool
}

// Static is a fixed flag map, used in tests and as the zero-config default.
type Static map[string]bool

// IsEnabled reports whether the flag is on.
func (s Static) IsEnabled(flag string) bool {
	return s[flag]
}

// FileOracle loads flags from a YAML file of the form
//
//	flags:
//	  flexible-collections: true
//	  flexible-collections-v1: false
//
// Environment variables override file values: VAULTORG_FLAG_<NAME> with the
// flag name upper-cased and dashes replaced by underscores, set to
// true/false. The oracle is safe for concurrent reads and reloads.
type FileOracle struct {
	path string

	mu    sync.RWMutex
	flags map[string]bool
}

type flagFile struct {
	Flags map[string]bool `yaml:"flags"`
}

// NewFileOracle loads the flag file at path. A missing file is not an
// error; all flags start disabled and env overrides still apply.
func NewFileOracle(path string) (*FileOracle, error) {
	o := &FileOracle{path: path, flags: map[string]bool{}}
	if err := o.Reload(); err != nil {
		return nil, err
	}
	return o, nil
}

// Reload re-reads the flag file and re-applies env overrides.
func (o *FileOracle) Reload() error {
	flags := map[string]bool{}

	if data, err := os.ReadFile(o.path); err == nil {
		var file flagFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse flag file %s: %w", o.path, err)
		}
		for name, value := range file.Flags {
			flags[name] = value
		}
	}

	for _, name := range []string{FlexibleCollections, FlexibleCollectionsV1} {
		if env, ok := os.LookupEnv(envName(name)); ok {
			flags[name] = env == "true" || env == "1" || env == "yes"
		}
	}

	o.mu.Lock()
	o.flags = flags
	o.mu.Unlock()
	return nil
}

// IsEnabled reports whether the flag is on.
func (o *FileOracle) IsEnabled(flag string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.flags[flag]
}

func envName(flag string) string {
	return "VAULTORG_FLAG_" + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
