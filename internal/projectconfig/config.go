// Package projectconfig reads the optional lumen.toml project manifest
// consumed by the CLI front end (cmd/lumen): entry module, source root, and
// a native-module allow-list. The core loader never reads this file itself
// — it only ever takes a base directory, keeping internal/modules
// collaborator-free. Grounded on the config-loading shape of the pack's
// GraphQLConfig readers (pkg/dang/config.go, pkg/sprout/config.go): a
// plain struct with sensible zero-value defaults, loaded from an external
// source and handed to callers as a value.
package projectconfig

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

const ManifestFile = "lumen.toml"

// Manifest is the parsed contents of lumen.toml.
type Manifest struct {
	// Entry is the dotted module name to load and run when no file
	// argument is given to `lumen run`. Defaults to "main" if absent.
	Entry string `toml:"entry"`

	// SourceRoot is the directory dotted module names resolve under,
	// relative to the manifest's own directory. Defaults to "." if absent.
	SourceRoot string `toml:"source_root"`

	// NativeAllow, if non-empty, restricts which native modules `use`
	// statements may resolve to. An empty list means every native module
	// in the registry is allowed.
	NativeAllow []string `toml:"native_allow"`
}

func defaultManifest() Manifest {
	return Manifest{Entry: "main", SourceRoot: "."}
}

// Load reads and parses path. A missing file is not an error: it returns
// defaultManifest() so projects without a lumen.toml still run.
func Load(path string) (Manifest, error) {
	m := defaultManifest()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, errors.Wrapf(err, "reading %s", path)
	}
	if err := toml.Unmarshal(data, &m); err != nil {
		return m, errors.Wrapf(err, "parsing %s", path)
	}
	if m.Entry == "" {
		m.Entry = "main"
	}
	if m.SourceRoot == "" {
		m.SourceRoot = "."
	}
	return m, nil
}

// Allows reports whether name may be resolved as a native module under
// this manifest's allow-list. An empty NativeAllow permits everything.
func (m Manifest) Allows(name string) bool {
	if len(m.NativeAllow) == 0 {
		return true
	}
	for _, n := range m.NativeAllow {
		if n == name {
			return true
		}
	}
	return false
}
