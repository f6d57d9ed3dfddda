// Package config holds the handful of project-wide constants the loader
// and CLI both need, kept separate from internal/projectconfig (which
// reads the optional lumen.toml manifest) the way the teacher separates
// its static config.go from its TOML-backed project settings.
package config

// SourceFileExt is Lumen's source file suffix (spec.md §6).
const SourceFileExt = ".lu"

// SourceFileExtensions mirrors the teacher's multi-extension list shape
// even though Lumen only recognizes one suffix, so the loader's
// extension-detection logic (grounded on the teacher's loader.go) needs no
// special casing for a length-1 slice.
var SourceFileExtensions = []string{SourceFileExt}
