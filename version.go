// Package mentions tracks trigger-driven mentions ("@name") inside
// editable text. The mention subpackage holds the core coordinator; the
// editor subpackage is a ready-made Bubble Tea input component built on it.
package mentions

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version in SemVer form, without a leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the release tag form of Version, with a leading v.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a valid SemVer 2.0.0 version string.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
