package gitver

import (
	"os"
	"regexp"
	"strconv"
)

// templateRe matches {name} and {name:arg}.
var templateRe = regexp.MustCompile(`\{([a-z]+)(?::([^{}]+))?\}`)

// ResolveTemplate expands placeholders in s against version info.
//
// Supported templates:
//
//	{version}     → "1.2.3" or "1.2.3-alpha.1-dev+abc1234"
//	{base}        → "1.2.3"
//	{major}       → "1"
//	{minor}       → "2"
//	{patch}       → "3"
//	{prerelease}  → "alpha.1" or ""
//	{tag}         → "v1.2.3"
//	{branch}      → "main"
//	{sha}         → "abc1234"
//	{sha:N}       → first N chars of the short SHA
//	{env:NAME}    → environment variable
//
// Unknown placeholders pass through unchanged. A nil v leaves version
// placeholders unresolved.
func ResolveTemplate(s string, v *VersionInfo) string {
	return templateRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := templateRe.FindStringSubmatch(m)
		name, arg := sub[1], sub[2]

		if name == "env" && arg != "" {
			return os.Getenv(arg)
		}
		if v == nil {
			return m
		}

		switch name {
		case "version":
			return v.Version
		case "base":
			return v.Base
		case "major":
			return v.Major
		case "minor":
			return v.Minor
		case "patch":
			return v.Patch
		case "prerelease":
			return v.Prerelease
		case "tag":
			return v.Tag
		case "branch":
			return v.Branch
		case "sha":
			if arg == "" {
				return v.SHA
			}
			n, err := strconv.Atoi(arg)
			if err != nil || n <= 0 {
				return m
			}
			return v.SHA[:min(n, len(v.SHA))]
		}
		return m
	})
}
