// Package gitver detects the project version from git tags and expands
// version placeholders in badge messages.
package gitver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// VersionInfo holds resolved version metadata from git.
type VersionInfo struct {
	Version    string // full version: "1.2.3", "1.2.3-alpha.1", "0.0.0-dev+abc1234"
	Base       string // semver base without prerelease: "1.2.3"
	Major      string
	Minor      string
	Patch      string
	Prerelease string // "alpha.1", "rc.1", or "" for stable
	Tag        string // tag the version came from, "" when untagged
	SHA        string
	Branch     string
	IsRelease  bool // true if HEAD is exactly at the version tag
}

// DetectVersion resolves version info for the repository containing dir.
// The highest semver tag wins; without one the version is 0.0.0-dev.
func DetectVersion(dir string) (*VersionInfo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	v := &VersionInfo{SHA: head.Hash().String()[:7]}
	if head.Name().IsBranch() {
		v.Branch = head.Name().Short()
	}

	tag, sv, commit, err := highestTag(repo)
	if err != nil {
		return nil, err
	}
	if sv == nil {
		v.Version = fmt.Sprintf("0.0.0-dev+%s", v.SHA)
		v.Base = "0.0.0"
		v.Major, v.Minor, v.Patch = "0", "0", "0"
		return v, nil
	}

	v.Tag = tag
	v.Major = fmt.Sprint(sv.Major())
	v.Minor = fmt.Sprint(sv.Minor())
	v.Patch = fmt.Sprint(sv.Patch())
	v.Base = fmt.Sprintf("%s.%s.%s", v.Major, v.Minor, v.Patch)
	v.Prerelease = sv.Prerelease()
	v.Version = v.Base
	if v.Prerelease != "" {
		v.Version += "-" + v.Prerelease
	}

	v.IsRelease = commit == head.Hash()
	if !v.IsRelease {
		v.Version = fmt.Sprintf("%s-dev+%s", v.Version, v.SHA)
	}
	return v, nil
}

// highestTag returns the greatest semver tag and the commit it points to.
// Non-semver tags are ignored.
func highestTag(repo *git.Repository) (string, *semver.Version, plumbing.Hash, error) {
	iter, err := repo.Tags()
	if err != nil {
		return "", nil, plumbing.ZeroHash, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var (
		bestName string
		best     *semver.Version
		bestRef  *plumbing.Reference
	)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		sv, err := semver.NewVersion(name)
		if err != nil {
			return nil
		}
		if best == nil || sv.GreaterThan(best) {
			bestName, best, bestRef = name, sv, ref
		}
		return nil
	})
	if err != nil {
		return "", nil, plumbing.ZeroHash, fmt.Errorf("reading tags: %w", err)
	}
	if best == nil {
		return "", nil, plumbing.ZeroHash, nil
	}

	// Annotated tags point at a tag object; lightweight tags at the commit.
	commit := bestRef.Hash()
	if obj, err := repo.TagObject(commit); err == nil {
		c, err := obj.Commit()
		if err != nil {
			return "", nil, plumbing.ZeroHash, fmt.Errorf("resolving tag %s: %w", bestName, err)
		}
		commit = c.Hash
	} else if !errors.Is(err, plumbing.ErrObjectNotFound) {
		return "", nil, plumbing.ZeroHash, fmt.Errorf("reading tag %s: %w", bestName, err)
	}

	return bestName, best, commit, nil
}

// HasTemplate reports whether s contains any placeholder.
func HasTemplate(s string) bool {
	return strings.Contains(s, "{") && templateRe.MatchString(s)
}
