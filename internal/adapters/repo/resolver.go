// Package repo resolves manifest dependencies against a local Maven-style
// artifact repository and caches the resulting classpaths.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cespare/xxhash/v2"
	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"github.com/vividus-framework/vividus-cli/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements ports.ClasspathResolver against a repository laid out
// <repoDir>/<group-as-path>/<name>/<version>/<name>-<version>.jar.
type Resolver struct {
	Logger ports.Logger
}

// NewResolver creates a new Resolver with the given logger.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{Logger: logger}
}

// Resolve locates every manifest dependency at the resolved framework
// version. Framework bill-of-materials entries pin versions only and
// contribute no classpath entry; manifest resource directories that exist
// under the project directory are appended.
func (r *Resolver) Resolve(repoDir string, m domain.Manifest, version string) ([]string, error) {
	info, err := os.Stat(repoDir)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrRepositoryNotFound, "repository_dir", repoDir)
	}

	var entries []string
	for _, d := range m.Dependencies {
		isFramework := d.IsFramework(m.Group)
		if isFramework && d.IsBom() {
			continue
		}

		artifactVersion := d.Version
		if isFramework {
			artifactVersion = version
		}

		jar, err := r.locate(repoDir, d, artifactVersion)
		if err != nil {
			return nil, err
		}
		entries = append(entries, jar)
	}

	for _, rd := range m.ResourceDirs {
		path := rd
		if !filepath.IsAbs(path) {
			path = filepath.Join(m.Dir, rd)
		}
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			entries = append(entries, path)
		} else {
			r.Logger.Warn(fmt.Sprintf("resource directory %s does not exist, skipping", path))
		}
	}

	return entries, nil
}

func (r *Resolver) locate(repoDir string, d domain.Dependency, version string) (string, error) {
	artifactDir := filepath.Join(repoDir, filepath.FromSlash(d.RepositoryPath()))
	jar := filepath.Join(artifactDir, version, d.Name+"-"+version+".jar")
	if info, err := os.Stat(jar); err == nil && !info.IsDir() {
		return jar, nil
	}

	coordinates := d.Group + ":" + d.Name + ":" + version
	msg := coordinates
	if available := availableVersions(artifactDir); len(available) > 0 {
		msg += " (available: " + strings.Join(available, ", ") + ")"
	}
	return "", zerr.With(
		zerr.Wrap(domain.ErrArtifactNotFound, msg),
		"repository_dir", repoDir,
	)
}

// availableVersions lists the artifact's version directories, newest first.
func availableVersions(artifactDir string) []string {
	dirEntries, err := os.ReadDir(artifactDir)
	if err != nil {
		return nil
	}

	versions := make(semver.Collection, 0, len(dirEntries))
	for _, e := range dirEntries {
		if !e.IsDir() {
			continue
		}
		if v, err := semver.NewVersion(e.Name()); err == nil {
			versions = append(versions, v)
		}
	}
	sort.Sort(sort.Reverse(versions))

	names := make([]string, 0, len(versions))
	for _, v := range versions {
		names = append(names, v.Original())
	}
	return names
}

// CacheKey derives a stable key from everything that influences resolution:
// the repository, the framework group and version, the declared dependencies
// and the resource directories.
func (r *Resolver) CacheKey(repoDir string, m domain.Manifest, version string) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(repoDir)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(m.Group)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(version)
	_, _ = hasher.Write([]byte{0})

	// Sort coordinates so reordering declarations does not invalidate the cache
	coords := make([]string, 0, len(m.Dependencies))
	for _, d := range m.Dependencies {
		coords = append(coords, d.String())
	}
	sort.Strings(coords)
	for _, c := range coords {
		_, _ = hasher.WriteString(c)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, rd := range m.ResourceDirs {
		_, _ = hasher.WriteString(rd)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
