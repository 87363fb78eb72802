// Package config provides the project configuration loaders for vividus.
package config

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"github.com/vividus-framework/vividus-cli/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader from vividus.yaml and
// vividus.properties files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validProjectNameRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// LoadManifest reads the project manifest, walking up from projectDir until a
// vividus.yaml is found. The directory the manifest was found in becomes
// Manifest.Dir.
func (l *Loader) LoadManifest(projectDir string) (domain.Manifest, error) {
	manifestPath, err := l.findManifest(projectDir)
	if err != nil {
		return domain.Manifest{}, err
	}

	// #nosec G304 -- manifestPath is discovered below the caller's directory
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return domain.Manifest{}, zerr.With(
			zerr.Wrap(err, domain.ErrManifestReadFailed.Error()),
			"path", manifestPath,
		)
	}

	var file Vividusfile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return domain.Manifest{}, zerr.With(
			zerr.Wrap(err, domain.ErrManifestParseFailed.Error()),
			"path", manifestPath,
		)
	}

	m, err := l.toManifest(file)
	if err != nil {
		return domain.Manifest{}, zerr.With(err, "path", manifestPath)
	}
	m.Dir = filepath.Dir(manifestPath)
	return m, nil
}

func (l *Loader) findManifest(projectDir string) (string, error) {
	currentDir, err := filepath.Abs(projectDir)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrManifestNotFound.Error())
	}

	for {
		manifestPath := filepath.Join(currentDir, domain.ManifestFileName)
		if _, err := os.Stat(manifestPath); err == nil {
			return manifestPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "project_dir", projectDir)
}

func (l *Loader) toManifest(file Vividusfile) (domain.Manifest, error) {
	if file.Project == "" {
		return domain.Manifest{}, domain.ErrMissingProjectName
	}
	if !validProjectNameRegex.MatchString(file.Project) {
		return domain.Manifest{}, zerr.With(
			zerr.New("invalid project name"),
			"project_name", file.Project,
		)
	}

	group := file.Group
	if group == "" {
		group = domain.DefaultGroup
	}

	deps := make([]domain.Dependency, 0, len(file.Dependencies))
	for _, dto := range file.Dependencies {
		if dto.Name == "" {
			return domain.Manifest{}, domain.ErrEmptyDependencyName
		}
		depGroup := dto.Group
		if depGroup == "" {
			depGroup = group
		}
		deps = append(deps, domain.Dependency{
			Group:   depGroup,
			Name:    dto.Name,
			Version: dto.Version,
		})
	}

	resourceDirs := file.ResourceDirs
	if len(resourceDirs) == 0 {
		resourceDirs = []string{domain.DefaultResourceDir}
	}

	return domain.Manifest{
		Project:      file.Project,
		Group:        group,
		Dependencies: deps,
		ResourceDirs: resourceDirs,
	}, nil
}

// fileExists reports whether path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
