package domain

import "strings"

const (
	// DefaultGroup is the group the framework publishes its artifacts under.
	DefaultGroup = "org.vividus"

	// MandatoryDependencyName is the artifact every project must declare.
	MandatoryDependencyName = "vividus"

	// BomDependencyName is the bill-of-materials artifact that pins the
	// versions of the whole framework dependency family at once.
	BomDependencyName = "vividus-bom"
)

// Dependency is one declared library dependency. Version may be empty when a
// bill of materials pins it.
type Dependency struct {
	Group   string
	Name    string
	Version string
}

// String renders group:name:version coordinates, omitting an unset version.
func (d Dependency) String() string {
	if d.Version == "" {
		return d.Group + ":" + d.Name
	}
	return d.Group + ":" + d.Name + ":" + d.Version
}

// IsFramework reports whether the dependency belongs to the given framework
// group and is therefore subject to the consistency rules.
func (d Dependency) IsFramework(group string) bool {
	return d.Group == group
}

// IsMandatory reports whether this is the mandatory framework dependency.
func (d Dependency) IsMandatory() bool {
	return d.Name == MandatoryDependencyName
}

// IsBom reports whether this is the framework bill of materials.
func (d Dependency) IsBom() bool {
	return d.Name == BomDependencyName
}

// RepositoryPath returns the artifact's directory below a Maven-style
// repository root, with dots in the group mapped to path separators.
func (d Dependency) RepositoryPath() string {
	return strings.ReplaceAll(d.Group, ".", "/") + "/" + d.Name
}

// Manifest is a project's parsed vividus.yaml.
type Manifest struct {
	// Dir is the directory the manifest was loaded from, set by the loader.
	// Every project-relative path resolves against it.
	Dir string

	// Project is the project name, required.
	Project string

	// Group is the framework group the consistency rules apply to.
	// Defaults to DefaultGroup.
	Group string

	// Dependencies lists every declared dependency in manifest order.
	Dependencies []Dependency

	// ResourceDirs are project-relative directories appended to the runner
	// classpath when they exist. Defaults to src/main/resources.
	ResourceDirs []string
}

// FrameworkDependencies returns the declarations in the framework group,
// preserving manifest order.
func (m Manifest) FrameworkDependencies() []Dependency {
	var deps []Dependency
	for _, d := range m.Dependencies {
		if d.IsFramework(m.Group) {
			deps = append(deps, d)
		}
	}
	return deps
}
