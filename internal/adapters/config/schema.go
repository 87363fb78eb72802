package config

// Vividusfile represents the structure of the vividus.yaml project manifest.
type Vividusfile struct {
	Project      string          `yaml:"project"`
	Group        string          `yaml:"group"`
	Dependencies []DependencyDTO `yaml:"dependencies"`
	ResourceDirs []string        `yaml:"resourceDirs"`
}

// DependencyDTO represents one declared dependency in the manifest.
type DependencyDTO struct {
	Group   string `yaml:"group"`
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}
