package domain

import (
	"os"
	"path/filepath"
)

const (
	// VividusDirName is the name of the internal workspace directory.
	VividusDirName = ".vividus"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// ClasspathDirName is the name of the classpath cache directory.
	ClasspathDirName = "classpath"

	// RepositoryDirName is the name of the artifact repository directory.
	RepositoryDirName = "repository"

	// ManifestFileName is the name of the project manifest file.
	ManifestFileName = "vividus.yaml"

	// PropertiesFileName is the name of the project properties file.
	PropertiesFileName = "vividus.properties"

	// DefaultOutputDirName is the default build output directory of a project.
	DefaultOutputDirName = "output"

	// DefaultResourceDir is the default project resource directory appended
	// to the runner classpath.
	DefaultResourceDir = "src/main/resources"

	// StatisticsDirName is the directory under the output dir holding run statistics.
	StatisticsDirName = "statistics"

	// StatisticsFileName is the name of the run statistics file.
	StatisticsFileName = "statistics.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ClasspathCachePath returns the classpath cache directory under the given
// project directory.
func ClasspathCachePath(projectDir string) string {
	return filepath.Join(projectDir, VividusDirName, CacheDirName, ClasspathDirName)
}

// DefaultRepositoryPath returns the default artifact repository path under
// the user's home directory. It falls back to a project-relative path when
// the home directory cannot be determined.
func DefaultRepositoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(VividusDirName, RepositoryDirName)
	}
	return filepath.Join(home, VividusDirName, RepositoryDirName)
}

// StatisticsPath returns the path of the run statistics file produced by the
// runner under the given output directory.
func StatisticsPath(outputDir string) string {
	return filepath.Join(outputDir, StatisticsDirName, StatisticsFileName)
}
