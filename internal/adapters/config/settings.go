package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/viper"
	"github.com/vividus-framework/vividus-cli/internal/core/domain"
	"go.trai.ch/zerr"
)

// envPrefix is the prefix for environment overrides,
// e.g. VIVIDUS_OUTPUTDIR=/tmp/out.
const envPrefix = "VIVIDUS"

// systemPropertyPrefix marks properties forwarded to the runner as -D system
// properties.
const systemPropertyPrefix = "vividus."

// LoadSettings assembles the launch settings for projectDir. Precedence:
// environment overrides beat vividus.properties, which beats the defaults.
func (l *Loader) LoadSettings(projectDir string) (domain.Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	props := map[string]string{}
	propertiesPath := filepath.Join(projectDir, domain.PropertiesFileName)
	if fileExists(propertiesPath) {
		var err error
		props, err = parseProperties(propertiesPath)
		if err != nil {
			return domain.Settings{}, err
		}

		merged := make(map[string]any, len(props))
		for k, val := range props {
			merged[k] = val
		}
		if err := v.MergeConfigMap(merged); err != nil {
			return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsReadFailed.Error())
		}
	}

	jvmArgs, err := shellquote.Split(v.GetString("jvmArgs"))
	if err != nil {
		return domain.Settings{}, zerr.With(
			zerr.Wrap(err, domain.ErrInvalidJvmArgs.Error()),
			"jvmArgs", v.GetString("jvmArgs"),
		)
	}

	return domain.Settings{
		TreatKnownIssuesOnlyAsPassed:      v.GetBool("treatKnownIssuesOnlyAsPassed"),
		FileToSaveExitCode:                v.GetString("fileToSaveExitCode"),
		ResolvePathAgainstProjectBuildDir: v.GetBool("resolvePathAgainstProjectBuildDir"),
		ExpectedStatisticsFile:            v.GetString("expectedStatisticsFile"),
		OutputDir:                         v.GetString("outputDir"),
		RepositoryDir:                     v.GetString("repositoryDir"),
		JavaExecutable:                    v.GetString("javaExecutable"),
		JVMArgs:                           jvmArgs,
		SystemProperties:                  systemProperties(props),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("treatKnownIssuesOnlyAsPassed", false)
	v.SetDefault("fileToSaveExitCode", "")
	v.SetDefault("resolvePathAgainstProjectBuildDir", false)
	v.SetDefault("expectedStatisticsFile", "")
	v.SetDefault("outputDir", domain.DefaultOutputDirName)
	v.SetDefault("repositoryDir", domain.DefaultRepositoryPath())
	v.SetDefault("javaExecutable", "")
	v.SetDefault("jvmArgs", "")
}

// systemProperties extracts the forwarded vividus.* namespace with original
// key casing. Viper folds keys to lower case, which would corrupt Java
// system property names.
func systemProperties(props map[string]string) map[string]string {
	out := make(map[string]string)
	for k, val := range props {
		if strings.HasPrefix(k, systemPropertyPrefix) {
			out[k] = val
		}
	}
	return out
}

// parseProperties reads a java-properties style file: one key=value or
// key: value pair per line, # and ! comments, blank lines ignored. A line
// without a separator declares a key with an empty value.
func parseProperties(path string) (map[string]string, error) {
	// #nosec G304 -- path is below the caller's project directory
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()),
			"path", path,
		)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	props := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		sep := strings.IndexAny(line, "=:")
		if sep < 0 {
			props[line] = ""
			continue
		}
		key := strings.TrimSpace(line[:sep])
		if key == "" {
			continue
		}
		props[key] = strings.TrimSpace(line[sep+1:])
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrSettingsReadFailed.Error()),
			"path", path,
		)
	}
	return props, nil
}
