package jvm

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vividus-framework/vividus-cli/internal/core/domain"
)

func TestBuildArgs(t *testing.T) {
	sep := string(os.PathListSeparator)

	tests := []struct {
		name     string
		inv      domain.Invocation
		expected []string
	}{
		{
			name: "full invocation",
			inv: domain.Invocation{
				MainClass: domain.StoriesRunnerClass,
				Classpath: []string{"/repo/vividus/0.6.7/vividus-0.6.7.jar", "/project/src/main/resources"},
				SystemProperties: map[string]string{
					"vividus.configuration.profiles": "web",
					"file.encoding":                  "UTF-8",
				},
				JVMArgs: []string{"-Xmx2g", "-XX:+UseG1GC"},
				Args:    []string{"--verbose"},
			},
			expected: []string{
				"-Xmx2g",
				"-XX:+UseG1GC",
				"-cp",
				"/repo/vividus/0.6.7/vividus-0.6.7.jar" + sep + "/project/src/main/resources",
				"-Dfile.encoding=UTF-8",
				"-Dvividus.configuration.profiles=web",
				domain.StoriesRunnerClass,
				"--verbose",
			},
		},
		{
			name: "main class only",
			inv: domain.Invocation{
				MainClass: domain.StepsPrinterClass,
			},
			expected: []string{domain.StepsPrinterClass},
		},
		{
			name: "no classpath leaves out -cp",
			inv: domain.Invocation{
				MainClass:        domain.ScenariosCounterClass,
				SystemProperties: map[string]string{"key": "value"},
			},
			expected: []string{"-Dkey=value", domain.ScenariosCounterClass},
		},
		{
			name: "system properties sorted by key",
			inv: domain.Invocation{
				MainClass: domain.StoriesRunnerClass,
				SystemProperties: map[string]string{
					"zeta":  "1",
					"alpha": "2",
					"mid":   "3",
				},
			},
			expected: []string{"-Dalpha=2", "-Dmid=3", "-Dzeta=1", domain.StoriesRunnerClass},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildArgs(tt.inv))
		})
	}
}
