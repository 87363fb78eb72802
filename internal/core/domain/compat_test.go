package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vividus-framework/vividus-cli/internal/core/domain"
)

func TestCheckFrameworkVersion(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		expectedErr error
	}{
		{name: "current release", version: "0.6.7"},
		{name: "exactly the minimum", version: "0.5.0"},
		{name: "snapshot of the minimum", version: "0.5.0-SNAPSHOT"},
		{name: "newer major", version: "1.0.0"},
		{
			name:        "older release",
			version:     "0.4.12",
			expectedErr: domain.ErrUnsupportedFrameworkVersion,
		},
		{
			name:        "snapshot of an older release",
			version:     "0.4.0-SNAPSHOT",
			expectedErr: domain.ErrUnsupportedFrameworkVersion,
		},
		{
			name:        "not a semantic version",
			version:     "latest.release",
			expectedErr: domain.ErrUnparsableFrameworkVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.CheckFrameworkVersion(tt.version)
			if tt.expectedErr != nil {
				require.Error(t, err)
				require.ErrorContains(t, err, tt.expectedErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}
