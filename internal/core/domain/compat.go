package domain

import (
	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// MinimumFrameworkVersion is the oldest framework release the runner
// entrypoints are known to work against.
const MinimumFrameworkVersion = "0.5.0"

// CheckFrameworkVersion gates a resolved framework version against
// MinimumFrameworkVersion. SNAPSHOT builds of the minimum release pass.
// Versions that are not semantic versions return
// ErrUnparsableFrameworkVersion so the caller can downgrade the finding to a
// warning instead of refusing to run.
func CheckFrameworkVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return zerr.With(ErrUnparsableFrameworkVersion, "version", version)
	}

	// The -0 prerelease floor admits SNAPSHOT prereleases of the minimum.
	constraint, err := semver.NewConstraint(">= " + MinimumFrameworkVersion + "-0")
	if err != nil {
		return zerr.Wrap(err, "invalid minimum version constraint")
	}

	if !constraint.Check(v) {
		return zerr.With(
			zerr.Wrap(ErrUnsupportedFrameworkVersion, "requires at least "+MinimumFrameworkVersion+", resolved "+version),
			"resolved_version", version,
		)
	}
	return nil
}
