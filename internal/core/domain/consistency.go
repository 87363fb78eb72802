package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// CheckConsistency enforces the version rules over the manifest's
// framework-group declarations and returns the resolved framework version.
//
// Either a bill of materials pins the whole family (and then no sibling may
// pin its own version), or every declaration carries the mandatory
// dependency's version. Declarations outside the framework group are not
// inspected.
func CheckConsistency(m Manifest) (string, error) {
	deps := m.FrameworkDependencies()

	var mandatory, bom *Dependency
	for i := range deps {
		switch {
		case deps[i].IsMandatory():
			mandatory = &deps[i]
		case deps[i].IsBom():
			bom = &deps[i]
		}
	}

	if mandatory == nil {
		return "", zerr.With(ErrMissingMandatoryDependency, "dependency", m.Group+":"+MandatoryDependencyName)
	}
	if bom != nil {
		return checkBomScheme(*bom, deps)
	}
	return checkPinnedScheme(*mandatory, deps)
}

func checkBomScheme(bom Dependency, deps []Dependency) (string, error) {
	if bom.Version == "" {
		return "", zerr.With(ErrMissingBomVersion, "dependency", bom.String())
	}

	var offenders []string
	for _, d := range deps {
		if !d.IsBom() && d.Version != "" {
			offenders = append(offenders, d.Name)
		}
	}
	if len(offenders) > 0 {
		return "", zerr.With(
			zerr.Wrap(ErrRedundantVersionsWithBom, "versions declared by: "+strings.Join(offenders, ", ")),
			"bom_version", bom.Version,
		)
	}
	return bom.Version, nil
}

func checkPinnedScheme(mandatory Dependency, deps []Dependency) (string, error) {
	if mandatory.Version == "" {
		return "", zerr.With(ErrUnpinnedFrameworkVersion, "dependency", mandatory.String())
	}

	var offenders []string
	for _, d := range deps {
		if !d.IsMandatory() && d.Version != mandatory.Version {
			offenders = append(offenders, d.Name)
		}
	}
	if len(offenders) > 0 {
		return "", zerr.With(
			zerr.Wrap(ErrVersionMismatch, "expected "+mandatory.Version+", declared otherwise by: "+strings.Join(offenders, ", ")),
			"expected_version", mandatory.Version,
		)
	}
	return mandatory.Version, nil
}
