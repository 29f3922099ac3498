package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrVersionMismatch is returned when the running binary does not satisfy the
// project's "requires" constraint.
var ErrVersionMismatch = errors.New("aocgen version does not satisfy project requirement")

// CheckRequires verifies version against the project's semver constraint.
// Projects without a constraint and non-release builds ("dev") always pass.
func (p *Project) CheckRequires(version string) error {
	if p.Requires == "" || version == "" || version == "dev" {
		return nil
	}

	c, err := semver.NewConstraint(p.Requires)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", p.Requires, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", version, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: have %s, project requires %s", ErrVersionMismatch, v, p.Requires)
	}
	return nil
}
