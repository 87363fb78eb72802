package ports

import "github.com/vividus-framework/vividus-cli/internal/core/domain"

// ClasspathResolver defines the interface for turning a manifest into runner
// classpath entries.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ClasspathResolver interface {
	// Resolve locates every manifest dependency in the artifact repository
	// rooted at repoDir, framework dependencies at the resolved framework
	// version, and returns the classpath entries in resolution order.
	// Bill-of-materials entries contribute no entry. Manifest resource
	// directories that exist are appended.
	Resolve(repoDir string, manifest domain.Manifest, version string) ([]string, error)

	// CacheKey derives the stable cache key for a resolution.
	CacheKey(repoDir string, manifest domain.Manifest, version string) string
}
