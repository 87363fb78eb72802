package ports

// ClasspathStore defines the interface for caching resolved classpaths.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ClasspathStore interface {
	// Get retrieves the cached classpath entries for a given cache key.
	// Returns nil, nil if not found.
	Get(projectDir, key string) ([]string, error)

	// Put stores the classpath entries under the given cache key.
	Put(projectDir, key string, entries []string) error
}
