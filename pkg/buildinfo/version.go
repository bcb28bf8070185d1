// Package buildinfo holds the version stamped into the movergraph binary.
//
// Set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/movergraph/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/movergraph/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/movergraph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/movergraph
package buildinfo

import "fmt"

var (
	Version = "dev"     // Semantic version, e.g. "v0.3.0"
	Commit  = "none"    // Git commit SHA
	Date    = "unknown" // Build timestamp
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// CacheScope returns the prefix that keeps cached plans of different
// versions apart. Placement rules may change between releases.
func CacheScope() string {
	return "v" + Version + ":"
}
