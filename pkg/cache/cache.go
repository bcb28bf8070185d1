// Package cache stores finished placement plans keyed by their inputs.
//
// A plan depends only on the structure file and the run settings, so the
// pipeline keys it by the SHA-256 of the file bytes plus a hash of the
// settings. Worker count is not part of the key: graphs do not depend on it.
//
// [FileCache] keeps entries under the user cache directory for the CLI, and
// [NullCache] disables caching.
package cache

import (
	"context"
	"fmt"
	"time"
)

// DefaultTTL is how long a cached plan stays valid.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases resources held by the cache.
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// PlanKey returns the key of a plan for a structure file and settings.
	PlanKey(structureHash string, opts PlanKeyOpts) string
}

// PlanKeyOpts lists every setting that changes a plan.
type PlanKeyOpts struct {
	CoarseStep      float64 `json:"coarse_step"`
	FineStep        float64 `json:"fine_step"`
	PreferenceScale float64 `json:"preference_scale"`
	ProbeRadius     float64 `json:"probe_radius"`
	Algorithm       string  `json:"algorithm"`
}

// DefaultKeyer produces keys of the form "plan:<file hash>:<settings hash>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PlanKey implements Keyer.
func (DefaultKeyer) PlanKey(structureHash string, opts PlanKeyOpts) string {
	return hashKey(fmt.Sprintf("plan:%s", structureHash), opts)
}
