package storage

import (
	"context"
	"encoding/json"
)

// Feature keys under which per-user records are stored. Every call site
// funnels through these constants so key construction lives in one place.
const (
	FeatureVitals           = "vitals"
	FeatureFoodLog          = "food-log"
	FeatureStreaks          = "streaks"
	FeatureBadges           = "badges"
	FeatureActiveChallenges = "active-challenges"
	FeatureActivePrograms   = "active-programs"
	FeatureQuickLog         = "quick-log"
)

// RecordStore is the per-user key-value contract behind every dashboard
// card. Records are raw JSON namespaced by (userID, feature); writes to the
// same key are last-write-wins with no merge. Get reports found=false for
// missing records; a stored record that is not valid JSON is also treated
// as absent rather than an error.
type RecordStore interface {
	Get(ctx context.Context, userID, feature string) (json.RawMessage, bool, error)
	Put(ctx context.Context, userID, feature string, value json.RawMessage) error
	Delete(ctx context.Context, userID, feature string) error
	Close() error
}
