// Package service holds the typed access layer over the record store plus
// the validation and pure computation behind each dashboard card.
package service

import (
	"context"
	"encoding/json"

	"github.com/Krushna4142/FitOS-dashboard/internal"
	"github.com/Krushna4142/FitOS-dashboard/internal/storage"
)

// Journal is the single funnel for per-user persisted state. Handlers never
// touch the RecordStore directly, so feature keys and JSON codecs live in
// exactly one place. Writes are last-write-wins, matching the store
// contract.
type Journal struct {
	store  storage.RecordStore
	logger internal.Logger
}

func NewJournal(store storage.RecordStore, logger internal.Logger) *Journal {
	return &Journal{store: store, logger: logger}
}

// loadInto decodes the record for (user, feature) into out. A missing or
// undecodable record reports found=false; stored garbage is never fatal.
func (j *Journal) loadInto(ctx context.Context, userID, feature string, out interface{}) (bool, error) {
	raw, found, err := j.store.Get(ctx, userID, feature)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		j.logger.Warnf("journal: discarding malformed %s record for %s: %v", feature, userID, err)
		return false, nil
	}
	return true, nil
}

func (j *Journal) save(ctx context.Context, userID, feature string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return j.store.Put(ctx, userID, feature, raw)
}

func (j *Journal) LoadVitals(ctx context.Context, userID string) (*internal.VitalsSnapshot, bool, error) {
	var s internal.VitalsSnapshot
	found, err := j.loadInto(ctx, userID, storage.FeatureVitals, &s)
	if err != nil || !found {
		return nil, false, err
	}
	return &s, true, nil
}

func (j *Journal) SaveVitals(ctx context.Context, userID string, s *internal.VitalsSnapshot) error {
	return j.save(ctx, userID, storage.FeatureVitals, s)
}

func (j *Journal) LoadFoodLog(ctx context.Context, userID string) ([]internal.FoodLogEntry, error) {
	var entries []internal.FoodLogEntry
	if _, err := j.loadInto(ctx, userID, storage.FeatureFoodLog, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []internal.FoodLogEntry{}
	}
	return entries, nil
}

func (j *Journal) SaveFoodLog(ctx context.Context, userID string, entries []internal.FoodLogEntry) error {
	return j.save(ctx, userID, storage.FeatureFoodLog, entries)
}

func (j *Journal) LoadStreaks(ctx context.Context, userID string) (*internal.Streaks, bool, error) {
	var s internal.Streaks
	found, err := j.loadInto(ctx, userID, storage.FeatureStreaks, &s)
	if err != nil || !found {
		return nil, false, err
	}
	return &s, true, nil
}

func (j *Journal) SaveStreaks(ctx context.Context, userID string, s *internal.Streaks) error {
	return j.save(ctx, userID, storage.FeatureStreaks, s)
}

func (j *Journal) LoadBadges(ctx context.Context, userID string) ([]internal.Badge, bool, error) {
	var badges []internal.Badge
	found, err := j.loadInto(ctx, userID, storage.FeatureBadges, &badges)
	if err != nil || !found {
		return nil, false, err
	}
	return badges, true, nil
}

func (j *Journal) SaveBadges(ctx context.Context, userID string, badges []internal.Badge) error {
	return j.save(ctx, userID, storage.FeatureBadges, badges)
}

func (j *Journal) LoadActiveChallenges(ctx context.Context, userID string) ([]internal.ActiveItem, error) {
	return j.loadActive(ctx, userID, storage.FeatureActiveChallenges)
}

func (j *Journal) SaveActiveChallenges(ctx context.Context, userID string, items []internal.ActiveItem) error {
	return j.save(ctx, userID, storage.FeatureActiveChallenges, items)
}

func (j *Journal) LoadActivePrograms(ctx context.Context, userID string) ([]internal.ActiveItem, error) {
	return j.loadActive(ctx, userID, storage.FeatureActivePrograms)
}

func (j *Journal) SaveActivePrograms(ctx context.Context, userID string, items []internal.ActiveItem) error {
	return j.save(ctx, userID, storage.FeatureActivePrograms, items)
}

func (j *Journal) loadActive(ctx context.Context, userID, feature string) ([]internal.ActiveItem, error) {
	var items []internal.ActiveItem
	if _, err := j.loadInto(ctx, userID, feature, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []internal.ActiveItem{}
	}
	return items, nil
}

func (j *Journal) LoadQuickLog(ctx context.Context, userID string) ([]internal.QuickLogEntry, error) {
	var entries []internal.QuickLogEntry
	if _, err := j.loadInto(ctx, userID, storage.FeatureQuickLog, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []internal.QuickLogEntry{}
	}
	return entries, nil
}

func (j *Journal) SaveQuickLog(ctx context.Context, userID string, entries []internal.QuickLogEntry) error {
	return j.save(ctx, userID, storage.FeatureQuickLog, entries)
}
