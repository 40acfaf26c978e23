package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

var ErrAlreadyJoined = errors.New("already joined")

// JoinChallenge adds a challenge to the user's active set at zero progress.
func JoinChallenge(ctx context.Context, journal *Journal, userID string, id int, now time.Time) ([]internal.ActiveItem, error) {
	items, err := journal.LoadActiveChallenges(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err = appendActive(items, id, now)
	if err != nil {
		return nil, err
	}
	if err := journal.SaveActiveChallenges(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// JoinProgram adds a meal program to the user's active set.
func JoinProgram(ctx context.Context, journal *Journal, userID string, id int, now time.Time) ([]internal.ActiveItem, error) {
	items, err := journal.LoadActivePrograms(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err = appendActive(items, id, now)
	if err != nil {
		return nil, err
	}
	if err := journal.SaveActivePrograms(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

func appendActive(items []internal.ActiveItem, id int, now time.Time) ([]internal.ActiveItem, error) {
	for _, item := range items {
		if item.ID == id {
			return nil, ErrAlreadyJoined
		}
	}
	return append(items, internal.ActiveItem{ID: id, JoinedAt: now}), nil
}

// AppendQuickLog records a one-tap activity from the wellness hub.
func AppendQuickLog(ctx context.Context, journal *Journal, userID, activity string, now time.Time) (*internal.QuickLogEntry, error) {
	entries, err := journal.LoadQuickLog(ctx, userID)
	if err != nil {
		return nil, err
	}
	entry := internal.QuickLogEntry{
		ID:        uuid.NewString(),
		Activity:  activity,
		Timestamp: now,
	}
	entries = append(entries, entry)
	if err := journal.SaveQuickLog(ctx, userID, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}
