package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/cricket-live/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
}

func NewMatchRepository(seed []match.Match) *MatchRepository {
	matches := make(map[string]match.Match, len(seed))
	for _, item := range seed {
		matches[item.ID] = item
	}
	return &MatchRepository{matches: matches}
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		if filter.Status != "" && item.Status != filter.Status {
			continue
		}
		out = append(out, item)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].MatchDate.Equal(out[j].MatchDate) {
			return out[i].MatchDate.After(out[j].MatchDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.matches[id]
	return item, ok, nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[m.ID]; exists {
		return fmt.Errorf("match %s already exists", m.ID)
	}
	r.matches[m.ID] = m
	return nil
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.matches[m.ID]
	if !exists {
		return false, nil
	}
	m.CreatedAt = current.CreatedAt
	r.matches[m.ID] = m
	return true, nil
}

func (r *MatchRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.matches[id]; !exists {
		return false, nil
	}
	delete(r.matches, id)
	return true, nil
}
