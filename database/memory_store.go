package database

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"profilekit/models"
)

// MemoryStore keeps profiles in a map guarded by a mutex. It honours the same
// contract as ProfileStore, including never reusing a deleted id.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[int64]models.Profile
	lastID   int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{profiles: make(map[int64]models.Profile)}
}

func (m *MemoryStore) ListProfiles() ([]models.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]int64, 0, len(m.profiles))
	for id := range m.profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]models.Profile, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.profiles[id].Clone())
	}
	return out, nil
}

func (m *MemoryStore) GetProfile(id int64) (models.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[id]
	if !ok {
		return models.Profile{}, fmt.Errorf("profile with ID %d: %w", id, ErrRecordNotFound)
	}
	return p.Clone(), nil
}

func (m *MemoryStore) InsertProfile(p models.Profile) (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID != 0 {
		if _, ok := m.profiles[p.ID]; ok {
			return p, fmt.Errorf("profile with ID %d: %w", p.ID, ErrIDTaken)
		}
	} else {
		if m.lastID == math.MaxInt64 {
			return p, ErrIDSpaceExhausted
		}
		p.ID = m.lastID + 1
	}
	if p.ID > m.lastID {
		m.lastID = p.ID
	}
	stored := normalizeProfile(p)
	m.profiles[p.ID] = stored
	return stored.Clone(), nil
}

func (m *MemoryStore) UpdateProfile(id int64, mutate func(*models.Profile) error) (models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.profiles[id]
	if !ok {
		return models.Profile{}, fmt.Errorf("profile with ID %d: %w", id, ErrRecordNotFound)
	}
	updated := current.Clone()
	if err := mutate(&updated); err != nil {
		return current.Clone(), err
	}
	updated.ID = id
	if updated.Kind != current.Kind {
		return current.Clone(), fmt.Errorf("profile with ID %d (%s): %w", id, current.Kind, ErrKindChanged)
	}
	updated = normalizeProfile(updated)
	m.profiles[id] = updated
	return updated.Clone(), nil
}

func (m *MemoryStore) DeleteProfile(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[id]; !ok {
		return fmt.Errorf("profile with ID %d: %w", id, ErrRecordNotFound)
	}
	delete(m.profiles, id)
	return nil
}
