package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStorage keeps links and clicks in process memory. It is the
// default backend when no database DSN is configured and is used
// throughout the tests.
type MemoryStorage struct {
	mu     sync.RWMutex
	links  map[string]LinkRecord // by id
	byCode map[string]string     // code -> id
	clicks map[string][]ClickRecord
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		links:  make(map[string]LinkRecord),
		byCode: make(map[string]string),
		clicks: make(map[string][]ClickRecord),
	}, nil
}

func (m *MemoryStorage) CreateLink(_ context.Context, link LinkRecord) (*LinkRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byCode[link.Code]; exists {
		return nil, ErrDuplicateCode
	}

	now := time.Now()
	if link.ID == "" {
		link.ID = uuid.New().String()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = now
	}
	link.UpdatedAt = link.CreatedAt

	m.links[link.ID] = link
	m.byCode[link.Code] = link.ID

	return &link, nil
}

func (m *MemoryStorage) CodeExists(_ context.Context, code string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.byCode[code]
	return exists, nil
}

func (m *MemoryStorage) FindActiveByCode(_ context.Context, code string) (*LinkRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.byCode[code]
	if !exists {
		return nil, ErrNotFound
	}

	link := m.links[id]
	if !link.IsActive {
		return nil, ErrNotFound
	}

	return &link, nil
}

func (m *MemoryStorage) FindByIDAndOwner(_ context.Context, id, userID string) (*LinkRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	link, exists := m.links[id]
	if !exists || link.UserID != userID {
		return nil, ErrNotFound
	}

	return &link, nil
}

func (m *MemoryStorage) FindByOwner(_ context.Context, userID string) ([]LinkWithClicks, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]LinkWithClicks, 0)
	for _, link := range m.links {
		if link.UserID == userID {
			result = append(result, LinkWithClicks{
				LinkRecord: link,
				ClickCount: len(m.clicks[link.ID]),
			})
		}
	}

	// Newest first, matching the postgres backend.
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (m *MemoryStorage) UpdateLink(_ context.Context, id, userID string, upd LinkUpdate) (*LinkRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, exists := m.links[id]
	if !exists || link.UserID != userID {
		return nil, ErrNotFound
	}

	link.Title = upd.Title
	link.Description = upd.Description
	link.IsActive = upd.IsActive
	link.UpdatedAt = time.Now()
	m.links[id] = link

	return &link, nil
}

func (m *MemoryStorage) DeleteLink(_ context.Context, id, userID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	link, exists := m.links[id]
	if !exists || link.UserID != userID {
		return "", nil
	}

	delete(m.links, id)
	delete(m.byCode, link.Code)
	delete(m.clicks, id)

	return link.Code, nil
}

func (m *MemoryStorage) WriteClicks(_ context.Context, clicks []ClickRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range clicks {
		if c.ID == "" {
			c.ID = uuid.New().String()
		}
		m.clicks[c.LinkID] = append(m.clicks[c.LinkID], c)
	}

	return nil
}

func (m *MemoryStorage) ClicksByLink(_ context.Context, linkID string) ([]ClickRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clicks := make([]ClickRecord, len(m.clicks[linkID]))
	copy(clicks, m.clicks[linkID])

	// Most recent first, matching the postgres backend.
	sort.Slice(clicks, func(i, j int) bool {
		return clicks[i].ClickedAt.After(clicks[j].ClickedAt)
	})

	return clicks, nil
}

func (m *MemoryStorage) Stats(_ context.Context) (Stats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := Stats{Links: len(m.links)}
	for _, cs := range m.clicks {
		s.Clicks += len(cs)
	}

	return s, nil
}

func (m *MemoryStorage) PingContext(_ context.Context) error {
	return nil
}
