package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"contacts-backend/internal/domains/contact"
)

// memoryRepository là in-memory implementation của contact.Repository,
// dùng cho tests và chạy local không cần Postgres.
// Semantics (sort order, version check, idempotent delete) giống hệt bản postgres.
type memoryRepository struct {
	mu       sync.Mutex
	nextID   int64
	contacts map[int64]contact.Contact
}

func NewMemoryRepository() contact.Repository {
	return &memoryRepository{
		nextID:   1,
		contacts: make(map[int64]contact.Contact),
	}
}

func (r *memoryRepository) FindByID(_ context.Context, id int64) (*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contacts[id]
	if !ok {
		return nil, contact.ErrContactNotFound
	}
	return &c, nil
}

// matches áp dụng cùng predicate với searchClause bên postgres:
// OR của case-insensitive substring trên 6 fields
func matches(c *contact.Contact, search string) bool {
	if strings.TrimSpace(search) == "" {
		return true
	}
	term := strings.ToLower(search)
	for _, field := range []string{c.Name, c.Email, c.Phone, c.Address, string(c.Type), string(c.Role)} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// sorted trả về snapshot các contacts khớp search, contact_id DESC.
// Caller phải giữ r.mu.
func (r *memoryRepository) sorted(search string) []contact.Contact {
	result := []contact.Contact{}
	for _, c := range r.contacts {
		if matches(&c, search) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ContactID > result[j].ContactID
	})
	return result
}

func (r *memoryRepository) FindAll(_ context.Context, search string) ([]contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(search), nil
}

func (r *memoryRepository) FindPage(_ context.Context, q contact.PageQuery) ([]contact.Contact, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.sorted(q.Search)
	total := int64(len(all))

	start := q.Offset
	if start > len(all) {
		start = len(all)
	}
	end := start + q.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *memoryRepository) FindByEmailAndRole(_ context.Context, email string, role contact.Role) (*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contacts {
		if strings.EqualFold(c.Email, email) && c.Role == role {
			found := c
			return &found, nil
		}
	}
	return nil, contact.ErrContactNotFound
}

func (r *memoryRepository) Save(_ context.Context, c *contact.Contact) (*contact.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *c
	if c.ContactID == 0 {
		saved.ContactID = r.nextID
		r.nextID++
		saved.CreatedAt = time.Now().Truncate(24 * time.Hour)
		saved.Version = 1
	} else {
		current, ok := r.contacts[c.ContactID]
		if !ok {
			return nil, contact.ErrContactNotFound
		}
		if current.Version != c.Version {
			return nil, contact.ErrVersionConflict
		}
		saved.CreatedAt = current.CreatedAt
		saved.Version = current.Version + 1
	}

	r.contacts[saved.ContactID] = saved
	return &saved, nil
}

func (r *memoryRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.contacts, id)
	return nil
}
