package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type fakeDirectory struct {
	mu      sync.Mutex
	stores  map[uint]*models.Store
	workers map[uint]*models.Worker
	clients map[uint]*models.Client
	friends map[[2]uint]bool
	nextID  uint
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		stores:  map[uint]*models.Store{},
		workers: map[uint]*models.Worker{},
		clients: map[uint]*models.Client{},
		friends: map[[2]uint]bool{},
		nextID:  1,
	}
}

func (f *fakeDirectory) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeDirectory) CreateStore(_ context.Context, s *models.Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.stores {
		if existing.Slug == s.Slug {
			return httperr.ErrBusiness("store_slug_taken")
		}
	}
	s.ID = f.id()
	cp := *s
	f.stores[s.ID] = &cp
	return nil
}

func (f *fakeDirectory) UpdateStore(_ context.Context, s *models.Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	cp.Workers = nil
	f.stores[s.ID] = &cp
	return nil
}

func (f *fakeDirectory) withWorkers(s *models.Store) *models.Store {
	cp := *s
	cp.Workers = nil
	for _, w := range f.workers {
		if w.StoreID == s.ID && w.Active {
			cp.Workers = append(cp.Workers, *w)
		}
	}
	directory.SortWorkers(cp.Workers)
	return &cp
}

func (f *fakeDirectory) GetStore(_ context.Context, id uint) (*models.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.stores[id]
	if !ok {
		return nil, httperr.ErrBusiness("store_not_found")
	}
	return f.withWorkers(s), nil
}

func (f *fakeDirectory) GetStoreBySlug(_ context.Context, slug string) (*models.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.stores {
		if s.Slug == slug {
			return f.withWorkers(s), nil
		}
	}
	return nil, httperr.ErrBusiness("store_not_found")
}

func (f *fakeDirectory) ListStores(_ context.Context, filter directory.StoreFilter) ([]models.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Store
	for _, s := range f.stores {
		q := strings.ToLower(filter.Query)
		if q != "" && !strings.Contains(strings.ToLower(s.Name), q) && !strings.Contains(strings.ToLower(s.Address), q) {
			continue
		}
		if filter.City != "" && !strings.EqualFold(filter.City, s.City) {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeDirectory) ListWorkers(_ context.Context, storeID uint, includeInactive bool) ([]models.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Worker
	for _, w := range f.workers {
		if w.StoreID == storeID && (includeInactive || w.Active) {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (f *fakeDirectory) CreateWorker(_ context.Context, w *models.Worker) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.ID = f.id()
	cp := *w
	f.workers[w.ID] = &cp
	return nil
}

func (f *fakeDirectory) UpdateWorker(_ context.Context, w *models.Worker) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *w
	f.workers[w.ID] = &cp
	return nil
}

func (f *fakeDirectory) GetWorker(_ context.Context, id uint) (*models.Worker, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, ok := f.workers[id]
	if !ok {
		return nil, httperr.ErrBusiness("worker_not_found")
	}
	cp := *w
	return &cp, nil
}

func (f *fakeDirectory) CreateClient(_ context.Context, c *models.Client) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.clients {
		if existing.Email == c.Email {
			return httperr.ErrBusiness("email_taken")
		}
	}
	c.ID = f.id()
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeDirectory) UpdateClient(_ context.Context, c *models.Client) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.clients {
		if existing.ID != c.ID && existing.Email == c.Email {
			return httperr.ErrBusiness("email_taken")
		}
	}
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeDirectory) GetClient(_ context.Context, id uint) (*models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.clients[id]
	if !ok {
		return nil, httperr.ErrBusiness("client_not_found")
	}
	cp := *c
	return &cp, nil
}

func (f *fakeDirectory) GetClientByEmail(_ context.Context, email string) (*models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.clients {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("friend_not_found")
}

func (f *fakeDirectory) ListFriends(_ context.Context, clientID uint) ([]models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Client{}
	for pair := range f.friends {
		if pair[0] == clientID {
			out = append(out, *f.clients[pair[1]])
		}
	}
	directory.SortClients(out)
	return out, nil
}

func (f *fakeDirectory) IsFriend(_ context.Context, clientID, friendID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.friends[[2]uint{clientID, friendID}], nil
}

func (f *fakeDirectory) AddFriendship(_ context.Context, clientID, friendID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.friends[[2]uint{clientID, friendID}] = true
	f.friends[[2]uint{friendID, clientID}] = true
	return nil
}

func (f *fakeDirectory) RemoveFriendship(_ context.Context, clientID, friendID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.friends[[2]uint{clientID, friendID}] {
		return httperr.ErrBusiness("friend_not_found")
	}
	delete(f.friends, [2]uint{clientID, friendID})
	delete(f.friends, [2]uint{friendID, clientID})
	return nil
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
	hits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dst any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	m.hits++
	return true, json.Unmarshal(b, dst)
}

func (m *memoryCache) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = b
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

type nopSink struct{}

func (nopSink) Write(audit.Event) error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
