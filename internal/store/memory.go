package store

import (
	"errors"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"weather-insights/internal/models"
)

var (
	// ErrNotFound is returned when a user has no record with the requested id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidUser is returned for an empty user id.
	ErrInvalidUser = errors.New("user id is required")
)

// DefaultMaxHistory bounds the saved analyses kept per user.
const DefaultMaxHistory = 100

type userData struct {
	analyses    []models.SavedAnalysis
	favorites   []models.Favorite
	preferences *models.Preferences
}

// MemoryStore is a concurrency-safe in-memory store keyed by opaque user id.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]*userData

	clock      clockwork.Clock
	maxHistory int
}

type Option func(*MemoryStore)

func WithClock(c clockwork.Clock) Option {
	return func(s *MemoryStore) { s.clock = c }
}

// WithMaxHistory caps saved analyses per user; n <= 0 means unlimited.
func WithMaxHistory(n int) Option {
	return func(s *MemoryStore) { s.maxHistory = n }
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		users:      make(map[string]*userData),
		clock:      clockwork.NewRealClock(),
		maxHistory: DefaultMaxHistory,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// user returns the record for id, creating it. Callers hold the write lock.
func (s *MemoryStore) user(id string) *userData {
	u, ok := s.users[id]
	if !ok {
		u = &userData{}
		s.users[id] = u
	}
	return u
}

func validUser(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidUser
	}
	return nil
}

// SaveAnalysis appends a history entry, assigning its id and timestamp.
func (s *MemoryStore) SaveAnalysis(userID string, a models.SavedAnalysis) (models.SavedAnalysis, error) {
	if err := validUser(userID); err != nil {
		return models.SavedAnalysis{}, err
	}

	a.ID = uuid.NewString()
	a.UserID = userID
	a.CreatedAt = s.clock.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.user(userID)
	u.analyses = append(u.analyses, a)
	if s.maxHistory > 0 && len(u.analyses) > s.maxHistory {
		over := len(u.analyses) - s.maxHistory
		u.analyses = slices.Delete(u.analyses, 0, over)
	}

	return a, nil
}

// ListAnalyses returns the user's history newest first.
func (s *MemoryStore) ListAnalyses(userID string) []models.SavedAnalysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return []models.SavedAnalysis{}
	}

	out := slices.Clone(u.analyses)
	slices.Reverse(out)

	return out
}

func (s *MemoryStore) DeleteAnalysis(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}

	i := slices.IndexFunc(u.analyses, func(a models.SavedAnalysis) bool { return a.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	u.analyses = slices.Delete(u.analyses, i, i+1)

	return nil
}

// AddFavorite stores a favorite location. Adding a location the user already
// has (same coordinates to four decimals) returns the existing entry.
func (s *MemoryStore) AddFavorite(userID string, f models.Favorite) (models.Favorite, error) {
	if err := validUser(userID); err != nil {
		return models.Favorite{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.user(userID)
	for _, existing := range u.favorites {
		if sameSpot(existing, f) {
			return existing, nil
		}
	}

	f.ID = uuid.NewString()
	f.UserID = userID
	f.CreatedAt = s.clock.Now().UTC()
	u.favorites = append(u.favorites, f)

	return f, nil
}

func (s *MemoryStore) ListFavorites(userID string) []models.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return []models.Favorite{}
	}

	return slices.Clone(u.favorites)
}

func (s *MemoryStore) RemoveFavorite(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return ErrNotFound
	}

	i := slices.IndexFunc(u.favorites, func(f models.Favorite) bool { return f.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	u.favorites = slices.Delete(u.favorites, i, i+1)

	return nil
}

// AllFavorites returns every user's favorites, ordered by user id then insertion.
func (s *MemoryStore) AllFavorites() []models.Favorite {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var out []models.Favorite
	for _, id := range ids {
		out = append(out, s.users[id].favorites...)
	}

	return out
}

func (s *MemoryStore) GetPreferences(userID string) (models.Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok || u.preferences == nil {
		return models.Preferences{}, ErrNotFound
	}

	p := *u.preferences
	p.Activities = slices.Clone(p.Activities)
	p.Sensitivities = slices.Clone(p.Sensitivities)

	return p, nil
}

func (s *MemoryStore) SavePreferences(userID string, p models.Preferences) error {
	if err := validUser(userID); err != nil {
		return err
	}

	p.Activities = slices.Clone(p.Activities)
	p.Sensitivities = slices.Clone(p.Sensitivities)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user(userID).preferences = &p

	return nil
}

func sameSpot(a, b models.Favorite) bool {
	const eps = 1e-4
	return math.Abs(a.Latitude-b.Latitude) < eps && math.Abs(a.Longitude-b.Longitude) < eps
}
