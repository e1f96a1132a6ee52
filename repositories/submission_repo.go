// repository hides the store backend behind an interface; the service never knows
// whether the latest submissions live in memory, in Redis or in a SQL database.

package repositories

import (
	"errors"
	"sort"
	"sync"

	"FormLab/models"
)

// ErrNotFound is returned when a variant has no stored submission yet.
var ErrNotFound = errors.New("submission not found")

// SubmissionRepository keeps at most one submission per variant.
type SubmissionRepository interface {
	Save(s *models.Submission) error                   // insert or overwrite the slot of s.Variant
	Find(v models.Variant) (*models.Submission, error) // ErrNotFound when the slot is empty
	ClearNewFlag(v models.Variant, id string) error    // isNew -> false only while the slot still holds submission id
	List() ([]models.Submission, error)                // every filled slot, ordered by variant
}

// IsNotFound checks the repository sentinel (wrapped or direct).
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// memoryRepo is the default backend: process memory, lost on restart.
type memoryRepo struct {
	mu    sync.RWMutex
	slots map[models.Variant]models.Submission
}

func NewMemoryRepository() SubmissionRepository {
	return &memoryRepo{slots: make(map[models.Variant]models.Submission)}
}

func (r *memoryRepo) Save(s *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[s.Variant] = *s // store a copy; callers keep their own pointer
	return nil
}

func (r *memoryRepo) Find(v models.Variant) (*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.slots[v]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *memoryRepo) ClearNewFlag(v models.Variant, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[v]; ok && s.ID == id {
		s.IsNew = false
		r.slots[v] = s
	}
	return nil
}

func (r *memoryRepo) List() ([]models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]models.Submission, 0, len(r.slots))
	for _, s := range r.slots {
		items = append(items, s)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Variant < items[j].Variant })
	return items, nil
}
