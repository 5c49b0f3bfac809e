package availabilities

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// Bookings reports whether a (caregiver, date) pair already has an
// appointment.
type Bookings interface {
	Booked(caregiver string, date time.Time) bool
}

// MemoryRepository keeps slots per formatted date behind one mutex.
type MemoryRepository struct {
	mu       sync.Mutex
	slots    map[string]map[string]struct{}
	bookings Bookings
}

// NewMemoryRepository accepts a nil bookings, in which case every pair is
// treated as unbooked.
func NewMemoryRepository(bookings Bookings) *MemoryRepository {
	return &MemoryRepository{
		slots:    make(map[string]map[string]struct{}),
		bookings: bookings,
	}
}

func (r *MemoryRepository) Publish(_ context.Context, caregiver string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.booked(caregiver, date) {
		return nil
	}

	key := models.FormatDate(date)
	if r.slots[key] == nil {
		r.slots[key] = make(map[string]struct{})
	}
	r.slots[key][caregiver] = struct{}{}
	return nil
}

func (r *MemoryRepository) PickAndConsume(_ context.Context, date time.Time) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := models.FormatDate(date)
	for _, caregiver := range r.sorted(key) {
		delete(r.slots[key], caregiver)
		if !r.booked(caregiver, date) {
			return caregiver, true, nil
		}
	}
	return "", false, nil
}

func (r *MemoryRepository) ListAvailable(_ context.Context, date time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]string, 0)
	for _, caregiver := range r.sorted(models.FormatDate(date)) {
		if !r.booked(caregiver, date) {
			result = append(result, caregiver)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Restore(ctx context.Context, caregiver string, date time.Time) error {
	return r.Publish(ctx, caregiver, date)
}

func (r *MemoryRepository) booked(caregiver string, date time.Time) bool {
	return r.bookings != nil && r.bookings.Booked(caregiver, date)
}

// sorted must be called with mu held.
func (r *MemoryRepository) sorted(key string) []string {
	result := make([]string, 0, len(r.slots[key]))
	for caregiver := range r.slots[key] {
		result = append(result, caregiver)
	}
	sort.Strings(result)
	return result
}
