package appointments

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// MemoryRepository assigns ids from an in-process counter. The counter
// bump and the append share one critical section.
type MemoryRepository struct {
	mu     sync.Mutex
	lastID int64
	items  []models.Appointment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Append(_ context.Context, date time.Time, patient, caregiver, vaccine string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	r.items = append(r.items, models.Appointment{
		ID:        r.lastID,
		Date:      date,
		Patient:   patient,
		Caregiver: caregiver,
		Vaccine:   vaccine,
	})
	return r.lastID, nil
}

func (r *MemoryRepository) ByPatient(_ context.Context, patient string) ([]models.Appointment, error) {
	result := r.filter(func(a models.Appointment) bool { return a.Patient == patient })
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Caregiver != result[j].Caregiver {
			return result[i].Caregiver < result[j].Caregiver
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *MemoryRepository) ByPatientByID(_ context.Context, patient string) ([]models.Appointment, error) {
	return r.filter(func(a models.Appointment) bool { return a.Patient == patient }), nil
}

func (r *MemoryRepository) ByCaregiver(_ context.Context, caregiver string) ([]models.Appointment, error) {
	return r.filter(func(a models.Appointment) bool { return a.Caregiver == caregiver }), nil
}

// Booked reports whether caregiver already has an appointment on date.
func (r *MemoryRepository) Booked(caregiver string, date time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := models.FormatDate(date)
	for _, a := range r.items {
		if a.Caregiver == caregiver && models.FormatDate(a.Date) == key {
			return true
		}
	}
	return false
}

// filter returns matches in id order, the order items were appended in.
func (r *MemoryRepository) filter(keep func(models.Appointment) bool) []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]models.Appointment, 0)
	for _, a := range r.items {
		if keep(a) {
			result = append(result, a)
		}
	}
	return result
}
