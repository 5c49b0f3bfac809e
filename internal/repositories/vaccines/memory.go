package vaccines

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/vaxscheduler/internal/common"
	"github.com/dmitrijs2005/vaxscheduler/internal/models"
)

// MemoryRepository is a process-local ledger. One mutex guards the whole
// table, which makes TryReserveOne a single critical section.
type MemoryRepository struct {
	mu    sync.Mutex
	doses map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{doses: make(map[string]int)}
}

func (r *MemoryRepository) AddDoses(_ context.Context, name string, count int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.doses[name] += count
	return r.doses[name], nil
}

func (r *MemoryRepository) TryReserveOne(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.doses[name] <= 0 {
		return false, nil
	}
	r.doses[name]--
	return true, nil
}

func (r *MemoryRepository) ReleaseOne(_ context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.doses[name]; !ok {
		return common.ErrorNotFound
	}
	r.doses[name]++
	return nil
}

func (r *MemoryRepository) List(_ context.Context) ([]models.Vaccine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]models.Vaccine, 0, len(r.doses))
	for name, doses := range r.doses {
		result = append(result, models.Vaccine{Name: name, Doses: doses})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
