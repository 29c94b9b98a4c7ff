package memory

import (
	"sort"
	"sync"

	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/repository"
)

var _ repository.VisitRequestRepository = (*VisitRequestRepo)(nil)

// VisitRequestRepo in-memory VisitRequestRepository.
type VisitRequestRepo struct {
	mu   sync.RWMutex
	reqs map[string]entity.VisitRequest
}

// NewVisitRequestRepository builds an empty store.
func NewVisitRequestRepository() *VisitRequestRepo {
	return &VisitRequestRepo{reqs: make(map[string]entity.VisitRequest)}
}

// Create inserts the request; returns ErrDuplicate if the ID is taken so the
// ledger can regenerate the code.
func (r *VisitRequestRepo) Create(req *entity.VisitRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.reqs[req.ID]; exists {
		return domain.ErrDuplicate
	}
	r.reqs[req.ID] = *req
	return nil
}

// GetByID returns (nil, nil) on a miss.
func (r *VisitRequestRepo) GetByID(id string) (*entity.VisitRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	req, ok := r.reqs[id]
	if !ok {
		return nil, nil
	}
	return &req, nil
}

// List returns all requests, CreatedAt descending.
func (r *VisitRequestRepo) List() ([]*entity.VisitRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.VisitRequest, 0, len(r.reqs))
	for _, req := range r.reqs {
		rr := req
		out = append(out, &rr)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// TransitionStatus applies the patch only when the stored status still
// equals from; the compare and the write share one lock.
func (r *VisitRequestRepo) TransitionStatus(id, from string, patch repository.StatusPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.reqs[id]
	if !ok || req.Status != from {
		return false, nil
	}
	req.Status = patch.Status
	req.Feedback = patch.Feedback
	req.ProposedTime = patch.ProposedTime
	if patch.ArrivedAt != nil {
		req.ArrivedAt = patch.ArrivedAt
	}
	r.reqs[id] = req
	return true, nil
}
