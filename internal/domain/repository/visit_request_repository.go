package repository

import (
	"time"

	"github.com/hoangnv/visitgate-api/internal/domain/entity"
)

// StatusPatch is the set of fields a status transition may touch. Everything
// else on a VisitRequest is immutable after creation.
type StatusPatch struct {
	Status       string
	Feedback     string
	ProposedTime string
	ArrivedAt    *time.Time
}

// VisitRequestRepository is the persistence port for VisitRequest.
//
// Create returns domain.ErrDuplicate when the ID is already taken (the
// ledger regenerates and retries). TransitionStatus applies the patch only
// if the stored status still equals from, a compare-and-set that keeps the
// transition atomic even against writers outside this process, and reports
// whether the guard held. GetByID returns (nil, nil) on a miss. List returns
// all requests ordered by CreatedAt descending; requests are never deleted.
type VisitRequestRepository interface {
	Create(r *entity.VisitRequest) error
	GetByID(id string) (*entity.VisitRequest, error)
	List() ([]*entity.VisitRequest, error)
	TransitionStatus(id, from string, patch StatusPatch) (bool, error)
}
