package usecase

import (
	"hash/fnv"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hoangnv/visitgate-api/internal/application/dto"
	"github.com/hoangnv/visitgate-api/internal/domain"
	"github.com/hoangnv/visitgate-api/internal/domain/access"
	"github.com/hoangnv/visitgate-api/internal/domain/entity"
	"github.com/hoangnv/visitgate-api/internal/domain/org"
	"github.com/hoangnv/visitgate-api/internal/domain/repository"
	"github.com/hoangnv/visitgate-api/internal/domain/visit"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// submit retries on an ID collision before giving up.
	maxCodeAttempts = 5

	// write stripes; one mutex per stripe serializes transitions per request
	// ID within the process, the repository's compare-and-set covers writers
	// outside it.
	lockStripes = 32
)

// VisitUseCase is the request ledger: it owns submission, the approval state
// machine, anonymous tracking and the scoped listing. All authorization goes
// through the injected access.Policy.
type VisitUseCase struct {
	visits repository.VisitRequestRepository
	policy access.Policy
	locks  [lockStripes]sync.Mutex
}

// NewVisitUseCase builds the ledger.
func NewVisitUseCase(visits repository.VisitRequestRepository, policy access.Policy) *VisitUseCase {
	return &VisitUseCase{visits: visits, policy: policy}
}

func (uc *VisitUseCase) lockFor(id string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(id))
	return &uc.locks[h.Sum32()%lockStripes]
}

// Submit files a new PENDING request. The unit path is resolved against the
// directory and frozen into the record; the short code is regenerated on
// collision rather than failing the submission.
func (uc *VisitUseCase) Submit(in dto.SubmitVisitRequest) (*dto.VisitResponse, error) {
	if in.VisitorName == "" || in.VisitorID == "" || in.VisitorPhone == "" ||
		in.Relationship == "" || in.SoldierName == "" || in.SoldierRank == "" ||
		in.TimeSlot == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse(dateLayout, in.VisitDate); err != nil {
		return nil, domain.ErrInvalidInput
	}

	parent, err := org.ResolveParent(in.Category, in.ParentUnit)
	if err != nil {
		return nil, err
	}
	// A visit targets one concrete sub-unit, never the whole-unit sentinel.
	if in.SpecificUnit == org.WholeUnit || !org.IsValidPath(parent.Name, in.SpecificUnit) {
		return nil, domain.ErrInvalidUnitPath
	}

	r := &entity.VisitRequest{
		VisitorName:  strings.TrimSpace(in.VisitorName),
		VisitorID:    strings.TrimSpace(in.VisitorID),
		VisitorPhone: strings.TrimSpace(in.VisitorPhone),
		Relationship: in.Relationship,
		SoldierName:  strings.TrimSpace(in.SoldierName),
		SoldierRank:  in.SoldierRank,
		ParentUnit:   parent.Name,
		SpecificUnit: in.SpecificUnit,
		UnitCategory: in.Category,
		VisitDate:    in.VisitDate,
		TimeSlot:     in.TimeSlot,
		Note:         in.Note,
		Status:       entity.StatusPending,
		CreatedAt:    time.Now(),
	}
	for attempt := 0; ; attempt++ {
		r.ID = visit.NewCode()
		err := uc.visits.Create(r)
		if err == nil {
			break
		}
		if err != domain.ErrDuplicate || attempt+1 >= maxCodeAttempts {
			return nil, err
		}
	}
	return toVisitResponse(r), nil
}

// Approve moves PENDING → APPROVED and stores the officer's feedback.
func (uc *VisitUseCase) Approve(actor *entity.Account, id, feedback string) (*dto.VisitResponse, error) {
	return uc.decide(actor, id, entity.StatusApproved, feedback, "")
}

// Reject moves PENDING → REJECTED and stores the officer's feedback.
func (uc *VisitUseCase) Reject(actor *entity.Account, id, feedback string) (*dto.VisitResponse, error) {
	return uc.decide(actor, id, entity.StatusRejected, feedback, "")
}

// Repropose moves PENDING → REPROPOSED with a new time window. The record is
// terminal afterwards: the visitor re-files rather than the same code being
// transitioned again.
func (uc *VisitUseCase) Repropose(actor *entity.Account, id, startTime, endTime, feedback string) (*dto.VisitResponse, error) {
	start, err := time.Parse(timeLayout, startTime)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	end, err := time.Parse(timeLayout, endTime)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !start.Before(end) {
		return nil, domain.ErrInvalidInput
	}
	return uc.decide(actor, id, entity.StatusReproposed, feedback, startTime+" - "+endTime)
}

// decide applies one officer transition under the record's write stripe.
// Scope is checked before the state machine so an out-of-scope caller learns
// nothing about the record's status.
func (uc *VisitUseCase) decide(actor *entity.Account, id, to, feedback, proposedTime string) (*dto.VisitResponse, error) {
	mu := uc.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	r, err := uc.visits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.policy.CanView(actor, r) {
		return nil, domain.ErrForbidden
	}
	if !visit.CanTransition(r.Status, to) {
		return nil, domain.ErrInvalidTransition
	}
	ok, err := uc.visits.TransitionStatus(id, r.Status, repository.StatusPatch{
		Status:       to,
		Feedback:     feedback,
		ProposedTime: proposedTime,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}
	r.Status = to
	r.Feedback = feedback
	r.ProposedTime = proposedTime
	return toVisitResponse(r), nil
}

// ConfirmArrival moves APPROVED → ARRIVED and stamps the arrival time. No
// role required: the gate guard or the visitor confirms against the code.
func (uc *VisitUseCase) ConfirmArrival(id string) (*dto.VisitResponse, error) {
	mu := uc.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	r, err := uc.visits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if !visit.CanTransition(r.Status, entity.StatusArrived) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	ok, err := uc.visits.TransitionStatus(id, r.Status, repository.StatusPatch{
		Status:    entity.StatusArrived,
		Feedback:  r.Feedback,
		ArrivedAt: &now,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}
	r.Status = entity.StatusArrived
	r.ArrivedAt = &now
	return toVisitResponse(r), nil
}

// Track is the anonymous lookup used by kiosks and the tracking screen:
// case-insensitive substring on the code, whitespace-stripped exact match on
// the visitor's phone. Intentionally unscoped: whoever holds the code or
// the phone number may view that one record.
func (uc *VisitUseCase) Track(query string) (*dto.VisitResponse, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil, domain.ErrInvalidInput
	}
	phoneTerm := stripSpaces(term)

	all, err := uc.visits.List()
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		if strings.Contains(strings.ToLower(r.ID), term) {
			return toVisitResponse(r), nil
		}
		if phoneTerm != "" && stripSpaces(r.VisitorPhone) == phoneTerm {
			return toVisitResponse(r), nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListForAccount returns the requests inside the actor's scope, narrowed by
// the optional filters, most recent first.
func (uc *VisitUseCase) ListForAccount(actor *entity.Account, f dto.VisitFilters) ([]*dto.VisitResponse, error) {
	visible, err := uc.Visible(actor)
	if err != nil {
		return nil, err
	}

	search := fold(f.Search)
	out := make([]*dto.VisitResponse, 0, len(visible))
	for _, r := range visible {
		if search != "" &&
			!strings.Contains(fold(r.VisitorName), search) &&
			!strings.Contains(fold(r.SoldierName), search) &&
			!strings.Contains(fold(r.SpecificUnit), search) {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.Date != "" && r.VisitDate != f.Date {
			continue
		}
		out = append(out, toVisitResponse(r))
	}
	return out, nil
}

// Visible returns the scope-filtered raw records, CreatedAt descending.
// Shared by the listing, the dashboard and the report projection.
func (uc *VisitUseCase) Visible(actor *entity.Account) ([]*entity.VisitRequest, error) {
	if actor == nil || uc.policy.Scope(actor) == (access.Scope{}) {
		return nil, domain.ErrForbidden
	}
	all, err := uc.visits.List()
	if err != nil {
		return nil, err
	}
	visible := make([]*entity.VisitRequest, 0, len(all))
	for _, r := range all {
		if uc.policy.CanView(actor, r) {
			visible = append(visible, r)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible, nil
}

// Get returns one record if the actor's scope covers it.
func (uc *VisitUseCase) Get(actor *entity.Account, id string) (*entity.VisitRequest, error) {
	r, err := uc.visits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.policy.CanView(actor, r) {
		return nil, domain.ErrForbidden
	}
	return r, nil
}

// GetByID returns one record with no scope check (gate pass rendering after
// an anonymous code lookup).
func (uc *VisitUseCase) GetByID(id string) (*entity.VisitRequest, error) {
	r, err := uc.visits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// foldTransform strips combining marks so "Đại đội" matches "dai doi".
var foldTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// đ carries its stroke in the base letter, NFD does not decompose it.
var strokeReplacer = strings.NewReplacer("đ", "d", "Đ", "D")

// fold lower-cases and removes Vietnamese diacritics for search matching.
func fold(s string) string {
	folded, _, err := transform.String(foldTransform, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strokeReplacer.Replace(folded))
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func toVisitResponse(r *entity.VisitRequest) *dto.VisitResponse {
	return &dto.VisitResponse{
		ID:           r.ID,
		VisitorName:  r.VisitorName,
		VisitorID:    r.VisitorID,
		VisitorPhone: r.VisitorPhone,
		Relationship: r.Relationship,
		SoldierName:  r.SoldierName,
		SoldierRank:  r.SoldierRank,
		ParentUnit:   r.ParentUnit,
		SpecificUnit: r.SpecificUnit,
		UnitCategory: r.UnitCategory,
		VisitDate:    r.VisitDate,
		TimeSlot:     r.TimeSlot,
		Note:         r.Note,
		Status:       r.Status,
		StatusLabel:  entity.StatusLabels[r.Status],
		Feedback:     r.Feedback,
		ProposedTime: r.ProposedTime,
		CreatedAt:    r.CreatedAt,
		ArrivedAt:    r.ArrivedAt,
	}
}
