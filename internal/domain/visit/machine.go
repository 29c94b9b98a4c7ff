// Package visit holds the request lifecycle state machine and the short-code
// generator. The machine is a closed table: any (from, to) pair it does not
// list is rejected, and the caller must leave the record untouched.
package visit

import "github.com/hoangnv/visitgate-api/internal/domain/entity"

// transitions lists every allowed status change. PENDING is the only initial
// state; REJECTED, REPROPOSED and ARRIVED are terminal.
var transitions = map[string][]string{
	entity.StatusPending:  {entity.StatusApproved, entity.StatusRejected, entity.StatusReproposed},
	entity.StatusApproved: {entity.StatusArrived},
}

// CanTransition reports whether from → to is an allowed status change.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
