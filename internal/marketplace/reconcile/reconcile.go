// Package reconcile keeps in-memory request lists consistent with the
// outcome of a backend transition call without a full re-fetch.
package reconcile

import (
	"github.com/pvidigal/agromarket/internal/marketplace/lifecycle"
)

// Convention names how a list presents terminal outcomes. The source pages
// disagreed on whether rejected or canceled requests stay visible, so the
// choice is an explicit per-list parameter rather than a universal rule.
type Convention struct {
	// Name identifies the convention in wiring and logs.
	Name string
	// RemoveOnReject drops the request from the list when it reaches
	// REJECTED instead of keeping a terminal badge.
	RemoveOnReject bool
	// RemoveOnCancel drops the request from the list when it reaches
	// CANCELED instead of keeping a terminal badge.
	RemoveOnCancel bool
}

// Named conventions used by the marketplace list pages.
var (
	// KeepTerminal keeps every request visible with its terminal status.
	KeepTerminal = Convention{Name: "keep-terminal"}
	// DropRejected removes rejected requests from view, as the equipment
	// received-requests page does.
	DropRejected = Convention{Name: "drop-rejected", RemoveOnReject: true}
	// DropCanceled removes canceled requests from view, as every "mine"
	// page does after an explicit cancellation.
	DropCanceled = Convention{Name: "drop-canceled", RemoveOnCancel: true}
)

// Apply reconciles one list snapshot with a successful transition outcome
// for the request with entityID. It returns a new slice: the matched
// request keeps its position and every other field, only its status
// changes, unless the convention says the new status removes it from view.
// Applying the same outcome twice yields the same list, and a request id
// never appears twice in different states afterward. A list that does not
// contain entityID is returned unchanged.
func Apply(list []lifecycle.Request, entityID int64, newStatus lifecycle.Status, convention Convention) []lifecycle.Request {
	if removes(convention, newStatus) {
		return remove(list, entityID)
	}
	updated := make([]lifecycle.Request, len(list))
	copy(updated, list)
	for i := range updated {
		if updated[i].ID == entityID {
			updated[i].Status = newStatus
		}
	}
	return updated
}

// Remove drops the request with entityID from the list regardless of
// convention. It is the local reaction to a NotFound failure: the entity
// was already resolved elsewhere and should leave the view.
func Remove(list []lifecycle.Request, entityID int64) []lifecycle.Request {
	return remove(list, entityID)
}

// Contains reports whether the list holds a request with entityID.
func Contains(list []lifecycle.Request, entityID int64) bool {
	for i := range list {
		if list[i].ID == entityID {
			return true
		}
	}
	return false
}

func removes(convention Convention, status lifecycle.Status) bool {
	switch status {
	case lifecycle.StatusRejected:
		return convention.RemoveOnReject
	case lifecycle.StatusCanceled:
		return convention.RemoveOnCancel
	default:
		return false
	}
}

func remove(list []lifecycle.Request, entityID int64) []lifecycle.Request {
	updated := make([]lifecycle.Request, 0, len(list))
	for i := range list {
		if list[i].ID == entityID {
			continue
		}
		updated = append(updated, list[i])
	}
	return updated
}
