package lifecycle

import "strings"

// Role classifies the current viewer relative to a request.
type Role string

const (
	// RoleInitiator is the user who created the request.
	RoleInitiator Role = "initiator"
	// RoleCounterparty is the user who owns the requested resource.
	RoleCounterparty Role = "counterparty"
	// RoleUnrelated is any viewer whose relationship cannot be proven from
	// the request's stored references.
	RoleUnrelated Role = "unrelated"
)

// ResolveRole classifies currentUserID against the request's stored
// references. It never guesses: a blank viewer id or a reference that cannot
// be matched yields RoleUnrelated, and unrelated viewers are offered no
// mutating actions. When a user somehow appears on both sides, the initiator
// classification wins so the viewer is never offered accept/reject on their
// own request.
func ResolveRole(request Request, currentUserID string) Role {
	viewer := strings.TrimSpace(currentUserID)
	if viewer == "" {
		return RoleUnrelated
	}
	if initiator := strings.TrimSpace(request.InitiatorID); initiator != "" && initiator == viewer {
		return RoleInitiator
	}
	if counterparty := strings.TrimSpace(request.CounterpartyID); counterparty != "" && counterparty == viewer {
		return RoleCounterparty
	}
	return RoleUnrelated
}
