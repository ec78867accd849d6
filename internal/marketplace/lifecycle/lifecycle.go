// Package lifecycle defines the shared request lifecycle for marketplace
// verticals: statuses, actions, and the per-kind transition table that
// decides which actor may move a request between statuses.
package lifecycle

// Kind identifies one marketplace request vertical.
type Kind string

const (
	KindPurchase  Kind = "purchase"
	KindDelivery  Kind = "delivery"
	KindEquipment Kind = "equipment"
	KindLease     Kind = "lease"
)

// Status is a request lifecycle status.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusCanceled  Status = "CANCELED"
	StatusInTransit Status = "IN_TRANSIT"
	StatusDelivered Status = "DELIVERED"
)

// Action is a request lifecycle transition command.
type Action string

const (
	ActionAccept           Action = "ACCEPT"
	ActionReject           Action = "REJECT"
	ActionCancel           Action = "CANCEL"
	ActionStartTransit     Action = "START_TRANSIT"
	ActionCompleteDelivery Action = "COMPLETE_DELIVERY"
)

// transition is one legal edge in a kind's status graph.
type transition struct {
	next Status
	role Role
}

// transitions maps kind -> current status -> action -> legal edge. Anything
// absent from this table is not a legal transition for any actor.
var transitions = map[Kind]map[Status]map[Action]transition{
	KindPurchase: {
		StatusPending: {
			ActionAccept: {next: StatusAccepted, role: RoleCounterparty},
			ActionReject: {next: StatusRejected, role: RoleCounterparty},
			ActionCancel: {next: StatusCanceled, role: RoleInitiator},
		},
	},
	KindDelivery: {
		StatusPending: {
			ActionAccept: {next: StatusAccepted, role: RoleCounterparty},
			ActionReject: {next: StatusRejected, role: RoleCounterparty},
			ActionCancel: {next: StatusCanceled, role: RoleInitiator},
		},
		StatusAccepted: {
			ActionStartTransit: {next: StatusInTransit, role: RoleCounterparty},
			// Delivery bookings stay cancelable until the carrier departs.
			ActionCancel: {next: StatusCanceled, role: RoleInitiator},
		},
		StatusInTransit: {
			ActionCompleteDelivery: {next: StatusDelivered, role: RoleCounterparty},
		},
	},
	KindEquipment: {
		StatusPending: {
			ActionAccept: {next: StatusAccepted, role: RoleCounterparty},
			ActionReject: {next: StatusRejected, role: RoleCounterparty},
			ActionCancel: {next: StatusCanceled, role: RoleInitiator},
		},
	},
	KindLease: {
		StatusPending: {
			ActionAccept: {next: StatusAccepted, role: RoleCounterparty},
			ActionReject: {next: StatusRejected, role: RoleCounterparty},
			ActionCancel: {next: StatusCanceled, role: RoleInitiator},
		},
	},
}

// Kinds returns every marketplace request kind in stable order.
func Kinds() []Kind {
	return []Kind{KindPurchase, KindDelivery, KindEquipment, KindLease}
}

// KnownKind reports whether kind names a marketplace vertical.
func KnownKind(kind Kind) bool {
	_, ok := transitions[kind]
	return ok
}

// CanTransition reports whether role may apply action to a request of the
// given kind currently in status. Unknown kinds, statuses, actions, and role
// mismatches all report false; no combination panics.
func CanTransition(kind Kind, status Status, action Action, role Role) bool {
	edge, ok := lookup(kind, status, action)
	if !ok {
		return false
	}
	return edge.role == role
}

// NextStatus returns the status a legal transition lands on. The boolean is
// false when the edge is not in the table, regardless of actor.
func NextStatus(kind Kind, status Status, action Action) (Status, bool) {
	edge, ok := lookup(kind, status, action)
	if !ok {
		return "", false
	}
	return edge.next, true
}

// RequiredRole returns the actor role a legal transition demands.
func RequiredRole(kind Kind, status Status, action Action) (Role, bool) {
	edge, ok := lookup(kind, status, action)
	if !ok {
		return RoleUnrelated, false
	}
	return edge.role, true
}

// Actions returns the legal actions for role on a request of the given kind
// and status, in stable order. An empty slice means the request offers no
// controls to that viewer.
func Actions(kind Kind, status Status, role Role) []Action {
	byAction, ok := transitions[kind][status]
	if !ok {
		return nil
	}
	ordered := []Action{ActionAccept, ActionReject, ActionStartTransit, ActionCompleteDelivery, ActionCancel}
	var actions []Action
	for _, action := range ordered {
		edge, ok := byAction[action]
		if !ok {
			continue
		}
		if edge.role != role {
			continue
		}
		actions = append(actions, action)
	}
	return actions
}

// IsTerminal reports whether no transition leaves status for the given kind.
func IsTerminal(kind Kind, status Status) bool {
	byStatus, ok := transitions[kind]
	if !ok {
		return true
	}
	edges, ok := byStatus[status]
	return !ok || len(edges) == 0
}

func lookup(kind Kind, status Status, action Action) (transition, bool) {
	byStatus, ok := transitions[kind]
	if !ok {
		return transition{}, false
	}
	byAction, ok := byStatus[status]
	if !ok {
		return transition{}, false
	}
	edge, ok := byAction[action]
	return edge, ok
}
