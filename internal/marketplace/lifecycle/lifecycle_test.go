package lifecycle

import "testing"

func allStatuses() []Status {
	return []Status{StatusPending, StatusAccepted, StatusRejected, StatusCanceled, StatusInTransit, StatusDelivered}
}

func allActions() []Action {
	return []Action{ActionAccept, ActionReject, ActionCancel, ActionStartTransit, ActionCompleteDelivery}
}

func allRoles() []Role {
	return []Role{RoleInitiator, RoleCounterparty, RoleUnrelated}
}

func TestCanTransitionPendingDecisionsByCounterparty(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		if !CanTransition(kind, StatusPending, ActionAccept, RoleCounterparty) {
			t.Fatalf("kind %s: counterparty accept on pending should be legal", kind)
		}
		if !CanTransition(kind, StatusPending, ActionReject, RoleCounterparty) {
			t.Fatalf("kind %s: counterparty reject on pending should be legal", kind)
		}
		if !CanTransition(kind, StatusPending, ActionCancel, RoleInitiator) {
			t.Fatalf("kind %s: initiator cancel on pending should be legal", kind)
		}
	}
}

func TestCanTransitionRejectsWrongRole(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		if CanTransition(kind, StatusPending, ActionAccept, RoleInitiator) {
			t.Fatalf("kind %s: initiator must not accept", kind)
		}
		if CanTransition(kind, StatusPending, ActionReject, RoleInitiator) {
			t.Fatalf("kind %s: initiator must not reject", kind)
		}
		if CanTransition(kind, StatusPending, ActionCancel, RoleCounterparty) {
			t.Fatalf("kind %s: counterparty must not cancel", kind)
		}
		for _, action := range allActions() {
			if CanTransition(kind, StatusPending, action, RoleUnrelated) {
				t.Fatalf("kind %s: unrelated viewer must not %s", kind, action)
			}
		}
	}
}

func TestCanTransitionDeliveryTail(t *testing.T) {
	t.Parallel()

	if !CanTransition(KindDelivery, StatusAccepted, ActionStartTransit, RoleCounterparty) {
		t.Fatal("carrier should start transit from accepted")
	}
	if !CanTransition(KindDelivery, StatusAccepted, ActionCancel, RoleInitiator) {
		t.Fatal("delivery initiator should cancel from accepted")
	}
	if !CanTransition(KindDelivery, StatusInTransit, ActionCompleteDelivery, RoleCounterparty) {
		t.Fatal("carrier should complete delivery from in transit")
	}
	if CanTransition(KindDelivery, StatusInTransit, ActionCancel, RoleInitiator) {
		t.Fatal("delivery must not be cancelable once in transit")
	}
}

func TestCanTransitionTailIsDeliveryOnly(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindPurchase, KindEquipment, KindLease} {
		for _, role := range allRoles() {
			if CanTransition(kind, StatusAccepted, ActionStartTransit, role) {
				t.Fatalf("kind %s: transit is delivery-only", kind)
			}
			if CanTransition(kind, StatusAccepted, ActionCancel, role) {
				t.Fatalf("kind %s: cancel from accepted is delivery-only", kind)
			}
			if CanTransition(kind, StatusInTransit, ActionCompleteDelivery, role) {
				t.Fatalf("kind %s: delivery completion is delivery-only", kind)
			}
		}
	}
}

// TestCanTransitionFalseForEverythingOutsideTable sweeps the full
// kind/status/action/role space and asserts only the explicitly defined
// edges ever report true.
func TestCanTransitionFalseForEverythingOutsideTable(t *testing.T) {
	t.Parallel()

	type edge struct {
		kind   Kind
		status Status
		action Action
		role   Role
	}
	legal := map[edge]bool{}
	for _, kind := range Kinds() {
		legal[edge{kind, StatusPending, ActionAccept, RoleCounterparty}] = true
		legal[edge{kind, StatusPending, ActionReject, RoleCounterparty}] = true
		legal[edge{kind, StatusPending, ActionCancel, RoleInitiator}] = true
	}
	legal[edge{KindDelivery, StatusAccepted, ActionStartTransit, RoleCounterparty}] = true
	legal[edge{KindDelivery, StatusAccepted, ActionCancel, RoleInitiator}] = true
	legal[edge{KindDelivery, StatusInTransit, ActionCompleteDelivery, RoleCounterparty}] = true

	for _, kind := range Kinds() {
		for _, status := range allStatuses() {
			for _, action := range allActions() {
				for _, role := range allRoles() {
					want := legal[edge{kind, status, action, role}]
					got := CanTransition(kind, status, action, role)
					if got != want {
						t.Fatalf("CanTransition(%s, %s, %s, %s) = %t, want %t", kind, status, action, role, got, want)
					}
				}
			}
		}
	}
}

func TestCanTransitionUnknownInputs(t *testing.T) {
	t.Parallel()

	if CanTransition(Kind("auction"), StatusPending, ActionAccept, RoleCounterparty) {
		t.Fatal("unknown kind must not transition")
	}
	if CanTransition(KindPurchase, Status("SHIPPED"), ActionAccept, RoleCounterparty) {
		t.Fatal("unknown status must not transition")
	}
	if CanTransition(KindPurchase, StatusPending, Action("ARCHIVE"), RoleCounterparty) {
		t.Fatal("unknown action must not transition")
	}
}

func TestNextStatusFollowsTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		kind   Kind
		status Status
		action Action
		want   Status
		ok     bool
	}{
		{name: "purchase accept", kind: KindPurchase, status: StatusPending, action: ActionAccept, want: StatusAccepted, ok: true},
		{name: "lease reject", kind: KindLease, status: StatusPending, action: ActionReject, want: StatusRejected, ok: true},
		{name: "equipment cancel", kind: KindEquipment, status: StatusPending, action: ActionCancel, want: StatusCanceled, ok: true},
		{name: "delivery transit", kind: KindDelivery, status: StatusAccepted, action: ActionStartTransit, want: StatusInTransit, ok: true},
		{name: "delivery complete", kind: KindDelivery, status: StatusInTransit, action: ActionCompleteDelivery, want: StatusDelivered, ok: true},
		{name: "no return to pending", kind: KindPurchase, status: StatusAccepted, action: ActionReject, ok: false},
		{name: "terminal rejected", kind: KindPurchase, status: StatusRejected, action: ActionAccept, ok: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := NextStatus(tc.kind, tc.status, tc.action)
			if ok != tc.ok {
				t.Fatalf("NextStatus ok = %t, want %t", ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("NextStatus = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		for _, status := range []Status{StatusRejected, StatusCanceled, StatusDelivered} {
			if !IsTerminal(kind, status) {
				t.Fatalf("kind %s: %s should be terminal", kind, status)
			}
		}
		if IsTerminal(kind, StatusPending) {
			t.Fatalf("kind %s: pending should not be terminal", kind)
		}
	}
	if IsTerminal(KindDelivery, StatusAccepted) {
		t.Fatal("delivery accepted should not be terminal")
	}
	if !IsTerminal(KindPurchase, StatusAccepted) {
		t.Fatal("purchase accepted should be terminal")
	}
}

func TestActionsOfferedPerRole(t *testing.T) {
	t.Parallel()

	got := Actions(KindPurchase, StatusPending, RoleCounterparty)
	want := []Action{ActionAccept, ActionReject}
	if len(got) != len(want) {
		t.Fatalf("Actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Actions = %v, want %v", got, want)
		}
	}

	if got := Actions(KindPurchase, StatusPending, RoleInitiator); len(got) != 1 || got[0] != ActionCancel {
		t.Fatalf("initiator actions = %v, want [CANCEL]", got)
	}
	if got := Actions(KindPurchase, StatusPending, RoleUnrelated); len(got) != 0 {
		t.Fatalf("unrelated actions = %v, want none", got)
	}
	if got := Actions(KindPurchase, StatusRejected, RoleCounterparty); len(got) != 0 {
		t.Fatalf("terminal actions = %v, want none", got)
	}
}

func TestKnownKind(t *testing.T) {
	t.Parallel()

	for _, kind := range Kinds() {
		if !KnownKind(kind) {
			t.Fatalf("kind %s should be known", kind)
		}
	}
	if KnownKind(Kind("auction")) {
		t.Fatal("auction should be unknown")
	}
}
