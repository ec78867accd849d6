package backend

import (
	"context"
	"fmt"

	"github.com/pvidigal/agromarket/internal/marketplace/lifecycle"
	apperrors "github.com/pvidigal/agromarket/internal/platform/errors"
)

// TransitionClient is the backend call surface the gateway depends on.
type TransitionClient interface {
	Transition(ctx context.Context, token string, kind lifecycle.Kind, entityID int64, action lifecycle.Action) (lifecycle.Status, error)
}

// Outcome is the normalized result of a successful transition call.
type Outcome struct {
	EntityID  int64
	NewStatus lifecycle.Status
}

// Gateway issues lifecycle transitions. Every call is pre-checked against
// the transition table with the viewer's resolved role, so an illegal or
// unowned action is refused before any network request is made.
type Gateway struct {
	client TransitionClient
}

// NewGateway creates a gateway over the given backend client.
func NewGateway(client TransitionClient) *Gateway {
	return &Gateway{client: client}
}

// Transition applies action to request on behalf of currentUserID. On
// success the returned outcome carries the backend-confirmed status; on
// failure no local mutation is implied.
func (g *Gateway) Transition(ctx context.Context, token string, kind lifecycle.Kind, request lifecycle.Request, action lifecycle.Action, currentUserID string) (Outcome, error) {
	if g == nil || g.client == nil {
		return Outcome{}, apperrors.E(apperrors.KindUnavailable, "transition gateway is not configured")
	}
	if !lifecycle.KnownKind(kind) {
		return Outcome{}, apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("unknown request kind %q", kind))
	}

	role := lifecycle.ResolveRole(request, currentUserID)
	if !lifecycle.CanTransition(kind, request.Status, action, role) {
		return Outcome{}, apperrors.EK(
			apperrors.KindForbidden,
			"error.request.forbidden",
			fmt.Sprintf("%s may not %s a %s request in status %s", role, action, kind, request.Status),
		)
	}

	newStatus, err := g.client.Transition(ctx, token, kind, request.ID, action)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{EntityID: request.ID, NewStatus: newStatus}, nil
}
