package lifecycle

import (
	"encoding/json"
	"time"
)

// Request is the generalized marketplace request entity shared by all four
// verticals. The backend assigns IDs and owns all persistence; this type is
// the client-held snapshot front-end pages operate on.
type Request struct {
	// ID is the backend-assigned entity id.
	ID int64 `json:"id"`
	// Status is the lifecycle status last confirmed by the backend.
	Status Status `json:"status"`
	// InitiatorID is the user who created the request.
	InitiatorID string `json:"initiator_id"`
	// CounterpartyID is the user who owns the requested resource. It may be
	// blank when the backend resolves ownership indirectly; a blank value
	// means no mutating action is offered.
	CounterpartyID string `json:"counterparty_id"`
	// ResourceRef identifies the product, carrier, equipment, or land
	// listing being requested.
	ResourceRef string `json:"resource_ref"`
	// CreatedAt is the backend creation timestamp.
	CreatedAt time.Time `json:"created_at"`
	// Payload carries kind-specific fields (quantity, dates, weight, lease
	// duration). The lifecycle core never inspects it.
	Payload json.RawMessage `json:"payload,omitempty"`
}
