// Package backend is the REST client for the external marketplace backend.
// The backend owns all entities; this package only issues calls and maps
// responses into the typed shapes the front end consumes.
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/pvidigal/agromarket/internal/marketplace/lifecycle"
	apperrors "github.com/pvidigal/agromarket/internal/platform/errors"
)

const tracerName = "github.com/pvidigal/agromarket/internal/backend"

// Client calls the marketplace backend over HTTP with bearer auth.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewClient creates a backend client for the given base URL. A nil
// httpClient gets a default client with OpenTelemetry transport
// instrumentation.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("parse backend base URL: %w", err)
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Client{
		baseURL:    trimmed,
		httpClient: httpClient,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

// kindPaths maps request kinds to the backend's collection path segments.
var kindPaths = map[lifecycle.Kind]string{
	lifecycle.KindPurchase:  "purchase-requests",
	lifecycle.KindDelivery:  "delivery-bookings",
	lifecycle.KindEquipment: "equipment-bookings",
	lifecycle.KindLease:     "lease-requests",
}

// transitionRoutes maps lifecycle actions to backend method and path verb.
// Cancel is a DELETE on the entity itself; everything else POSTs a verb
// sub-resource.
var transitionRoutes = map[lifecycle.Action]struct {
	method string
	verb   string
}{
	lifecycle.ActionAccept:           {method: http.MethodPost, verb: "accept"},
	lifecycle.ActionReject:           {method: http.MethodPost, verb: "reject"},
	lifecycle.ActionStartTransit:     {method: http.MethodPost, verb: "transit"},
	lifecycle.ActionCompleteDelivery: {method: http.MethodPost, verb: "delivered"},
	lifecycle.ActionCancel:           {method: http.MethodDelete},
}

// actionResults maps each action to the status a confirmed transition lands
// on. Every action has exactly one destination regardless of kind, so a
// bodiless 2xx (the cancel DELETE answers 204 No Content) still yields the
// backend-confirmed status.
var actionResults = map[lifecycle.Action]lifecycle.Status{
	lifecycle.ActionAccept:           lifecycle.StatusAccepted,
	lifecycle.ActionReject:           lifecycle.StatusRejected,
	lifecycle.ActionCancel:           lifecycle.StatusCanceled,
	lifecycle.ActionStartTransit:     lifecycle.StatusInTransit,
	lifecycle.ActionCompleteDelivery: lifecycle.StatusDelivered,
}

// Transition issues the backend call for one lifecycle action and returns
// the status the backend confirmed. Failures are typed; no status change is
// implied by any error.
func (c *Client) Transition(ctx context.Context, token string, kind lifecycle.Kind, entityID int64, action lifecycle.Action) (lifecycle.Status, error) {
	if c == nil || c.httpClient == nil {
		return "", apperrors.E(apperrors.KindUnavailable, "backend client is not configured")
	}
	collection, ok := kindPaths[kind]
	if !ok {
		return "", apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("unknown request kind %q", kind))
	}
	route, ok := transitionRoutes[action]
	if !ok {
		return "", apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("unknown action %q", action))
	}

	target := fmt.Sprintf("%s/api/v1/%s/%d", c.baseURL, collection, entityID)
	if route.verb != "" {
		target += "/" + route.verb
	}

	ctx, span := c.tracer.Start(ctx, "backend.Transition",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("marketplace.kind", string(kind)),
			attribute.String("marketplace.action", string(action)),
			attribute.Int64("marketplace.entity_id", entityID),
		),
	)
	defer span.End()

	var updated lifecycle.Request
	if err := c.do(ctx, route.method, target, token, &updated); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	status := updated.Status
	if status == "" {
		status = actionResults[action]
	}
	span.SetAttributes(attribute.String("marketplace.new_status", string(status)))
	return status, nil
}

// listResponse mirrors the backend's list envelope.
type listResponse struct {
	Requests []lifecycle.Request `json:"requests"`
}

// ListMine fetches the current user's own requests of the given kind.
func (c *Client) ListMine(ctx context.Context, token string, kind lifecycle.Kind) ([]lifecycle.Request, error) {
	return c.list(ctx, token, kind, "mine")
}

// ListReceived fetches the requests addressed to resources the current user
// owns (seller, carrier, equipment owner, land owner).
func (c *Client) ListReceived(ctx context.Context, token string, kind lifecycle.Kind) ([]lifecycle.Request, error) {
	return c.list(ctx, token, kind, "received")
}

func (c *Client) list(ctx context.Context, token string, kind lifecycle.Kind, view string) ([]lifecycle.Request, error) {
	if c == nil || c.httpClient == nil {
		return nil, apperrors.E(apperrors.KindUnavailable, "backend client is not configured")
	}
	collection, ok := kindPaths[kind]
	if !ok {
		return nil, apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("unknown request kind %q", kind))
	}
	target := fmt.Sprintf("%s/api/v1/%s?view=%s", c.baseURL, collection, url.QueryEscape(view))

	ctx, span := c.tracer.Start(ctx, "backend.List",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("marketplace.kind", string(kind)),
			attribute.String("marketplace.view", view),
		),
	)
	defer span.End()

	var envelope listResponse
	if err := c.do(ctx, http.MethodGet, target, token, &envelope); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return envelope.Requests, nil
}

func (c *Client) do(ctx context.Context, method, target, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return apperrors.Wrap(apperrors.KindUnknown, "build backend request", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return apperrors.EK(apperrors.KindUnauthorized, "error.auth.required", "missing session token")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, "backend request failed", err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.KindUnknown, "decode backend response", err)
	}
	return nil
}

// statusError maps backend HTTP status codes to the typed error taxonomy.
func statusError(statusCode int) error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusUnauthorized:
		return apperrors.EK(apperrors.KindUnauthorized, "error.auth.required", "session is not authenticated")
	case statusCode == http.StatusForbidden:
		return apperrors.EK(apperrors.KindForbidden, "error.request.forbidden", "action is not permitted for this user")
	case statusCode == http.StatusNotFound:
		return apperrors.EK(apperrors.KindNotFound, "error.request.not_found", "request no longer exists")
	case statusCode == http.StatusConflict:
		return apperrors.EK(apperrors.KindConflict, "error.request.conflict", "request was already resolved")
	case statusCode == http.StatusBadRequest:
		return apperrors.E(apperrors.KindInvalidInput, "backend rejected the request")
	default:
		return apperrors.EK(apperrors.KindUnavailable, "error.backend.unavailable", fmt.Sprintf("backend returned status %d", statusCode))
	}
}
