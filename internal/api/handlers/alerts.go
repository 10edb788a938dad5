package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/mpoirier/dealflow/pkg/types"
)

// AlertsProvider defines the store methods required by the alerts handler.
type AlertsProvider interface {
	ListPendingMatchAlerts(ctx context.Context) ([]domain.MatchAlert, error)
}

// AlertsHandler handles match alert queue endpoints.
type AlertsHandler struct {
	store AlertsProvider
}

// NewAlertsHandler creates a new AlertsHandler.
func NewAlertsHandler(s AlertsProvider) *AlertsHandler {
	return &AlertsHandler{store: s}
}

// ListPendingAlertsOutput is the response listing undelivered match alerts.
type ListPendingAlertsOutput struct {
	Body []domain.MatchAlert
}

// ListPendingAlerts returns match alerts waiting for delivery, oldest first.
func (h *AlertsHandler) ListPendingAlerts(
	ctx context.Context,
	_ *struct{},
) (*ListPendingAlertsOutput, error) {
	alerts, err := h.store.ListPendingMatchAlerts(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing pending alerts: " + err.Error())
	}

	if alerts == nil {
		alerts = []domain.MatchAlert{}
	}

	return &ListPendingAlertsOutput{Body: alerts}, nil
}

// RegisterAlertRoutes registers alert queue endpoints with the Huma API.
func RegisterAlertRoutes(api huma.API, h *AlertsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-pending-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts/pending",
		Summary:     "List pending match alerts",
		Description: "Returns match alerts that have not yet been delivered.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.ListPendingAlerts)
}
