package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"renthub/internal/services"
)

// AdminHandlers holds privileged operations.
type AdminHandlers struct {
	reconcilerService services.ReconcilerService
}

func NewAdminHandlers(reconcilerService services.ReconcilerService) *AdminHandlers {
	return &AdminHandlers{reconcilerService: reconcilerService}
}

// Reconcile handles POST /v1/admin/reconcile. On a partial failure the
// counts completed so far are still reported.
func (h *AdminHandlers) Reconcile(c echo.Context) error {
	report, err := h.reconcilerService.Run(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"total_pairs": report.TotalPairs,
			"created":     report.Created,
			"partial":     true,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"total_pairs": report.TotalPairs,
		"created":     report.Created,
	})
}
