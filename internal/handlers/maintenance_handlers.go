package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"renthub/internal/common"
	"renthub/internal/models"
	"renthub/internal/services"
)

const photoURLExpiry = 15 * time.Minute

// MaintenanceHandlers handles maintenance-request endpoints.
type MaintenanceHandlers struct {
	maintenanceService services.MaintenanceService
	photoService       services.PhotoService
}

func NewMaintenanceHandlers(maintenanceService services.MaintenanceService, photoService services.PhotoService) *MaintenanceHandlers {
	return &MaintenanceHandlers{
		maintenanceService: maintenanceService,
		photoService:       photoService,
	}
}

// Create handles POST /v1/maintenance
func (h *MaintenanceHandlers) Create(c echo.Context) error {
	ctx := c.Request().Context()

	tenantID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.RespondError(c, common.ErrUnauthorized)
	}

	var req struct {
		UnitID      string   `json:"unit_id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Photos      []string `json:"photos"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	unitID, err := common.ValidateUUID(req.UnitID, "unit_id")
	if err != nil {
		return common.RespondError(c, err)
	}

	request, err := h.maintenanceService.Create(ctx, tenantID, services.CreateMaintenanceRequestInput{
		UnitID:      unitID,
		Title:       req.Title,
		Description: req.Description,
		Photos:      req.Photos,
	})
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"request": request,
	})
}

// List handles GET /v1/maintenance. Tenants see their own requests;
// landlords see requests across their properties.
func (h *MaintenanceHandlers) List(c echo.Context) error {
	ctx := c.Request().Context()

	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.RespondError(c, common.ErrUnauthorized)
	}
	role, ok := common.GetRoleFromContext(ctx)
	if !ok {
		return common.RespondError(c, common.ErrUnauthorized)
	}

	limit, offset := paginationParams(c)

	var requests []*models.MaintenanceRequest
	var err error
	switch role {
	case models.RoleTenant:
		requests, err = h.maintenanceService.ListForTenant(ctx, userID, limit, offset)
	case models.RoleLandlord:
		requests, err = h.maintenanceService.ListForLandlord(ctx, userID, limit, offset)
	default:
		return common.RespondError(c, common.ErrUnauthorized)
	}
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"requests": requests,
		"limit":    limit,
		"offset":   offset,
	})
}

// UpdateStatus handles PUT /v1/maintenance/:id/status
func (h *MaintenanceHandlers) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.RespondError(c, common.ErrUnauthorized)
	}

	requestID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.RespondError(c, err)
	}

	var req struct {
		Status           string   `json:"status"`
		ResolutionNotes  *string  `json:"resolution_notes"`
		ResolutionPhotos []string `json:"resolution_photos"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	updated, err := h.maintenanceService.SetStatus(ctx, landlordID, requestID, services.UpdateMaintenanceStatusInput{
		Status:           models.MaintenanceStatus(req.Status),
		ResolutionNotes:  req.ResolutionNotes,
		ResolutionPhotos: req.ResolutionPhotos,
	})
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"request": updated,
	})
}

// UploadPhoto handles POST /v1/maintenance/photos. Stores the image and
// returns the object key plus a presigned URL.
func (h *MaintenanceHandlers) UploadPhoto(c echo.Context) error {
	ctx := c.Request().Context()

	file, err := c.FormFile("photo")
	if err != nil {
		return common.RespondError(c, common.NewValidationError("photo", "is required"))
	}

	src, err := file.Open()
	if err != nil {
		return common.RespondError(c, err)
	}
	defer src.Close()

	key, err := h.photoService.UploadPhoto(ctx, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return common.RespondError(c, err)
	}

	url, err := h.photoService.PhotoURL(key, photoURLExpiry)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"key": key,
		"url": url,
	})
}

func paginationParams(c echo.Context) (int, int) {
	limit := 50
	offset := 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 {
			limit = l
		}
	}
	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		if o, err := strconv.Atoi(offsetParam); err == nil && o >= 0 {
			offset = o
		}
	}
	return common.ValidatePaginationParams(limit, offset)
}
