package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/poofware/revenue-service/internal/dtos"
	"github.com/poofware/revenue-service/internal/middleware"
	"github.com/poofware/revenue-service/internal/services"
	"github.com/poofware/revenue-service/internal/utils"
)

var validate = validator.New()

type DashboardController struct {
	revenueService *services.RevenueService
}

func NewDashboardController(s *services.RevenueService) *DashboardController {
	return &DashboardController{revenueService: s}
}

// GET /api/v1/dashboard/summary
func (c *DashboardController) GetDashboardSummaryHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantFromContext(r)
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeTenantRequired, "Tenant context is required", nil)
		return
	}

	req := dtos.DashboardSummaryRequest{
		PropertyID: r.URL.Query().Get("property_id"),
	}

	var parseErr error
	if req.Month, parseErr = parseOptionalInt(r, "month"); parseErr != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "month must be an integer", nil, parseErr)
		return
	}
	if req.Year, parseErr = parseOptionalInt(r, "year"); parseErr != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "year must be an integer", nil, parseErr)
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid query parameters", nil, err)
		return
	}

	summary := c.revenueService.GetTotalRevenue(r.Context(), tenantID, req.PropertyID, req.Month, req.Year)

	// The exact decimal string is rounded and converted to a float only
	// here, at the JSON boundary.
	resp := dtos.DashboardSummaryResponse{
		PropertyID:        summary.PropertyID,
		TotalRevenue:      utils.TotalToFloat(summary.Total),
		Currency:          summary.Currency,
		ReservationsCount: summary.Count,
		Month:             req.Month,
		Year:              req.Year,
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/dashboard/properties
func (c *DashboardController) GetDashboardPropertiesHandler(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenantFromContext(r)
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeTenantRequired, "Tenant context is required", nil)
		return
	}

	items := c.revenueService.ListProperties(r.Context(), tenantID)

	resp := dtos.DashboardPropertiesResponse{
		Items: make([]dtos.PropertyItemDTO, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dtos.PropertyItemDTO{ID: item.ID, Name: item.Name})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func tenantFromContext(r *http.Request) (string, bool) {
	v := r.Context().Value(middleware.ContextKeyTenantID)
	if v == nil {
		return "", false
	}
	tenantID, ok := v.(string)
	return tenantID, ok && tenantID != ""
}

func parseOptionalInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}
