package controllers

import (
	"net/http"

	"github.com/poofware/revenue-service/internal/app"
	"github.com/poofware/revenue-service/internal/dtos"
	"github.com/poofware/revenue-service/internal/utils"
)

type HealthController struct {
	app *app.App
}

func NewHealthController(app *app.App) *HealthController {
	return &HealthController{app}
}

func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.app.Store.Ping(r.Context()); err != nil {
		utils.Logger.WithError(err).Error("revenue-service DB unreachable")
		utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Database unreachable", nil, err)
		return
	}
	resp := dtos.HealthCheckResponse{Status: "OK"}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
