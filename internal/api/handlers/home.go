package handlers

import (
	"net/http"

	"github.com/rohits-web03/fundbridge/internal/api/view"
	"github.com/rohits-web03/fundbridge/internal/utils"
)

// GET /
func (h *Handler) Home(req *Request) view.Result {
	return view.Page("index", map[string]any{"user": req.Identity.User})
}

// Health reports whether the database answers.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(); err != nil {
		h.log.Warn().Err(err).Msg("health check failed")
		utils.JSONResponse(w, http.StatusServiceUnavailable, utils.Payload{
			Success: false,
			Message: "database unavailable",
		})
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "OK",
	})
}
