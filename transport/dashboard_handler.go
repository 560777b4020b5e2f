package transport

import "net/http"

// DashboardStats handler
// @Summary Back-office dashboard counts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} model.DashboardStats
// @Security BearerAuth
// @Router /api/v1/dashboard/stats [get]
func (s *RestHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	res, err := s.DashboardApp.GetStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
