package api

import (
	"net/http"
)

// handleHealth reports per-service status. A service is "up" once it has
// served at least one successful upstream fetch
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"prices":    "unknown",
		"yields":    "unknown",
		"protocols": "unknown",
	}

	if s.prices != nil && s.prices.Healthy() {
		services["prices"] = "up"
	}
	if s.yields != nil && s.yields.Healthy() {
		services["yields"] = "up"
	}
	if s.protocols != nil && s.protocols.Healthy() {
		services["protocols"] = "up"
	}

	status := map[string]interface{}{
		"status":   "ok",
		"services": services,
	}
	if s.cacheStats != nil {
		status["cache_items"] = s.cacheStats.ItemCount()
	}

	s.sendJSONResponse(w, status)
}
