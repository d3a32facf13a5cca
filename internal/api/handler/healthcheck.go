package handler

import (
	"net/http"
)

const (
	ServiceName    = "Sales Dashboard API"
	ServiceVersion = "1.0.0"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "healthy"})
	})
}

// RootHandler identifica o serviço
func RootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{
			"message": ServiceName,
			"version": ServiceVersion,
			"status":  "running",
		})
	})
}
