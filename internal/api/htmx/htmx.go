package htmx

import (
	"net/http"
	"strings"
)

func IsRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}

// Refresh asks htmx to reload the full page after the response.
func Refresh(w http.ResponseWriter) {
	w.Header().Set("HX-Refresh", "true")
}
