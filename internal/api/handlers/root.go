package handlers

import "net/http"

// Root handles the greeting endpoint
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Welcome to the Moviarr API"))
}
