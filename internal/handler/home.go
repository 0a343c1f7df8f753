package handler

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var homeHTML []byte

// HomePage returns a copy of the embedded landing page document.
func HomePage() []byte {
	return append([]byte(nil), homeHTML...)
}

// Home serves the embedded landing page.
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(homeHTML)
}
