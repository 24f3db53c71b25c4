package httpx

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed static
var staticFS embed.FS

// RegisterStatic serves the stylesheet and any other fixed assets.
func RegisterStatic(r *chi.Mux) {
	sub, _ := fs.Sub(staticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(sub)))
}
