package http

import (
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"
)

// StaticHandler serves the single-page front end.
type StaticHandler struct {
	assets fs.FS
}

// NewStaticHandler creates a StaticHandler over assets, which must contain
// index.html and a static directory.
func NewStaticHandler(assets fs.FS) *StaticHandler {
	return &StaticHandler{assets: assets}
}

// RegisterRoutes registers the front end routes on e.
func (h *StaticHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/static/*", echo.WrapHandler(http.FileServer(http.FS(h.assets))))
}

// Index serves index.html.
func (h *StaticHandler) Index(c echo.Context) error {
	page, err := fs.ReadFile(h.assets, "index.html")
	if err != nil {
		return c.String(http.StatusNotFound, "front end not bundled")
	}
	return c.HTMLBlob(http.StatusOK, page)
}
