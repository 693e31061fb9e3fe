package api

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/cardsmith/cardsmith/internal/service/deck"
)

//go:embed templates/index.html
var templateFS embed.FS

// homePageData drives the index template.
type homePageData struct {
	// OpenSettings tells the page to open the settings panel on load,
	// used when no working API key is configured yet.
	OpenSettings bool
	Model        string
}

// HomeHandler serves the flashcard web UI.
type HomeHandler struct {
	service *deck.Service
	tmpl    *template.Template
	logger  *slog.Logger
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(service *deck.Service, logger *slog.Logger) *HomeHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HomeHandler")
	}
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("service cannot be nil for HomeHandler")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		// ALLOW-PANIC: Embedded template failing to parse is a build defect
		panic("failed to parse index template: " + err.Error())
	}

	return &HomeHandler{
		service: service,
		tmpl:    tmpl,
		logger:  logger.With(slog.String("component", "home_handler")),
	}
}

// Home handles GET /.
// When the pipeline is not ready the page opens straight into settings so
// the user can enter an API key.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	status := h.service.Status()
	data := homePageData{
		OpenSettings: !status.Ready,
		Model:        status.Model,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		h.logger.Error("failed to render index template",
			slog.String("error", err.Error()))
	}
}
