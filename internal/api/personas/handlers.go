// internal/api/personas/handlers.go
package personas

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/codr1/personafolio/internal/api/apiutil"
	"github.com/codr1/personafolio/internal/api/htmx"
	"github.com/codr1/personafolio/internal/models"
	"github.com/codr1/personafolio/internal/portfolio"
	"github.com/codr1/personafolio/internal/ratelimit"
	portfoliotempl "github.com/codr1/personafolio/internal/templates/components/portfolio"
	"github.com/codr1/personafolio/internal/templates/layouts"
	"github.com/codr1/personafolio/internal/theme"
)

const (
	personaIDParam = "id"
	pageTitle      = "Persona Portfolio"
)

// Handlers serves the portfolio page and its API.
type Handlers struct {
	// generations outlive the request that started them
	baseCtx    context.Context
	catalog    *models.Catalog
	engine     *theme.Engine
	controller *portfolio.Controller
	document   *portfolio.MemoryDocument
	profile    portfoliotempl.Profile

	// nil disables selection throttling
	limiter    *ratelimit.Limiter
	trustProxy bool
}

type personaResponse struct {
	models.PersonaConfig
	Dark       bool               `json:"dark"`
	Tokens     theme.DesignTokens `json:"tokens"`
	PrimaryHSL models.HSL         `json:"primaryHsl"`
}

type stateResponse struct {
	portfolio.State
	Accepted   *bool                `json:"accepted,omitempty"`
	BodyClass  string               `json:"bodyClass"`
	Stylesheet *portfolio.StyleNode `json:"stylesheet,omitempty"`
	Notice     string               `json:"notice,omitempty"`
}

func New(baseCtx context.Context, catalog *models.Catalog, engine *theme.Engine, controller *portfolio.Controller, document *portfolio.MemoryDocument) *Handlers {
	return &Handlers{
		baseCtx:    baseCtx,
		catalog:    catalog,
		engine:     engine,
		controller: controller,
		document:   document,
		profile:    portfoliotempl.DefaultProfile(),
	}
}

// WithSelectLimiter throttles selections per client IP.
func (h *Handlers) WithSelectLimiter(limiter *ratelimit.Limiter, trustProxy bool) *Handlers {
	h.limiter = limiter
	h.trustProxy = trustProxy
	return h
}

func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.HandlePage)
	mux.HandleFunc("GET /portfolio/styles.css", h.HandleActiveStylesheet)
	mux.HandleFunc("GET /api/v1/personas", h.HandlePersonaList)
	mux.HandleFunc("GET /api/v1/personas/{id}/stylesheet.css", h.HandlePersonaStylesheet)
	mux.HandleFunc("POST /api/v1/personas/{id}/select", h.HandleSelect)
	mux.HandleFunc("POST /api/v1/portfolio/reset", h.HandleReset)
	mux.HandleFunc("GET /api/v1/portfolio/state", h.HandleState)
}

// GET /
func (h *Handlers) HandlePage(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(true)
	base := layouts.BasePage{
		Title:       pageTitle,
		BodyClass:   data.Document.BodyClass,
		Stylesheets: data.Document.Stylesheets,
	}
	if data.State.Phase == portfolio.PhaseLoading {
		base.RefreshSeconds = 1
	}
	page := layouts.Base(base, portfoliotempl.Page(data))
	apiutil.RenderHTMLComponent(r.Context(), w, page, nil, "Failed to render portfolio page", "Failed to render page")
}

// GET /api/v1/personas
func (h *Handlers) HandlePersonaList(w http.ResponseWriter, r *http.Request) {
	configs := h.catalog.All()
	results := make([]personaResponse, 0, len(configs))
	for _, config := range configs {
		primary, err := models.HexToRGB(config.PrimaryColor)
		if err != nil {
			log.Ctx(r.Context()).Error().Err(err).Str("persona", string(config.ID)).Msg("Invalid persona primary color")
			http.Error(w, "Failed to load personas", http.StatusInternalServerError)
			return
		}
		results = append(results, personaResponse{
			PersonaConfig: config,
			Dark:          theme.IsDark(config),
			Tokens:        theme.DeriveTokens(config),
			PrimaryHSL:    models.RGBToHSL(primary),
		})
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, results); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write persona list")
	}
}

// GET /api/v1/personas/{id}/stylesheet.css
func (h *Handlers) HandlePersonaStylesheet(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	id, err := models.ParsePersonaID(r.PathValue(personaIDParam))
	if err != nil {
		http.Error(w, "Persona not found", http.StatusNotFound)
		return
	}

	sheet, err := h.engine.Generate(id)
	if err != nil {
		if errors.Is(err, models.ErrUnknownPersona) {
			http.Error(w, "Persona not found", http.StatusNotFound)
			return
		}
		logger.Error().Err(err).Str("persona", string(id)).Msg("Failed to generate stylesheet")
		http.Error(w, "Failed to generate stylesheet", http.StatusInternalServerError)
		return
	}
	apiutil.WriteCSS(r.Context(), w, sheet.CSS)
}

// GET /portfolio/styles.css
func (h *Handlers) HandleActiveStylesheet(w http.ResponseWriter, r *http.Request) {
	node, ok := h.document.Snapshot().Stylesheet(theme.StylesheetID)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	apiutil.WriteCSS(r.Context(), w, node.CSS)
}

// POST /api/v1/personas/{id}/select
func (h *Handlers) HandleSelect(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if h.limiter != nil {
		ip := ratelimit.GetClientIP(r, h.trustProxy)
		if result := h.limiter.AllowSelect(ip); !result.Allowed {
			ratelimit.LogRateLimitExceeded(r.Context(), ip, result)
			seconds := int(result.RetryAfter.Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			http.Error(w, "Too many selections, please wait a moment", http.StatusTooManyRequests)
			return
		}
	}

	// Unknown ids still go through the controller, which unwinds and notifies.
	id := models.PersonaID(strings.ToLower(strings.TrimSpace(r.PathValue(personaIDParam))))
	accepted := h.controller.Begin(h.baseCtx, id)
	if !accepted {
		logger.Info().Str("persona", string(id)).Msg("Selection ignored, generation in progress")
	}

	if htmx.IsRequest(r) {
		data := h.pageData(false)
		apiutil.RenderHTMLComponent(r.Context(), w, portfoliotempl.PortfolioSection(data), nil, "Failed to render portfolio section", "Failed to render section")
		return
	}
	if isFormSubmission(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	status := http.StatusOK
	if accepted {
		status = http.StatusAccepted
	}
	response := h.stateResponse(false)
	response.Accepted = &accepted
	if err := apiutil.WriteJSON(w, status, response); err != nil {
		logger.Error().Err(err).Msg("Failed to write selection response")
	}
}

// POST /api/v1/portfolio/reset
func (h *Handlers) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.controller.ResetToPersonaSelection()

	if htmx.IsRequest(r) {
		htmx.Refresh(w)
		w.WriteHeader(http.StatusOK)
		return
	}
	if isFormSubmission(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, h.stateResponse(false)); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write reset response")
	}
}

// GET /api/v1/portfolio/state
func (h *Handlers) HandleState(w http.ResponseWriter, r *http.Request) {
	if htmx.IsRequest(r) {
		data := h.pageData(false)
		if data.State.Phase != portfolio.PhaseLoading {
			// The stylesheet and body class live outside the section; reload the page.
			htmx.Refresh(w)
			w.WriteHeader(http.StatusOK)
			return
		}
		apiutil.RenderHTMLComponent(r.Context(), w, portfoliotempl.PortfolioSection(data), nil, "Failed to render portfolio section", "Failed to render section")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, h.stateResponse(true)); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write state response")
	}
}

// isFormSubmission reports a plain browser form post, sent when htmx is not loaded.
func isFormSubmission(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/x-www-form-urlencoded"
}

func (h *Handlers) pageData(takeNotice bool) portfoliotempl.PageData {
	data := portfoliotempl.PageData{
		Personas: h.catalog.All(),
		Profile:  h.profile,
	}
	state, snapshot := h.snapshot()
	data.State = state
	data.Document = snapshot
	if takeNotice {
		data.Notice = h.document.TakeNotice()
	}
	return data
}

func (h *Handlers) stateResponse(takeNotice bool) stateResponse {
	state, snapshot := h.snapshot()
	response := stateResponse{
		State:     state,
		BodyClass: snapshot.BodyClass,
	}
	if node, ok := snapshot.Stylesheet(theme.StylesheetID); ok {
		response.Stylesheet = &node
	}
	if takeNotice {
		response.Notice = h.document.TakeNotice()
	}
	return response
}

// snapshot reads the controller state and the page under one lock.
func (h *Handlers) snapshot() (portfolio.State, portfolio.DocumentSnapshot) {
	var (
		state    portfolio.State
		snapshot portfolio.DocumentSnapshot
	)
	h.controller.Inspect(func(current portfolio.State) {
		state = current
		snapshot = h.document.Snapshot()
	})
	return state, snapshot
}
