package ops

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/AINative-Studio/kwanzaa-sub004/domain/decision"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/analytics"
	"github.com/AINative-Studio/kwanzaa-sub004/internal/synthesizer"
	"github.com/AINative-Studio/kwanzaa-sub004/ports"
)

// App is the ops/export surface over the decision log: health, snapshot,
// analytics, and the persisted-artifact exports.
type App struct {
	router        *chi.Mux
	reader        ports.DecisionLogReaderPort
	jsonlExporter ports.ExporterPort
	excelExporter ports.ExporterPort
	health        func() int64
}

// Config holds ops application configuration
type Config struct {
	Port string
}

// NewApp creates the ops application
func NewApp(reader ports.DecisionLogReaderPort, jsonlExporter, excelExporter ports.ExporterPort, logFailures func() int64) *App {
	app := &App{
		router:        chi.NewRouter(),
		reader:        reader,
		jsonlExporter: jsonlExporter,
		excelExporter: excelExporter,
		health:        logFailures,
	}
	app.setupMiddleware()
	app.setupRoutes()
	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Get("/decisions", a.handleDecisions)
	a.router.Get("/decisions/stats", a.handleStats)
	a.router.Get("/decisions/export", a.handleExportJSONL)
	a.router.Get("/decisions/export.xlsx", a.handleExportExcel)
	a.router.Get("/decisions/{id}", a.handleDecisionDetail)
}

// Start runs the ops server
func (a *App) Start(cfg Config) error {
	addr := ":" + cfg.Port
	log.Printf("Ops server listening on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Router exposes the handler for tests and embedding
func (a *App) Router() http.Handler {
	return a.router
}

// handleHealth reports liveness plus the out-of-band log-sink signal
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"log_failures": a.health(),
	})
}

// handleDecisions returns the current log snapshot as JSON
func (a *App) handleDecisions(w http.ResponseWriter, r *http.Request) {
	entries, err := a.reader.Entries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(entries),
		"decisions": entries,
	})
}

// handleStats returns the analytics summary of the log snapshot
func (a *App) handleStats(w http.ResponseWriter, r *http.Request) {
	entries, err := a.reader.Entries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics.Summarize(entries))
}

// handleExportJSONL streams the persisted-artifact export
func (a *App) handleExportJSONL(w http.ResponseWriter, r *http.Request) {
	entries, err := a.reader.Entries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Content-Disposition", `attachment; filename="decision_log.jsonl"`)
	if err := a.jsonlExporter.Export(r.Context(), w, entries); err != nil {
		log.Printf("WARN: jsonl export aborted: %v", err)
	}
}

// handleExportExcel streams the spreadsheet export
func (a *App) handleExportExcel(w http.ResponseWriter, r *http.Request) {
	entries, err := a.reader.Entries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="decision_log.xlsx"`)
	if err := a.excelExporter.Export(r.Context(), w, entries); err != nil {
		log.Printf("WARN: spreadsheet export aborted: %v", err)
	}
}

// handleDecisionDetail renders one logged decision as an HTML report. The
// refusal diagnostic is re-synthesized from the stored measured values and
// thresholds, so the report always matches what the caller was told.
func (a *App) handleDecisionDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	entries, err := a.reader.Entries(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	for _, entry := range entries {
		if entry.ID.String() == id {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			w.Write(renderDetail(entry))
			return
		}
	}
	writeError(w, http.StatusNotFound, fmt.Errorf("decision %s not found", id))
}

// renderDetail builds the markdown report for one entry and converts it to HTML
func renderDetail(entry decision.LogEntry) []byte {
	md := fmt.Sprintf("# Decision %s\n\n- Query: %s\n- Persona: %s\n- Class: %s\n- Refused: %t\n- Best score: %.2f\n- Distinct sources: %d\n",
		entry.ID, entry.Query, entry.Persona, entry.QueryClass, entry.Refused,
		entry.Measured.BestScore, entry.Measured.DistinctSourceCount)
	if entry.Refused {
		refusal := synthesizer.Synthesize(entry.Reason, entry.Measured, entry.Thresholds)
		md += "\n" + synthesizer.Markdown(entry.Reason, refusal)
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("WARN: response encode failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
