package handlers

import (
	// Go Internal Packages
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"time"

	// Local Packages
	models "fraud-dash/models"
	dashboard "fraud-dash/services/dashboard"

	// External Packages
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var toneColors = map[models.Tone]string{
	models.ToneDestructive: "#ef4444",
	models.ToneWarning:     "#f59e0b",
	models.ToneAccent:      "#10b981",
	models.TonePrimary:     "#6366f1",
	models.ToneMuted:       "#9ca3af",
}

var funcMap = template.FuncMap{
	"toneColor": func(t models.Tone) string {
		if c, ok := toneColors[t]; ok {
			return c
		}
		return toneColors[models.ToneMuted]
	},
	"pct": func(v float64) string {
		return fmt.Sprintf("%.1f", v)
	},
	"num": func(v float64) string {
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%.1f", v)
	},
	"fmtTime": func(t time.Time) string {
		if t.IsZero() {
			return "—"
		}
		return t.Local().Format("15:04:05")
	},
	"verdict": func(m dashboard.PerformanceMetric) string {
		_, text := dashboard.TargetVerdict(m)
		return text
	},
	"reqPct": dashboard.RequirementsPercent,
}

var pageTmpl = template.Must(template.New("page").Funcs(funcMap).Parse(tmplPage))

type PageHandler struct {
	logger  *zap.Logger
	catalog *dashboard.Catalog
	toneCSS map[models.Tone]string
}

func NewPageHandler(logger *zap.Logger, catalog *dashboard.Catalog) *PageHandler {
	return &PageHandler{logger: logger, catalog: catalog, toneCSS: toneColors}
}

func (h *PageHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Dashboard).Methods(http.MethodGet)
}

// Dashboard renders every tab. The live monitor fills itself over the websocket.
func (h *PageHandler) Dashboard(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, map[string]any{
		"Catalog": h.catalog,
		"Tones":   h.toneCSS,
	})
	if err != nil {
		h.logger.Error("cannot render dashboard", zap.Error(err))
		http.Error(w, "cannot render dashboard", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
