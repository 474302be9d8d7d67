package handlers

import (
	// Go Internal Packages
	"net/http"

	// Local Packages
	errors "fraud-dash/errors"
	actions "fraud-dash/services/actions"
	dashboard "fraud-dash/services/dashboard"

	// External Packages
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPHandler struct {
	logger  *zap.Logger
	catalog *dashboard.Catalog
	hub     *Hub
	hook    actions.Hook
}

func NewHTTPHandler(logger *zap.Logger, catalog *dashboard.Catalog, hub *Hub, hook actions.Hook) *HTTPHandler {
	return &HTTPHandler{logger: logger, catalog: catalog, hub: hub, hook: hook}
}

func (h *HTTPHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/overview", h.Overview).Methods(http.MethodGet)
	api.HandleFunc("/feed", h.Feed).Methods(http.MethodGet)
	api.HandleFunc("/model", h.ModelMetrics).Methods(http.MethodGet)
	api.HandleFunc("/risk", h.RiskAnalysis).Methods(http.MethodGet)
	api.HandleFunc("/compliance", h.Compliance).Methods(http.MethodGet)

	api.HandleFunc("/transactions/{id}/review", h.action(actions.ActionReview, "id")).Methods(http.MethodPost)
	api.HandleFunc("/transactions/{id}/block", h.action(actions.ActionBlock, "id")).Methods(http.MethodPost)
	api.HandleFunc("/reports/{kind}", h.GenerateReport).Methods(http.MethodPost)
	api.HandleFunc("/model/retrain", h.action(actions.ActionRetrain, "")).Methods(http.MethodPost)
}

type healthResponse struct {
	Status     string `json:"status"`
	FeedActive bool   `json:"feed_active"`
	Viewers    int    `json:"viewers"`
}

func (h *HTTPHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, healthResponse{
		Status:     "ok",
		FeedActive: h.hub.Feed().Active(),
		Viewers:    h.hub.Viewers(),
	})
}

type overviewResponse struct {
	dashboard.Overview
	LiveDistribution []dashboard.RiskBand `json:"live_distribution"`
}

func (h *HTTPHandler) Overview(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, overviewResponse{
		Overview:         h.catalog.Overview,
		LiveDistribution: dashboard.Distribution(h.hub.Feed().Snapshot()),
	})
}

type feedResponse struct {
	Active   bool      `json:"active"`
	Capacity int       `json:"capacity"`
	Records  []FeedRow `json:"records"`
}

func (h *HTTPHandler) Feed(w http.ResponseWriter, _ *http.Request) {
	feed := h.hub.Feed()
	writeJSON(w, h.logger, http.StatusOK, feedResponse{
		Active:   feed.Active(),
		Capacity: feed.Capacity(),
		Records:  feedRows(feed.Snapshot()),
	})
}

type performanceRow struct {
	dashboard.PerformanceMetric
	OnTarget bool   `json:"on_target"`
	Verdict  string `json:"verdict"`
}

type modelResponse struct {
	dashboard.ModelMetrics
	Performance []performanceRow `json:"performance"`
}

func (h *HTTPHandler) ModelMetrics(w http.ResponseWriter, _ *http.Request) {
	rows := make([]performanceRow, 0, len(h.catalog.ModelMetrics.Performance))
	for _, m := range h.catalog.ModelMetrics.Performance {
		ok, verdict := dashboard.TargetVerdict(m)
		rows = append(rows, performanceRow{PerformanceMetric: m, OnTarget: ok, Verdict: verdict})
	}
	writeJSON(w, h.logger, http.StatusOK, modelResponse{ModelMetrics: h.catalog.ModelMetrics, Performance: rows})
}

func (h *HTTPHandler) RiskAnalysis(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.catalog.RiskAnalysis)
}

func (h *HTTPHandler) Compliance(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.catalog.Compliance)
}

// GenerateReport acknowledges a report request for one of the known kinds.
func (h *HTTPHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	kind, err := dashboard.ParseReportKind(mux.Vars(r)["kind"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	h.acknowledge(w, r, actions.ActionReport, string(kind))
}

func (h *HTTPHandler) action(action actions.Action, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := ""
		if param != "" {
			target = mux.Vars(r)[param]
			if target == "" {
				writeError(w, h.logger, errors.EmptyParamErr(param))
				return
			}
		}
		h.acknowledge(w, r, action, target)
	}
}

func (h *HTTPHandler) acknowledge(w http.ResponseWriter, r *http.Request, action actions.Action, target string) {
	ack, err := h.hook.Handle(r.Context(), action, target)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, h.logger, http.StatusAccepted, ack)
}
