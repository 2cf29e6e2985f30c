package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/diegoclair/prep-rotation/internal/domain/contract"
	"github.com/diegoclair/prep-rotation/internal/domain/entity"
	"github.com/diegoclair/prep-rotation/internal/domain/schedule"
	"go.uber.org/zap"
)

// APIHandler serves the lookup page's JSON endpoints
type APIHandler struct {
	prepService contract.PrepService
	log         *zap.Logger
}

func NewAPIHandler(prepService contract.PrepService, log *zap.Logger) *APIHandler {
	return &APIHandler{
		prepService: prepService,
		log:         log,
	}
}

type selectionResponse struct {
	Override  bool              `json:"override"`
	Selection *entity.Selection `json:"selection"`
	Label     string            `json:"label"`
}

type syncResponse struct {
	Count int `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Register mounts all routes on mux
func (h *APIHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /api/suggestion", h.GetSuggestion)
	mux.HandleFunc("GET /api/suggestion.txt", h.GetSuggestionText)
	mux.HandleFunc("GET /api/weekday-options", h.GetWeekdayOptions)
	mux.HandleFunc("GET /api/selection", h.GetSelection)
	mux.HandleFunc("GET /api/locations", h.GetLocations)
	mux.HandleFunc("GET /api/items", h.GetItems)
	mux.HandleFunc("POST /api/items/sync", h.SyncItems)
}

func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	RenderMessage(w, "OK")
}

func (h *APIHandler) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.prepService.Suggest())
}

func (h *APIHandler) GetSuggestionText(w http.ResponseWriter, r *http.Request) {
	suggestion := h.prepService.Suggest()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	RenderMessage(w, schedule.OptionLabel(suggestion.Week, suggestion.DayLabel))
}

// GetWeekdayOptions lists all ten slots, or filters them when q is present
func (h *APIHandler) GetWeekdayOptions(w http.ResponseWriter, r *http.Request) {
	params := QueryParams(r.URL)

	query, ok := params["q"]
	if !ok {
		writeJSON(w, http.StatusOK, h.prepService.WeekdayOptions())
		return
	}
	writeJSON(w, http.StatusOK, h.prepService.FilterWeekdayOptions(query))
}

// GetSelection resolves ?text= against ?week=&day=, or today's suggestion when they are absent
func (h *APIHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	params := QueryParams(r.URL)

	var fallback *entity.Selection
	if params["week"] != "" || params["day"] != "" {
		suggestion := h.prepService.Suggest()
		fallback = &entity.Selection{Week: suggestion.Week, Day: suggestion.DayShort}

		if params["week"] != "" {
			week, err := strconv.Atoi(params["week"])
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: "week must be a number"})
				return
			}
			fallback.Week = week
		}
		if params["day"] != "" {
			fallback.Day = params["day"]
		}
	}

	selection, override := h.prepService.ResolveSelection(params["text"], fallback)
	writeJSON(w, http.StatusOK, selectionResponse{
		Override:  override,
		Selection: selection,
		Label:     selectionLabel(selection),
	})
}

func (h *APIHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.prepService.Locations()
	if err != nil {
		h.log.Error("failed to list locations", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load locations"})
		return
	}
	writeJSON(w, http.StatusOK, locations)
}

// GetItems filters by every ?location= value; none means no filter
func (h *APIHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	selected := r.URL.Query()["location"]

	items, err := h.prepService.FilterItems(selected)
	if err != nil {
		h.log.Error("failed to list items", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load items"})
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *APIHandler) SyncItems(w http.ResponseWriter, r *http.Request) {
	count, err := h.prepService.SyncItems(r.Context())
	if err != nil {
		h.log.Error("failed to sync items", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, syncResponse{Count: count})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
