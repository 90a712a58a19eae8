package matching

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/roommapper/internal/matching"
	"github.com/MrJamesThe3rd/roommapper/internal/normalize"
)

const batchIDHeader = "X-Batch-ID"

type Handler struct {
	svc        *matching.Service
	normalizer matching.Normalizer
}

func NewHandler(svc *matching.Service, normalizer matching.Normalizer) *Handler {
	return &Handler{svc: svc, normalizer: normalizer}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/room_match", h.roomMatch)
	r.Post("/ref_room_match", h.refRoomMatch)
	r.Post("/bulk_room_match", h.bulkRoomMatch)
	r.Post("/normalize", h.normalize)
}

func (h *Handler) roomMatch(w http.ResponseWriter, r *http.Request) {
	var req roomDataRequest
	if !h.decode(w, r, &req) {
		return
	}

	res, err := h.svc.MatchFullCatalog(r.Context(), req.toRoomData())
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toCatalogResponse(res))
}

func (h *Handler) refRoomMatch(w http.ResponseWriter, r *http.Request) {
	var req roomDataRequest
	if !h.decode(w, r, &req) {
		return
	}

	propertyID := req.ReferenceCatalog.PropertyID

	res, err := h.svc.MatchForProperty(r.Context(), propertyID, req.suppliers())
	if err != nil {
		if errors.Is(err, matching.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{
				Error:   "Invalid Request",
				Message: "The propertyID provided is not in the reference system.",
			})

			return
		}

		writeFailure(w, err)

		return
	}

	writeJSON(w, http.StatusOK, toPropertyResponse(res))
}

func (h *Handler) bulkRoomMatch(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if !h.decode(w, r, &req) {
		return
	}

	batchID := uuid.New()

	batch := make([]matching.RoomData, len(req.BulkMatches))
	for i, item := range req.BulkMatches {
		batch[i] = item.toRoomData()
	}

	items := h.svc.MatchBulk(r.Context(), batch)

	resp := make([]any, len(items))
	failed := 0

	for i, item := range items {
		if item.Err != nil {
			failed++

			slog.Error("bulk item failed", "batch_id", batchID, "index", i, "error", item.Err)
			resp[i] = errorResponse{Error: "Server Error", Message: item.Err.Error()}

			continue
		}

		resp[i] = toCatalogResponse(item.Result)
	}

	slog.Info("bulk match finished", "batch_id", batchID, "items", len(items), "failed", failed)

	w.Header().Set(batchIDHeader, batchID.String())
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) normalize(w http.ResponseWriter, r *http.Request) {
	var req normalizeRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.normalizer.NormalizeAll(req.Names)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, normalizeResponse{Normalized: out})
}

// decode reads and validates a JSON body, answering 400 itself on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := decodeRequest(r.Body, dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid Request", Message: err.Error()})
		return false
	}

	return true
}

func writeFailure(w http.ResponseWriter, err error) {
	if errors.Is(err, normalize.ErrInvalidEncoding) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid Request", Message: err.Error()})
		return
	}

	slog.Error("matching failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Server Error", Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
