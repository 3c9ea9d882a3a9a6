package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ListPrData returns one page of transport requisitions
func (h *Handler) ListPrData(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.services.Transport.List(r.Context(), r.URL.Query().Get("search"), page, limit)
	if err != nil {
		h.fail(w, "pr_data", "No PR data found", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// MarkLrCompleted flags a container's lorry receipt as done
func (h *Handler) MarkLrCompleted(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := h.services.Transport.MarkLrCompleted(r.Context(), vars["pr_no"], vars["container_number"]); err != nil {
		h.fail(w, "lr_completed", "PR or container not found", err)
		return
	}
	writeMessage(w, http.StatusOK, "LR marked as completed")
}
