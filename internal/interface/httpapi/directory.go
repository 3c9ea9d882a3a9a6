package httpapi

import (
	"net/http"
	"strings"
)

// ListImporters returns the importer pick list for a year
func (h *Handler) ListImporters(w http.ResponseWriter, r *http.Request) {
	year := strings.TrimSpace(r.URL.Query().Get("year"))
	if year == "" {
		writeMessage(w, http.StatusBadRequest, "year is required")
		return
	}

	importers, err := h.services.Directory.Importers(r.Context(), year)
	if err != nil {
		h.fail(w, "importers", "No importers found", err)
		return
	}
	writeJSON(w, http.StatusOK, importers)
}

// ListIcdCodes returns the ICD master list
func (h *Handler) ListIcdCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.services.Directory.IcdCodes(r.Context())
	if err != nil {
		h.fail(w, "icd_codes", "No ICD codes found", err)
		return
	}
	writeJSON(w, http.StatusOK, codes)
}
