package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"dsr-service/internal/usecase"

	"github.com/gorilla/mux"
)

// ListJobs serves one page of the list named by the {list} path variable
func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["list"]

	q, err := parseListQuery(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.services.Lists.List(r.Context(), name, q)
	if err != nil {
		h.fail(w, "list_jobs", "Job list not found", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// GetJob returns one job
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	job, err := h.services.Jobs.Get(r.Context(), vars["year"], vars["job_no"])
	if err != nil {
		h.fail(w, "get_job", "Job not found", err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// UpdateJob applies lifecycle changes and reclassifies the job
func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req usecase.JobUpdate
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := h.services.Jobs.Update(r.Context(), vars["year"], vars["job_no"], &req)
	if err != nil {
		h.fail(w, "update_job", "Job not found", err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// RefreshDetailedStatus recomputes detailed_status for a year, or for every
// job when no year is given
func (h *Handler) RefreshDetailedStatus(w http.ResponseWriter, r *http.Request) {
	year := strings.TrimSpace(r.URL.Query().Get("year"))

	result, err := h.services.Refresher.Refresh(r.Context(), year)
	if err != nil {
		h.fail(w, "refresh_status", "No jobs found", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// DownloadReport streams the status-ranked DSR workbook
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, status := vars["year"], vars["status"]

	data, err := h.services.Reports.Export(r.Context(), year, status)
	if err != nil {
		h.fail(w, "report", "Report not found", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+usecase.ReportFilename(year, status))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
