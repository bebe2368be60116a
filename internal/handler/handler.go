package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"rdfview/internal/codec"
	"rdfview/internal/domain"
	"rdfview/internal/repository"
	"rdfview/internal/service"
)

// maxFormBytes bounds the size of a submitted triples form
const maxFormBytes = 10 << 20

// GraphHandler handles generator API requests
type GraphHandler struct {
	svc *service.GraphService
}

// NewGraphHandler creates a new graph handler
func NewGraphHandler(svc *service.GraphService) *GraphHandler {
	return &GraphHandler{svc: svc}
}

// Error response structure
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// StoredResponse is returned after a graph is stored
type StoredResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Generate returns the graph payload for the submitted triples
func (h *GraphHandler) Generate(w http.ResponseWriter, r *http.Request) {
	text, mode, ok := h.readForm(w, r)
	if !ok {
		return
	}

	g, err := h.svc.Generate(r.Context(), text, mode)
	if err != nil {
		h.fail(w, "Failed to generate graph", err)
		return
	}

	h.writeJSON(w, g, http.StatusOK)
}

// GenerateAndRedirect stores the graph payload for the submitted triples
// and redirects to its stored URL
func (h *GraphHandler) GenerateAndRedirect(w http.ResponseWriter, r *http.Request) {
	text, mode, ok := h.readForm(w, r)
	if !ok {
		return
	}

	id, err := h.svc.Store(r.Context(), text, mode)
	if err != nil {
		h.fail(w, "Failed to store graph", err)
		return
	}

	http.Redirect(w, r, graphURL(id, mode), http.StatusSeeOther)
}

// StoreGraph stores the graph payload and returns its id
func (h *GraphHandler) StoreGraph(w http.ResponseWriter, r *http.Request) {
	text, mode, ok := h.readForm(w, r)
	if !ok {
		return
	}

	id, err := h.svc.Store(r.Context(), text, mode)
	if err != nil {
		h.fail(w, "Failed to store graph", err)
		return
	}

	h.writeJSON(w, StoredResponse{ID: id, URL: graphURL(id, mode)}, http.StatusCreated)
}

// ListGraphs returns summaries of stored graphs
func (h *GraphHandler) ListGraphs(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, "Failed to list graphs", err)
		return
	}

	h.writeJSON(w, summaries, http.StatusOK)
}

// GetGraph returns a stored graph payload. The format query parameter
// selects json (default) or yaml.
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, "Invalid graph ID", "Graph ID is required", http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	var buf bytes.Buffer
	if err := h.svc.Export(r.Context(), id, format, &buf); err != nil {
		h.fail(w, "Failed to get graph", err)
		return
	}

	if format == "yaml" {
		w.Header().Set("Content-Type", "application/x-yaml")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// DeleteGraph deletes a stored graph
func (h *GraphHandler) DeleteGraph(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, "Invalid graph ID", "Graph ID is required", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, "Failed to delete graph", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Helper methods

// readForm reads the triples and mode form fields. A missing triples
// field is a bad request; a missing mode means graphe.
func (h *GraphHandler) readForm(w http.ResponseWriter, r *http.Request) (string, domain.Mode, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.writeError(w, "Invalid form", err.Error(), http.StatusBadRequest)
		return "", "", false
	}

	if _, ok := r.PostForm["triples"]; !ok {
		h.writeError(w, "Invalid form", "triples field is required", http.StatusBadRequest)
		return "", "", false
	}

	return r.PostForm.Get("triples"), domain.ParseMode(r.PostForm.Get("mode")), true
}

// fail maps a service error to a status code and writes it
func (h *GraphHandler) fail(w http.ResponseWriter, msg string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s: %v", msg, err)
	}
	h.writeError(w, msg, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMalformedGraph), errors.Is(err, codec.ErrUnsupportedFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func graphURL(id string, mode domain.Mode) string {
	return fmt.Sprintf("/graphs/%s?mode=%s", url.PathEscape(id), url.QueryEscape(string(mode)))
}

func (h *GraphHandler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON: %v", err)
	}
}

func (h *GraphHandler) writeError(w http.ResponseWriter, error, details string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error:   error,
		Details: details,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}
