package handler

import "net/http"

// Register mounts the generator API and the event stream on mux
func (h *GraphHandler) Register(mux *http.ServeMux, events http.Handler) {
	mux.HandleFunc("POST /generate", h.Generate)
	mux.HandleFunc("POST /generate_and_redirect", h.GenerateAndRedirect)

	mux.HandleFunc("GET /graphs", h.ListGraphs)
	mux.HandleFunc("POST /graphs", h.StoreGraph)
	mux.HandleFunc("GET /graphs/{id}", h.GetGraph)
	mux.HandleFunc("DELETE /graphs/{id}", h.DeleteGraph)

	if events != nil {
		mux.Handle("GET /events", events)
	}
}
