package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/kastheco/matiz/log"
	"github.com/kastheco/matiz/resolver"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBatch caps the number of descriptions in one POST /v1/resolve.
const maxBatch = 500

// BatchRequest is the body of POST /v1/resolve.
type BatchRequest struct {
	Texts []string `json:"texts"`
}

// NewHandler returns an http.Handler that exposes the resolver over HTTP.
// It uses Go 1.22+ ServeMux pattern matching for method+path routing.
func NewHandler(r *resolver.Resolver) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /v1/ping", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Resolve one description: /v1/resolve?text=verde+agua+claro
	mux.HandleFunc("GET /v1/resolve", func(w http.ResponseWriter, req *http.Request) {
		if !req.URL.Query().Has("text") {
			writeError(w, http.StatusBadRequest, "text query parameter is required")
			return
		}
		res := r.Explain(req.URL.Query().Get("text"))
		observe(res)
		writeJSON(w, http.StatusOK, res)
	})

	// Resolve a batch, preserving input order
	mux.HandleFunc("POST /v1/resolve", func(w http.ResponseWriter, req *http.Request) {
		var body BatchRequest
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if len(body.Texts) > maxBatch {
			writeError(w, http.StatusRequestEntityTooLarge, "too many texts: max "+strconv.Itoa(maxBatch))
			return
		}
		out := make([]resolver.Resolution, len(body.Texts))
		for i, text := range body.Texts {
			out[i] = r.Explain(text)
			observe(out[i])
		}
		writeJSON(w, http.StatusOK, out)
	})

	// List dictionary entries (with optional ?q= filter on name or keyword)
	mux.HandleFunc("GET /v1/colors", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, FilterEntries(r.Entries(), req.URL.Query().Get("q")))
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	return logRequests(mux)
}

// FilterEntries keeps entries whose name or a keyword contains q, compared
// in normalized form. An empty q keeps everything.
func FilterEntries(entries []resolver.ColorEntry, q string) []resolver.ColorEntry {
	q = resolver.Normalize(q)
	if q == "" {
		return entries
	}
	var out []resolver.ColorEntry
	for _, e := range entries {
		if matchesEntry(e, q) {
			out = append(out, e)
		}
	}
	return out
}

func matchesEntry(e resolver.ColorEntry, q string) bool {
	if strings.Contains(resolver.Normalize(e.Name), q) {
		return true
	}
	for _, kw := range e.Keywords {
		if strings.Contains(resolver.Normalize(kw), q) {
			return true
		}
	}
	return false
}

func observe(res resolver.Resolution) {
	MetricResolutionsTotal.WithLabelValues(res.Quality.String()).Inc()
	log.DebugLog.Printf("resolved %q -> %s (%s)", res.Text, res.Hex, res.Quality)
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		mux.ServeHTTP(rec, req)

		_, route := mux.Handler(req)
		if route == "" {
			route = "unmatched"
		}
		MetricRequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		log.InfoLog.Printf("%s %s %d", req.Method, req.URL.Path, rec.status)
	})
}

// writeJSON encodes v as JSON and writes it to w with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
