package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

// Logger writes one JSON line per request to the server's access log.
func (s *Server) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		headers := r.Header.Clone()
		headers.Del("Authorization")

		logEntry := map[string]interface{}{
			"req": map[string]interface{}{
				"url":          r.URL.Path,
				"method":       r.Method,
				"qs_params":    r.URL.Query(),
				"headers":      headers,
				"req_body_len": r.ContentLength,
			},
			"rsp": map[string]interface{}{
				"status_class": statusClass(rec.status),
				"rsp_body_len": rec.written,
			},
		}

		logData, err := json.Marshal(logEntry)
		if err != nil {
			log.Printf("Error marshaling log data: %v", err)
			return
		}

		s.logMu.Lock()
		defer s.logMu.Unlock()
		if _, err := s.accessLog.Write(append(logData, '\n')); err != nil {
			log.Printf("Error writing access log: %v", err)
		}
	})
}

// statusRecorder remembers the status and body size the handler sent.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int64
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.written += int64(n)
	return n, err
}

// statusClass buckets 404 as "4xx".
func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
