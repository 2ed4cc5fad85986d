// Package api serves the bankist session actions over HTTP. Each login gets
// its own session, addressed by a signed token.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"bankist.dev/bankist/pkg/bankist"
	"bankist.dev/bankist/pkg/view"
)

type Server struct {
	store     *bankist.Store
	jwtKey    []byte
	ttl       time.Duration
	accessLog io.Writer
	now       func() time.Time

	logMu sync.Mutex

	mu       sync.Mutex
	sessions map[string]sessionEntry
}

type Option func(*Server)

// WithSessionTTL sets how long a login token stays valid.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) {
		s.ttl = ttl
	}
}

// WithAccessLog sets where Logger writes. Defaults to io.Discard.
func WithAccessLog(w io.Writer) Option {
	return func(s *Server) {
		s.accessLog = w
	}
}

func NewServer(store *bankist.Store, jwtKey []byte, opts ...Option) *Server {
	s := &Server{
		store:     store,
		jwtKey:    jwtKey,
		ttl:       time.Hour,
		accessLog: io.Discard,
		now:       time.Now,
		sessions:  make(map[string]sessionEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler wires every route behind the access logger.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", s.Login)
	mux.HandleFunc("/stats", s.Stats)
	// everything below needs a session token
	mux.Handle("/account", s.Auth(s.AccountHandler))
	mux.Handle("/view", s.Auth(s.ViewHandler))
	mux.Handle("/transfer", s.Auth(s.TransferHandler))
	mux.Handle("/loan", s.Auth(s.LoanHandler))
	mux.Handle("/close", s.Auth(s.CloseHandler))
	mux.Handle("/sort", s.Auth(s.SortHandler))
	return s.Logger(mux)
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var creds LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := bankist.NewSession(s.store)
	d, err := sess.Login(creds.Username, creds.Pin)
	if err != nil {
		s.reject(w, "", err)
		return
	}

	token, err := s.startSession(sess, sess.Username())
	if err != nil {
		log.Printf("Error issuing token: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, Display: d})
}

func (s *Server) AccountHandler(w http.ResponseWriter, r *http.Request, sess *bankist.Session, claims *Claims) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	d := sess.View()
	if !d.LoggedIn {
		s.reject(w, claims.SessionID, bankist.ErrNotLoggedIn)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// ViewHandler renders the same facts as AccountHandler as HTML.
func (s *Server) ViewHandler(w http.ResponseWriter, r *http.Request, sess *bankist.Session, claims *Claims) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.HTML(w, sess.View()); err != nil {
		log.Printf("Error rendering view: %v", err)
	}
}

func (s *Server) TransferHandler(w http.ResponseWriter, r *http.Request, sess *bankist.Session, claims *Claims) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	var body TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d, err := sess.Transfer(body.To, body.Amount)
	s.respond(w, claims, d, err)
}

func (s *Server) LoanHandler(w http.ResponseWriter, r *http.Request, sess *bankist.Session, claims *Claims) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	var body LoanRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d, err := sess.RequestLoan(body.Amount)
	s.respond(w, claims, d, err)
}

// CloseHandler deletes the logged-in account. The token stops working on
// success.
func (s *Server) CloseHandler(w http.ResponseWriter, r *http.Request, sess *bankist.Session, claims *Claims) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	var body CloseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d, err := sess.Close(body.Username, body.Pin)
	if err == nil {
		log.Printf("account %s closed", claims.Username)
		s.endSession(claims.SessionID)
	}
	s.respond(w, claims, d, err)
}

func (s *Server) SortHandler(w http.ResponseWriter, r *http.Request, sess *bankist.Session, claims *Claims) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	d, err := sess.ToggleSort()
	s.respond(w, claims, d, err)
}

// Stats reports bank-wide figures. No token needed.
func (s *Server) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, StatsResponse{
		Accounts:     s.store.Len(),
		TotalBalance: s.store.TotalBalance(),
	})
}

func (s *Server) respond(w http.ResponseWriter, claims *Claims, d bankist.Display, err error) {
	if err != nil {
		s.reject(w, claims.SessionID, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// reject reports a refused action. A session whose account is gone is
// dropped from the registry.
func (s *Server) reject(w http.ResponseWriter, sessionID string, err error) {
	status, reason := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Printf("Unexpected action error: %v", err)
		writeError(w, status, "Internal Server Error", "")
		return
	}
	if sessionID != "" && errors.Is(err, bankist.ErrNotLoggedIn) {
		s.endSession(sessionID)
	}
	log.Printf("rejected: %v", err)
	writeError(w, status, err.Error(), reason)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg, reason string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Reason: reason})
}
