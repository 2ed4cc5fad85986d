package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"

	"bankist.dev/bankist/pkg/bankist"
)

type sessionEntry struct {
	session   *bankist.Session
	expiresAt time.Time
}

// startSession registers sess under a fresh id and signs a token for it.
func (s *Server) startSession(sess *bankist.Session, username string) (string, error) {
	now := s.now()
	id := uuid.New().String()
	expiresAt := now.Add(s.ttl)

	claims := &Claims{
		Username:  username,
		SessionID: id,
		StandardClaims: jwt.StandardClaims{
			Id:        id,
			IssuedAt:  now.Unix(),
			ExpiresAt: expiresAt.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.sessions {
		if now.After(e.expiresAt) {
			delete(s.sessions, k)
		}
	}
	s.sessions[id] = sessionEntry{session: sess, expiresAt: expiresAt}
	return tokenString, nil
}

func (s *Server) lookupSession(id string) (*bankist.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.now().After(e.expiresAt) {
		delete(s.sessions, id)
		return nil, false
	}
	return e.session, true
}

func (s *Server) endSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len returns the number of live sessions.
func (s *Server) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Auth resolves the bearer token to its session before calling next.
func (s *Server) Auth(next func(http.ResponseWriter, *http.Request, *bankist.Session, *Claims)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := r.Header.Get("Authorization")
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "Missing token", "")
			return
		}
		tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.jwtKey, nil
		})
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token", "")
			return
		}

		sess, ok := s.lookupSession(claims.SessionID)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Session ended", "not_logged_in")
			return
		}

		next(w, r, sess, claims)
	}
}
