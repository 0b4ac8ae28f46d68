package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const stateCookieName = "bee_state"

// stateClaims is the session state a client carries between /play calls.
// Progress is exactly what a progress store would hold: found words joined
// by newlines.
type stateClaims struct {
	jwt.RegisteredClaims
	Date     string `json:"date"`
	Key      string `json:"key"`
	Progress string `json:"progress,omitempty"`
	Guess    string `json:"guess,omitempty"`
	Order    string `json:"order,omitempty"`
}

// signState creates an HS256 token for c expiring after the configured TTL.
func (s *Server) signState(c stateClaims) (string, time.Time, error) {
	if len(s.cfg.Secret) == 0 {
		return "", time.Time{}, errors.New("httpserver: empty state secret")
	}
	now := s.cfg.Now()
	exp := now.Add(s.cfg.TokenTTL)
	c.IssuedAt = jwt.NewNumericDate(now)
	c.ExpiresAt = jwt.NewNumericDate(exp)
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.cfg.Secret)
	return ss, exp, err
}

// parseState verifies a token and returns its claims.
func (s *Server) parseState(tok string) (*stateClaims, error) {
	var c stateClaims
	_, err := jwt.ParseWithClaims(tok, &c, func(t *jwt.Token) (interface{}, error) {
		return s.cfg.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.cfg.Now))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// setStateCookie writes the state token cookie with appropriate security attributes.
func (s *Server) setStateCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.cfg.SecureCookie {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.cfg.SecureCookie,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or the state cookie.
func bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(stateCookieName); err == nil {
		return c.Value
	}
	return ""
}
