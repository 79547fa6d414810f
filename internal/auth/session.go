package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rohits-web03/fundbridge/internal/models"
)

var (
	ErrLoginRequired = errors.New("login required")
	ErrRoleDenied    = errors.New("role not permitted")
	ErrInvalidToken  = errors.New("invalid session token")
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "token"

// Identity is the caller resolved for a single request. A nil User means
// the caller is anonymous.
type Identity struct {
	User *models.User
}

func Anonymous() Identity { return Identity{} }

func (i Identity) Authenticated() bool { return i.User != nil }

// RequireLogin returns the caller's user, or ErrLoginRequired for anonymous callers.
func RequireLogin(id Identity) (*models.User, error) {
	if !id.Authenticated() {
		return nil, ErrLoginRequired
	}
	return id.User, nil
}

// RequireRole is RequireLogin plus a role check, failing with ErrRoleDenied.
func RequireRole(id Identity, role models.Role) (*models.User, error) {
	u, err := RequireLogin(id)
	if err != nil {
		return nil, err
	}
	if !u.Is(role) {
		return nil, ErrRoleDenied
	}
	return u, nil
}

// UserLoader rehydrates a user from the id stored in a session token.
type UserLoader func(ctx context.Context, id uuid.UUID) (*models.User, error)

type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionManager issues and resolves session cookies. It is configured once
// at startup and only read afterwards.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	load   UserLoader
}

func NewSessionManager(secret string, ttl time.Duration, secure bool, load UserLoader) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		load:   load,
	}
}

func (m *SessionManager) IssueToken(u *models.User) (string, time.Time, error) {
	now := time.Now()
	expiration := now.Add(m.ttl)
	claims := &Claims{
		UserID: u.ID.String(),
		Role:   u.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiration, nil
}

func (m *SessionManager) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Establish signs a token for u and stores it in the session cookie.
func (m *SessionManager) Establish(w http.ResponseWriter, u *models.User) error {
	token, expiration, err := m.IssueToken(u)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(time.Until(expiration).Seconds()),
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *SessionManager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// CurrentIdentity resolves the caller of r. Missing, expired or forged
// tokens and tokens for users that no longer exist all resolve to Anonymous.
func (m *SessionManager) CurrentIdentity(r *http.Request) Identity {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Anonymous()
	}
	claims, err := m.ParseToken(cookie.Value)
	if err != nil {
		return Anonymous()
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return Anonymous()
	}
	u, err := m.load(r.Context(), id)
	if err != nil || u == nil {
		return Anonymous()
	}
	return Identity{User: u}
}
