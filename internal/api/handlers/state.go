package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rohits-web03/fundbridge/internal/utils"
)

var errInvalidState = errors.New("invalid state")

const (
	stateCookieName = "oauth_state"
	stateCookieTTL  = 10 * time.Minute
)

// generateState creates a signed OAuth state carrying metadata such as the
// flow ("login" or "register") and the requested role.
// Format: random.payload.signature, all base64url.
func (h *Handler) generateState(data map[string]string) (string, error) {
	randomPart, err := utils.RandomToken(16)
	if err != nil {
		return "", err
	}

	payloadBytes, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal state data: %w", err)
	}
	payloadPart := base64.RawURLEncoding.EncodeToString(payloadBytes)

	unsigned := randomPart + "." + payloadPart
	return unsigned + "." + h.signState(unsigned), nil
}

// decodeState verifies the signature and returns the metadata.
func (h *Handler) decodeState(state string) (map[string]string, error) {
	parts := strings.Split(state, ".")
	if len(parts) != 3 {
		return nil, errInvalidState
	}
	expected := h.signState(parts[0] + "." + parts[1])
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return nil, errInvalidState
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode state payload: %w", err)
	}

	var data map[string]string
	if err := json.Unmarshal(payloadBytes, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state JSON: %w", err)
	}
	return data, nil
}

func (h *Handler) signState(unsigned string) string {
	mac := hmac.New(sha256.New, h.stateKey)
	mac.Write([]byte(unsigned))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// stateNonce is the random part of a state value.
func stateNonce(state string) string {
	nonce, _, _ := strings.Cut(state, ".")
	return nonce
}

// bindState ties state to the browser starting the flow.
func (h *Handler) bindState(w http.ResponseWriter, state string) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    stateNonce(state),
		Path:     "/auth/google",
		MaxAge:   int(stateCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// consumeState verifies state against the signature and the cookie set by
// bindState, then clears the cookie.
func (h *Handler) consumeState(w http.ResponseWriter, r *http.Request, state string) (map[string]string, error) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/auth/google",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	c, err := r.Cookie(stateCookieName)
	if err != nil || c.Value == "" {
		return nil, errInvalidState
	}
	if !hmac.Equal([]byte(c.Value), []byte(stateNonce(state))) {
		return nil, errInvalidState
	}
	return h.decodeState(state)
}
