package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rohits-web03/fundbridge/internal/api/view"
	"github.com/rohits-web03/fundbridge/internal/auth"
	"github.com/rohits-web03/fundbridge/internal/models"
	"github.com/rohits-web03/fundbridge/internal/repositories"
	"github.com/rohits-web03/fundbridge/internal/utils"
	"golang.org/x/oauth2"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type googleUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

type googleUserFetcher func(ctx context.Context, cfg *oauth2.Config, code string) (*googleUser, error)

func fetchGoogleUserInfo(ctx context.Context, cfg *oauth2.Config, code string) (*googleUser, error) {
	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange: %w", err)
	}

	resp, err := cfg.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("get user info: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get user info: status %d", resp.StatusCode)
	}

	var u googleUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("parse user info: %w", err)
	}
	return &u, nil
}

// GET /auth/google/login?flow=login|register&role=student|investor
func (h *Handler) GoogleLogin(req *Request) view.Result {
	if h.google == nil {
		return view.NotFound("Google sign-in is not enabled.")
	}

	flow := req.URL.Query().Get("flow")
	if flow == "" {
		flow = "login"
	}
	state := map[string]string{"flow": flow}
	switch flow {
	case "login":
	case "register":
		role, err := models.ParseRole(req.URL.Query().Get("role"))
		if err != nil {
			return view.Invalid("register", http.StatusBadRequest, "Role must be one of: student, investor.", nil)
		}
		state["role"] = role.String()
	default:
		return view.Invalid("login", http.StatusBadRequest, "Unknown sign-in flow.", nil)
	}

	encoded, err := h.generateState(state)
	if err != nil {
		return h.internalError(req, "generate oauth state", err)
	}
	h.bindState(req.w, encoded)
	return view.RedirectTo(h.google.AuthCodeURL(encoded), "", "")
}

// GET /auth/google/callback
func (h *Handler) GoogleCallback(req *Request) view.Result {
	if h.google == nil {
		return view.NotFound("Google sign-in is not enabled.")
	}

	state, err := h.consumeState(req.w, req.Request, req.FormValue("state"))
	if err != nil {
		return view.Invalid("login", http.StatusBadRequest, "Invalid sign-in state.", nil)
	}

	gu, err := h.fetchGoogleUser(req.Context(), h.google, req.FormValue("code"))
	if err != nil {
		h.log.Warn().Err(err).Msg("google sign-in failed")
		return view.RedirectTo("/login", view.StatusError, "Google sign-in failed.")
	}
	email := normalizeEmail(gu.Email)
	if email == "" {
		return view.RedirectTo("/login", view.StatusError, "Google did not share an email address.")
	}
	if !gu.VerifiedEmail {
		return view.RedirectTo("/login", view.StatusError, "Your Google email address is not verified.")
	}

	existing, err := h.store.FindUserByEmail(req.Context(), email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return h.internalError(req, "find user", err)
	}

	user := existing
	switch state["flow"] {
	case "register":
		if existing != nil {
			return view.RedirectTo("/login", view.StatusError, "An account with this email already exists.")
		}
		user, err = h.registerGoogleUser(req, gu, email, models.Role(state["role"]))
		if errors.Is(err, repositories.ErrEmailTaken) {
			return view.RedirectTo("/login", view.StatusError, "An account with this email already exists.")
		}
		if err != nil {
			return h.internalError(req, "create google user", err)
		}
	default:
		if existing == nil {
			return view.RedirectTo("/register", view.StatusError, "No account found for this Google address.")
		}
	}

	if err := h.sessions.Establish(req.w, user); err != nil {
		return h.internalError(req, "issue session", err)
	}
	return view.RedirectTo("/dashboard", view.StatusSuccess, "Logged in successfully.")
}

// registerGoogleUser stores an account whose password is a random secret
// nobody knows, so it can only be used through Google.
func (h *Handler) registerGoogleUser(req *Request, gu *googleUser, email string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role %q in state", role)
	}
	secret, err := utils.RandomToken(32)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(secret)
	if err != nil {
		return nil, err
	}

	name := gu.Name
	if name == "" {
		name = email
	}
	user := &models.User{Username: name, Email: email, Password: hash, Role: role}
	if err := h.store.CreateUser(req.Context(), user); err != nil {
		return nil, err
	}
	return user, nil
}
