package handlers

import (
	"errors"
	"net/http"

	"github.com/rohits-web03/fundbridge/internal/api/middleware"
	"github.com/rohits-web03/fundbridge/internal/api/view"
	"github.com/rohits-web03/fundbridge/internal/auth"
	"github.com/rohits-web03/fundbridge/internal/models"
	"github.com/rohits-web03/fundbridge/internal/repositories"
)

// GET /register
func (h *Handler) RegisterPage(req *Request) view.Result {
	return view.Page("register", nil)
}

// POST /register
// Register godoc
// @Summary Create an account
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Display name"
// @Param email formData string true "Email, unique across accounts"
// @Param password formData string true "Password"
// @Param role formData string true "student or investor"
// @Success 303 "Redirect to /login"
// @Failure 400 {object} utils.Payload
// @Router /register [post]
func (h *Handler) Register(req *Request) view.Result {
	form := parseRegisterForm(req)
	if msg := h.validateRegister(form); msg != "" {
		middleware.RecordAuthAttempt("register", false)
		return view.Invalid("register", http.StatusBadRequest, msg, form)
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		return h.internalError(req, "hash password", err)
	}

	user := models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: hash,
		Role:     models.Role(form.Role),
	}
	if err := h.store.CreateUser(req.Context(), &user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			middleware.RecordAuthAttempt("register", false)
			return view.Invalid("register", http.StatusBadRequest, "An account with this email already exists.", form)
		}
		return h.internalError(req, "create user", err)
	}

	middleware.RecordAuthAttempt("register", true)
	h.log.Info().Str("user_id", user.ID.String()).Str("role", user.Role.String()).Msg("user registered")
	return view.RedirectTo("/login", view.StatusSuccess, "Registration successful. Please log in.")
}

// GET /login
func (h *Handler) LoginPage(req *Request) view.Result {
	if req.Identity.Authenticated() {
		return view.RedirectTo("/dashboard", "", "")
	}
	return view.Page("login", nil)
}

// POST /login
// Login godoc
// @Summary Start a session
// @Description Sets the session cookie. Already authenticated callers are redirected without a credential check.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 303 "Redirect to /dashboard"
// @Failure 401 {object} utils.Payload
// @Router /login [post]
func (h *Handler) Login(req *Request) view.Result {
	if req.Identity.Authenticated() {
		return view.RedirectTo("/dashboard", "", "")
	}

	form := parseLoginForm(req)
	invalid := view.Invalid("login", http.StatusUnauthorized, "Invalid email or password.", form)
	if form.Email == "" || form.Password == "" {
		middleware.RecordAuthAttempt("login", false)
		return invalid
	}

	user, err := h.store.FindUserByEmail(req.Context(), form.Email)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		middleware.RecordAuthAttempt("login", false)
		return invalid
	case err != nil:
		return h.internalError(req, "find user", err)
	}

	if !auth.VerifyPassword(form.Password, user.Password) {
		middleware.RecordAuthAttempt("login", false)
		return invalid
	}

	if err := h.sessions.Establish(req.w, user); err != nil {
		return h.internalError(req, "issue session", err)
	}
	middleware.RecordAuthAttempt("login", true)
	return view.RedirectTo("/dashboard", view.StatusSuccess, "Logged in successfully.")
}

// GET /logout
func (h *Handler) Logout(req *Request) view.Result {
	h.sessions.Clear(req.w)
	return view.RedirectTo("/login", view.StatusSuccess, "You have been logged out.")
}
