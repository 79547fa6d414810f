package handlers

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/rohits-web03/fundbridge/internal/api/view"
	"github.com/rohits-web03/fundbridge/internal/auth"
	"github.com/rohits-web03/fundbridge/internal/models"
	"github.com/rohits-web03/fundbridge/internal/repositories"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// Request is the request-scoped context every handler receives: the
// inbound request plus the caller resolved by the session manager.
type Request struct {
	*http.Request
	Identity auth.Identity

	w http.ResponseWriter
}

// User is the authenticated caller. Only call it from handlers behind a
// login or role gate.
func (r *Request) User() *models.User {
	return r.Identity.User
}

type HandlerFunc func(req *Request) view.Result

// Access describes the gate a route sits behind.
type Access struct {
	login    bool
	role     models.Role
	deniedTo string
}

var Public = Access{}

func LoginRequired() Access {
	return Access{login: true}
}

// RoleRequired admits only callers with role; everyone else logged in is
// redirected to deniedTo with a notice.
func RoleRequired(role models.Role, deniedTo string) Access {
	return Access{login: true, role: role, deniedTo: deniedTo}
}

type Deps struct {
	Store         *repositories.Store
	Sessions      *auth.SessionManager
	Responder     *view.Responder
	Images        *repositories.ImageStore // nil when uploads are not configured
	Google        *oauth2.Config           // nil when Google sign-in is disabled
	StateKey      string
	SecureCookies bool // cookies set by handlers are HTTPS only
	Log           zerolog.Logger
}

type Handler struct {
	store     *repositories.Store
	sessions  *auth.SessionManager
	responder *view.Responder
	images    *repositories.ImageStore
	google    *oauth2.Config
	stateKey  []byte
	secure    bool
	validate  *validator.Validate
	log       zerolog.Logger

	fetchGoogleUser googleUserFetcher
}

func New(d Deps) *Handler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})

	return &Handler{
		store:           d.Store,
		sessions:        d.Sessions,
		responder:       d.Responder,
		images:          d.Images,
		google:          d.Google,
		stateKey:        []byte(d.StateKey),
		secure:          d.SecureCookies,
		validate:        v,
		log:             d.Log,
		fetchGoogleUser: fetchGoogleUserInfo,
	}
}

// Handle resolves the caller, applies access and hands the result of fn to
// the responder. Denials never reach fn and always degrade to a redirect.
func (h *Handler) Handle(access Access, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := &Request{
			Request:  r,
			Identity: h.sessions.CurrentIdentity(r),
			w:        w,
		}
		h.responder.Respond(w, r, h.gate(access, req, fn))
	}
}

func (h *Handler) gate(access Access, req *Request, fn HandlerFunc) view.Result {
	var err error
	switch {
	case access.role != "":
		_, err = auth.RequireRole(req.Identity, access.role)
	case access.login:
		_, err = auth.RequireLogin(req.Identity)
	}

	switch err {
	case nil:
		return fn(req)
	case auth.ErrLoginRequired:
		return view.RedirectTo("/login", view.StatusError, "Please log in to access this page.")
	default:
		return view.RedirectTo(access.deniedTo, view.StatusError,
			fmt.Sprintf("Only %ss can access this page.", access.role))
	}
}

// internalError logs err and returns the generic 500 result.
func (h *Handler) internalError(req *Request, msg string, err error) view.Result {
	h.log.Error().Err(err).Str("path", req.URL.Path).Msg(msg)
	return view.ServerError()
}
