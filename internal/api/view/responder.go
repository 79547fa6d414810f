package view

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rohits-web03/fundbridge/internal/utils"
)

const flashSession = "flash"

func init() {
	gob.Register(Notice{})
}

// Renderer draws a page. The default JSONRenderer emits the view model as
// JSON; a template based renderer can be swapped in without touching handlers.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, res Result, notices []Notice)
}

type Responder struct {
	flashes  sessions.Store
	renderer Renderer
}

func NewResponder(flashes sessions.Store, renderer Renderer) *Responder {
	return &Responder{flashes: flashes, renderer: renderer}
}

// NewFlashStore returns the cookie store used to carry notices across redirects.
func NewFlashStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func (rs *Responder) Respond(w http.ResponseWriter, r *http.Request, res Result) {
	// an undecodable cookie still yields a fresh session
	session, _ := rs.flashes.Get(r, flashSession)

	if res.Redirect != "" {
		if res.Message != "" {
			session.AddFlash(res.Notice())
			_ = session.Save(r, w)
		}
		http.Redirect(w, r, res.Redirect, http.StatusSeeOther)
		return
	}

	var notices []Notice
	for _, f := range session.Flashes() {
		if n, ok := f.(Notice); ok {
			notices = append(notices, n)
		}
	}
	if len(notices) > 0 {
		_ = session.Save(r, w)
	}
	if res.Message != "" {
		notices = append(notices, res.Notice())
	}
	rs.renderer.Render(w, r, res, notices)
}

type JSONRenderer struct{}

func (JSONRenderer) Render(w http.ResponseWriter, _ *http.Request, res Result, notices []Notice) {
	payload := utils.Payload{
		Success: res.Status != StatusError,
		Message: res.Message,
		View:    res.View,
		Data:    res.Data,
	}
	if len(notices) > 0 {
		payload.Notices = notices
	}
	utils.JSONResponse(w, res.StatusCode(), payload)
}
