package handlers

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rohits-web03/fundbridge/internal/auth"
	"github.com/rohits-web03/fundbridge/internal/repositories"
)

type registerForm struct {
	Username string `json:"username" label:"Username" validate:"required,max=80"`
	Email    string `json:"email" label:"Email" validate:"required,email,max=254"`
	Password string `json:"-" label:"Password" validate:"required"`
	Role     string `json:"role" label:"Role" validate:"required,oneof=student investor"`
}

func parseRegisterForm(r *Request) registerForm {
	return registerForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Email:    normalizeEmail(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Role:     strings.ToLower(strings.TrimSpace(r.PostFormValue("role"))),
	}
}

type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}

func parseLoginForm(r *Request) loginForm {
	return loginForm{
		Email:    normalizeEmail(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
}

type projectForm struct {
	Title        string  `json:"title" label:"Title" validate:"required,max=120"`
	Description  string  `json:"description" label:"Description" validate:"required"`
	TargetAmount float64 `json:"targetAmount" label:"Target amount" validate:"gt=0"`
	ImageURL     string  `json:"imageUrl" label:"Image URL" validate:"omitempty,url,max=200"`
	Sector       string  `json:"sector" label:"Sector" validate:"max=80"`
	RawAmount    string  `json:"-" validate:"-"`
}

// parseProjectForm reads the project form. The amount may be posted as
// target_amount or required_amount.
func parseProjectForm(r *Request) projectForm {
	raw := strings.TrimSpace(r.PostFormValue("target_amount"))
	if raw == "" {
		raw = strings.TrimSpace(r.PostFormValue("required_amount"))
	}
	f := projectForm{
		Title:       strings.TrimSpace(r.PostFormValue("title")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
		ImageURL:    strings.TrimSpace(r.PostFormValue("image_url")),
		Sector:      strings.TrimSpace(r.PostFormValue("sector")),
		RawAmount:   raw,
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		f.TargetAmount = v
	}
	return f
}

type messageForm struct {
	Content string `json:"content" label:"Message" validate:"required,max=2000"`
}

// listingFilters echoes the accepted query filters back to the view.
type listingFilters struct {
	Search    string   `json:"search,omitempty"`
	Sector    string   `json:"sector,omitempty"`
	MinAmount *float64 `json:"minAmount,omitempty"`
	MaxAmount *float64 `json:"maxAmount,omitempty"`
}

func (f listingFilters) toFilter() repositories.ProjectFilter {
	return repositories.ProjectFilter{
		Search:    f.Search,
		Sector:    f.Sector,
		MinAmount: f.MinAmount,
		MaxAmount: f.MaxAmount,
	}
}

// parseListingFilters reads search, sector, min_amount and max_amount.
// Amounts that do not parse as finite numbers are ignored.
func parseListingFilters(q url.Values) listingFilters {
	return listingFilters{
		Search:    strings.TrimSpace(q.Get("search")),
		Sector:    strings.TrimSpace(q.Get("sector")),
		MinAmount: parseAmount(q.Get("min_amount")),
		MaxAmount: parseAmount(q.Get("max_amount")),
	}
}

func parseAmount(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (h *Handler) validateRegister(f registerForm) string {
	if err := h.validate.Struct(f); err != nil {
		return validationMessage(err)
	}
	if len(f.Password) > auth.MaxPasswordBytes {
		return "Password is too long."
	}
	return ""
}

func (h *Handler) validateProject(f projectForm) string {
	if f.Title == "" || f.Description == "" {
		return "Title and description are required."
	}
	if !repositories.ValidAmount(f.TargetAmount) {
		return "Target amount must be a positive number."
	}
	if err := h.validate.Struct(f); err != nil {
		return validationMessage(err)
	}
	return ""
}

// validationMessage turns the first validator failure into a sentence for the user.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid input."
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required."
	case "email":
		return fe.Field() + " must be a valid email address."
	case "url":
		return fe.Field() + " must be a valid URL."
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ") + "."
	case "max":
		return fe.Field() + " is too long."
	case "gt":
		return fe.Field() + " must be a positive number."
	default:
		return fe.Field() + " is invalid."
	}
}
