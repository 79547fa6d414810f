package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRequest(values url.Values) *Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return &Request{Request: r}
}

func TestParseListingFilters(t *testing.T) {
	q := url.Values{
		"search":     {"  solar "},
		"sector":     {"energy"},
		"min_amount": {"20"},
		"max_amount": {"abc"},
	}
	f := parseListingFilters(q)

	assert.Equal(t, "solar", f.Search)
	assert.Equal(t, "energy", f.Sector)
	require.NotNil(t, f.MinAmount)
	assert.Equal(t, 20.0, *f.MinAmount)
	assert.Nil(t, f.MaxAmount, "unparsable bounds are ignored")

	assert.Nil(t, parseAmount("NaN"))
	assert.Nil(t, parseAmount("Inf"))
	assert.Nil(t, parseAmount(""))
}

func TestParseProjectForm_AmountAlias(t *testing.T) {
	f := parseProjectForm(postRequest(url.Values{
		"title":           {" Solar "},
		"description":     {"panels"},
		"required_amount": {"150.5"},
	}))
	assert.Equal(t, "Solar", f.Title)
	assert.Equal(t, 150.5, f.TargetAmount)

	f = parseProjectForm(postRequest(url.Values{"target_amount": {"10"}, "required_amount": {"99"}}))
	assert.Equal(t, 10.0, f.TargetAmount)
}

func TestValidateProject(t *testing.T) {
	h := New(Deps{})
	valid := projectForm{Title: "t", Description: "d", TargetAmount: 10}

	tests := []struct {
		name string
		mod  func(f *projectForm)
		want string
	}{
		{"valid", func(f *projectForm) {}, ""},
		{"missing title", func(f *projectForm) { f.Title = "" }, "Title and description are required."},
		{"missing description", func(f *projectForm) { f.Description = "" }, "Title and description are required."},
		{"zero amount", func(f *projectForm) { f.TargetAmount = 0 }, "Target amount must be a positive number."},
		{"negative amount", func(f *projectForm) { f.TargetAmount = -1 }, "Target amount must be a positive number."},
		{"bad image url", func(f *projectForm) { f.ImageURL = "not a url" }, "Image URL must be a valid URL."},
		{"good image url", func(f *projectForm) { f.ImageURL = "https://cdn.example.com/a.png" }, ""},
		{"long title", func(f *projectForm) { f.Title = strings.Repeat("x", 121) }, "Title is too long."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mod(&f)
			assert.Equal(t, tt.want, h.validateProject(f))
		})
	}
}

func TestValidateRegister(t *testing.T) {
	h := New(Deps{})
	valid := registerForm{Username: "alice", Email: "alice@x.com", Password: "pw123", Role: "student"}

	tests := []struct {
		name string
		mod  func(f *registerForm)
		want string
	}{
		{"valid", func(f *registerForm) {}, ""},
		{"missing username", func(f *registerForm) { f.Username = "" }, "Username is required."},
		{"missing email", func(f *registerForm) { f.Email = "" }, "Email is required."},
		{"bad email", func(f *registerForm) { f.Email = "alice" }, "Email must be a valid email address."},
		{"missing password", func(f *registerForm) { f.Password = "" }, "Password is required."},
		{"long password", func(f *registerForm) { f.Password = strings.Repeat("p", 73) }, "Password is too long."},
		{"missing role", func(f *registerForm) { f.Role = "" }, "Role is required."},
		{"unknown role", func(f *registerForm) { f.Role = "admin" }, "Role must be one of: student, investor."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.mod(&f)
			assert.Equal(t, tt.want, h.validateRegister(f))
		})
	}
}

func TestParseRegisterForm_Normalizes(t *testing.T) {
	f := parseRegisterForm(postRequest(url.Values{
		"username": {" alice "},
		"email":    {" Alice@X.com "},
		"password": {" pw "},
		"role":     {"Student"},
	}))
	assert.Equal(t, "alice", f.Username)
	assert.Equal(t, "alice@x.com", f.Email)
	assert.Equal(t, " pw ", f.Password, "passwords are taken verbatim")
	assert.Equal(t, "student", f.Role)
}
