// Package view turns handler results into HTTP responses. Handlers never
// write to the response themselves; they return a Result and the Responder
// decides between a redirect carrying a flash notice and a rendered page.
package view

import "net/http"

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusInfo    Status = "info"
)

// Notice is a one-line message shown to the user on the next rendered page.
type Notice struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

type Result struct {
	Status   Status
	Message  string
	Redirect string // when set, the result is a 303 to this path
	View     string
	Code     int
	Data     any
}

func (r Result) Notice() Notice {
	return Notice{Status: r.Status, Message: r.Message}
}

func (r Result) StatusCode() int {
	if r.Code == 0 {
		return http.StatusOK
	}
	return r.Code
}

// Page renders name with data and no notice of its own.
func Page(name string, data any) Result {
	return Result{View: name, Data: data}
}

// PageWithNotice renders name with data and an informational notice.
func PageWithNotice(name string, data any, status Status, msg string) Result {
	return Result{View: name, Data: data, Status: status, Message: msg}
}

func RedirectTo(path string, status Status, msg string) Result {
	return Result{Redirect: path, Status: status, Message: msg}
}

// Invalid re-renders the form in name with the submitted values and an error.
func Invalid(name string, code int, msg string, data any) Result {
	return Result{View: name, Code: code, Status: StatusError, Message: msg, Data: data}
}

func NotFound(msg string) Result {
	return Result{View: "not_found", Code: http.StatusNotFound, Status: StatusError, Message: msg}
}

func ServerError() Result {
	return Result{View: "error", Code: http.StatusInternalServerError, Status: StatusError, Message: "Something went wrong, please try again."}
}
