package httpx

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/thomashuynhqn/Survey-API/log"
)

// Every route answers in the same envelope so clients can switch on
// statusText without sniffing body shapes. Field names are part of the
// client contract and must not change.

type successEnvelope struct {
	Status     int               `json:"status"`
	StatusText string            `json:"statusText"`
	Data       any               `json:"data"`
	Headers    map[string]string `json:"headers"`
}

type errorEnvelope struct {
	Status     int    `json:"status"`
	StatusText string `json:"statusText"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
}

func OK(w http.ResponseWriter, r *http.Request, data any) {
	Success(w, r, http.StatusOK, "OK", data)
}

func Success(w http.ResponseWriter, r *http.Request, status int, statusText string, data any) {
	render.Status(r, status)
	render.JSON(w, r, successEnvelope{status, statusText, data, map[string]string{}})
}

func Error(w http.ResponseWriter, r *http.Request, status int, statusText, errMsg, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorEnvelope{status, statusText, errMsg, message})
}

// BadRequest logs an error code at debug level and answers 400.
func BadRequest(w http.ResponseWriter, r *http.Request, code, errMsg string) {
	log.Debugf("%s: %s", code, errMsg)
	Error(w, r, http.StatusBadRequest, "Bad Request", errMsg, "")
}

// NotFound logs an error code at debug level and answers 404.
func NotFound(w http.ResponseWriter, r *http.Request, code, errMsg, message string) {
	log.Debugf("%s: not found", code)
	Error(w, r, http.StatusNotFound, "Not Found", errMsg, message)
}

// Unauthorized logs an error code at debug level and answers 401.
func Unauthorized(w http.ResponseWriter, r *http.Request, code, errMsg string) {
	log.Debugf("%s: %s", code, errMsg)
	Error(w, r, http.StatusUnauthorized, "Unauthorized", errMsg, "")
}

// InternalError logs the underlying error and answers 500. When errMsg is
// empty the error's own text goes out in the envelope.
func InternalError(w http.ResponseWriter, r *http.Request, code string, err error, errMsg string) {
	log.Errorf("%s: %s", code, err)
	if errMsg == "" {
		errMsg = err.Error()
	}
	Error(w, r, http.StatusInternalServerError, "Internal Server Error", errMsg, "")
}
