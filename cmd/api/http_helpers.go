package main

import (
	"log/slog"
	"movies/proj/internal/config"
	"movies/proj/internal/lib/validator"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Http struct {
	log *slog.Logger
	cfg *config.Config
}

type envelop map[string]any

func processMsg(status int, msg string) string {
	if msg == "" {
		msg = http.StatusText(status)
	}
	return msg
}

func (h *Http) setupLogPerReq(r *http.Request) *slog.Logger {
	return h.log.With(
		"request_id",
		middleware.GetReqID(r.Context()),
		"method",
		r.Method,
		"path",
		r.URL.Path,
	)
}

func (h *Http) Response(w http.ResponseWriter, r *http.Request, data any, status int) {
	render.Status(r, status)
	render.JSON(w, r, data)
}

func (h *Http) Ok(w http.ResponseWriter, r *http.Request, data any) {
	h.Response(w, r, data, http.StatusOK)
}

func (h *Http) Created(w http.ResponseWriter, r *http.Request, data any) {
	h.Response(w, r, data, http.StatusCreated)
}

func (h *Http) Message(w http.ResponseWriter, r *http.Request, msg string, status int) {
	h.Response(w, r, envelop{"message": processMsg(status, msg)}, status)
}

func (h *Http) BadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	h.Response(w, r, envelop{"error": processMsg(http.StatusBadRequest, msg)}, http.StatusBadRequest)
}

func (h *Http) ValidationFailed(w http.ResponseWriter, r *http.Request, errs validator.FieldErrors) {
	h.setupLogPerReq(r).Debug("validation failed", "errors", errs)
	h.Response(w, r, envelop{"error": errs}, http.StatusBadRequest)
}

func (h *Http) NotFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.Message(w, r, msg, http.StatusNotFound)
}

func (h *Http) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.Message(w, r, "", http.StatusMethodNotAllowed)
}

func (h *Http) ServerError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := http.StatusInternalServerError
	defaultErrMsg := "Sorry! Can't process your request. Please try again later."
	log := h.setupLogPerReq(r)
	if err != nil {
		log.Error(err.Error())
	}
	render.Status(r, status)
	if msg == "" {
		msg = defaultErrMsg
	}
	if h.cfg.Debug && err != nil {
		msg = err.Error() + "\n" + string(debug.Stack())
		w.WriteHeader(status)
		w.Write([]byte(msg))
		return
	}
	render.JSON(w, r, envelop{"message": msg})
}
