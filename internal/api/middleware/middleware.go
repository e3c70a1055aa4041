// Package middleware holds the container filters and the error envelope
// shared by every route.
package middleware

import (
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError writes err as an ErrorResponse with the given status code.
func HandleError(resp *restful.Response, err error, status int) {
	resp.WriteHeaderAndEntity(status, ErrorResponse{Error: err.Error()})
}

// Logger tags each request with an ID and logs method, path, status and
// duration once the chain completes. The ID is echoed in X-Request-Id.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	now := time.Now()

	requestID := req.HeaderParameter("X-Request-Id")
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.SetAttribute("request_id", requestID)
	resp.AddHeader("X-Request-Id", requestID)

	chain.ProcessFilter(req, resp)

	log.Info().
		Str("request_id", requestID).
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(now)).
		Msg("request completed")
}

// RecoverPanic turns a handler panic into a 500 response instead of
// tearing down the server.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Msg("handler panicked")
			resp.WriteHeaderAndEntity(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		}
	}()

	chain.ProcessFilter(req, resp)
}
