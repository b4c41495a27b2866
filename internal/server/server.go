// Package server exposes the projection engine as a small JSON API so
// other frontends can consume the same calculation.
package server

import (
	"errors"
	"log"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/prajeet74/fire-calculator/internal/engine"
	"github.com/prajeet74/fire-calculator/internal/model"
)

// ProjectionResponse bundles everything a presentation layer needs:
// the expense aggregate, the full series, and the headline metrics.
type ProjectionResponse struct {
	Aggregate  model.AggregateExpense `json:"aggregate"`
	Projection model.ProjectionResult `json:"projection"`
	Metrics    model.KeyMetrics       `json:"metrics"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// ListenAndServe starts the API server on addr.
func ListenAndServe(addr string) error {
	log.Printf("fire-calculator API listening on %s", addr)
	return fasthttp.ListenAndServe(addr, Handler)
}

// Handler routes API requests.
func Handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/v1/projection":
		handleProjection(ctx)
	case "/healthz":
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "", "not found")
	}
}

func handleProjection(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "", "method not allowed, use POST")
		return
	}

	var plan model.Plan
	if err := json.Unmarshal(ctx.PostBody(), &plan); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "", "invalid request body: "+err.Error())
		return
	}

	result, err := engine.Project(plan)
	if err != nil {
		var ipe *engine.InvalidParameterError
		if errors.As(err, &ipe) {
			writeError(ctx, fasthttp.StatusBadRequest, ipe.Field, ipe.Reason)
			return
		}
		writeError(ctx, fasthttp.StatusInternalServerError, "", err.Error())
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, ProjectionResponse{
		Aggregate:  engine.Aggregate(engine.Categories(plan)),
		Projection: result,
		Metrics:    engine.Metrics(plan, result),
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, field, message string) {
	writeJSON(ctx, status, ErrorResponse{
		Status:  status,
		Message: message,
		Field:   field,
	})
}
