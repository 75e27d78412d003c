package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/baditaflorin/go_word_similarity/internal/adapters/sink"
	"github.com/baditaflorin/go_word_similarity/internal/ports"
	"github.com/baditaflorin/go_word_similarity/pkg/wordsim"
	"github.com/valyala/fasthttp"
)

const requestTimeout = 30 * time.Second

// PairRequest is the body of the single-pair endpoints.
type PairRequest struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// BatchRequest is the body of /batch. Each entry must hold exactly two words.
type BatchRequest struct {
	Pairs [][]string `json:"pairs"`
}

// LevenshteinResponse is returned by /levenshtein.
type LevenshteinResponse struct {
	First       string  `json:"first"`
	Second      string  `json:"second"`
	RawDistance int     `json:"raw_distance"`
	NormLevDist float64 `json:"normlevdist"`
}

// VanOrdenResponse is returned by /vanorden.
type VanOrdenResponse struct {
	First    string           `json:"first"`
	Second   string           `json:"second"`
	RawScore float64          `json:"raw_score"`
	OS       float64          `json:"os"`
	Features wordsim.Features `json:"features"`
}

// BatchItem is one entry of a /batch response: a score or an error.
type BatchItem struct {
	Index  int          `json:"index"`
	Word1  string       `json:"word1"`
	Word2  string       `json:"word2"`
	Result *sink.Record `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

// BatchResponse lists results in request order.
type BatchResponse struct {
	Results []BatchItem `json:"results"`
	Failed  int         `json:"failed"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type api struct {
	scorer        *wordsim.Scorer
	logger        ports.Logger
	maxBatchPairs int
}

func newAPI(scorer *wordsim.Scorer, logger ports.Logger, maxBatchPairs int) *api {
	return &api{scorer: scorer, logger: logger, maxBatchPairs: maxBatchPairs}
}

// requestHandler is the main fasthttp request handler
func (a *api) requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	// Set common headers
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "WordSimilarityServer")

	switch string(ctx.Path()) {
	case "/health":
		a.handleHealthCheck(ctx)
	case "/levenshtein":
		a.handleLevenshtein(ctx)
	case "/vanorden":
		a.handleVanOrden(ctx)
	case "/score":
		a.handleScore(ctx)
	case "/batch":
		a.handleBatch(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		a.writeJSONError(ctx, "Not found")
	}

	a.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

func (a *api) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (a *api) handleLevenshtein(ctx *fasthttp.RequestCtx) {
	req, ok := a.decodePair(ctx)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := a.scorer.EditDistance(c, req.First, req.Second)
	if err != nil {
		a.writeScoringError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, LevenshteinResponse{
		First:       req.First,
		Second:      req.Second,
		RawDistance: res.RawDistance,
		NormLevDist: res.NormalizedSimilarity,
	})
}

func (a *api) handleVanOrden(ctx *fasthttp.RequestCtx) {
	req, ok := a.decodePair(ctx)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := a.scorer.Orthographic(c, req.First, req.Second)
	if err != nil {
		a.writeScoringError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, VanOrdenResponse{
		First:    req.First,
		Second:   req.Second,
		RawScore: res.RawScore,
		OS:       res.NormalizedScore,
		Features: res.Features,
	})
}

func (a *api) handleScore(ctx *fasthttp.RequestCtx) {
	req, ok := a.decodePair(ctx)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	score, err := a.scorer.Score(c, req.First, req.Second)
	if err != nil {
		a.writeScoringError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, sink.NewRecord(score))
}

func (a *api) handleBatch(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		a.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req BatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}
	if a.maxBatchPairs > 0 && len(req.Pairs) > a.maxBatchPairs {
		ctx.SetStatusCode(fasthttp.StatusRequestEntityTooLarge)
		a.writeJSONError(ctx, fmt.Sprintf("Too many pairs: %d (limit %d)", len(req.Pairs), a.maxBatchPairs))
		return
	}

	pairs := make([]wordsim.WordPair, 0, len(req.Pairs))
	for i, p := range req.Pairs {
		if len(p) != 2 {
			ctx.SetStatusCode(fasthttp.StatusBadRequest)
			a.writeJSONError(ctx, fmt.Sprintf("Pair %d has %d words, expected 2", i, len(p)))
			return
		}
		pairs = append(pairs, wordsim.NewWordPair(p[0], p[1]))
	}

	c, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp := BatchResponse{Results: make([]BatchItem, 0, len(pairs))}
	for score, err := range a.scorer.ScoreAll(c, slices.Values(pairs)) {
		item := BatchItem{
			Index: score.Index,
			Word1: string(score.Pair.First),
			Word2: string(score.Pair.Second),
		}
		if err != nil {
			if !errors.Is(err, wordsim.ErrInvalidInput) {
				ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
				a.writeJSONError(ctx, "Scoring interrupted: "+err.Error())
				return
			}
			item.Error = err.Error()
			resp.Failed++
		} else {
			record := sink.NewRecord(score)
			item.Result = &record
		}
		resp.Results = append(resp.Results, item)
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	a.writeJSONResponse(ctx, resp)
}

// decodePair parses a PairRequest and writes the error response itself when
// it returns false.
func (a *api) decodePair(ctx *fasthttp.RequestCtx) (PairRequest, bool) {
	var req PairRequest
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		a.writeJSONError(ctx, "Method not allowed")
		return req, false
	}
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		a.writeJSONError(ctx, "Invalid request: "+err.Error())
		return req, false
	}
	return req, true
}

func (a *api) writeScoringError(ctx *fasthttp.RequestCtx, err error) {
	if errors.Is(err, wordsim.ErrInvalidInput) {
		ctx.SetStatusCode(fasthttp.StatusUnprocessableEntity)
	} else {
		ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
	}
	a.writeJSONError(ctx, err.Error())
}

// writeJSONResponse writes a JSON response to the context
func (a *api) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		a.logger.Error("Error marshaling JSON response", "error", err)
		a.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (a *api) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		a.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}
