package main

import (
	"encoding/json"
	"testing"

	"github.com/baditaflorin/go_word_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_word_similarity/pkg/wordsim"
	"github.com/valyala/fasthttp"
)

func newTestAPI(t *testing.T, maxBatchPairs int) *api {
	t.Helper()
	scorer, err := wordsim.New(wordsim.WithQuietLogger(), wordsim.WithWorkers(2))
	if err != nil {
		t.Fatalf("wordsim.New() error = %v", err)
	}
	return newAPI(scorer, logger.Nop{}, maxBatchPairs)
}

func perform(a *api, method, path, body string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	req.SetBodyString(body)

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	a.requestHandler(ctx)
	return ctx
}

func TestHandlerStatusCodes(t *testing.T) {
	a := newTestAPI(t, 2)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"health", fasthttp.MethodGet, "/health", "", fasthttp.StatusOK},
		{"unknown path", fasthttp.MethodGet, "/nope", "", fasthttp.StatusNotFound},
		{"levenshtein", fasthttp.MethodPost, "/levenshtein", `{"first":"cat","second":"cot"}`, fasthttp.StatusOK},
		{"levenshtein get", fasthttp.MethodGet, "/levenshtein", "", fasthttp.StatusMethodNotAllowed},
		{"levenshtein both empty", fasthttp.MethodPost, "/levenshtein", `{"first":"","second":""}`, fasthttp.StatusUnprocessableEntity},
		{"levenshtein one empty", fasthttp.MethodPost, "/levenshtein", `{"first":"","second":"cat"}`, fasthttp.StatusOK},
		{"vanorden empty", fasthttp.MethodPost, "/vanorden", `{"first":"","second":"cat"}`, fasthttp.StatusUnprocessableEntity},
		{"score bad json", fasthttp.MethodPost, "/score", `{"first":`, fasthttp.StatusBadRequest},
		{"batch too many", fasthttp.MethodPost, "/batch", `{"pairs":[["a","b"],["c","d"],["e","f"]]}`, fasthttp.StatusRequestEntityTooLarge},
		{"batch bad arity", fasthttp.MethodPost, "/batch", `{"pairs":[["a","b","c"]]}`, fasthttp.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := perform(a, tc.method, tc.path, tc.body)
			if got := ctx.Response.StatusCode(); got != tc.want {
				t.Errorf("status = %d, want %d (body %s)", got, tc.want, ctx.Response.Body())
			}
		})
	}
}

func TestHandleVanOrden(t *testing.T) {
	a := newTestAPI(t, 0)

	ctx := perform(a, fasthttp.MethodPost, "/vanorden", `{"first":"cot","second":"cot"}`)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}

	var resp VanOrdenResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.OS != 1.0 {
		t.Errorf("os = %v, want 1", resp.OS)
	}
	if resp.Features.B != 1 || resp.Features.E != 1 {
		t.Errorf("features = %+v, want B=E=1", resp.Features)
	}
}

func TestHandleBatch(t *testing.T) {
	a := newTestAPI(t, 0)

	body := `{"pairs":[["cat","cot"],["","dog"],["house","mouse"]]}`
	ctx := perform(a, fasthttp.MethodPost, "/batch", body)
	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("status = %d (body %s)", ctx.Response.StatusCode(), ctx.Response.Body())
	}

	var resp BatchResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(resp.Results))
	}
	if resp.Failed != 1 {
		t.Errorf("failed = %d, want 1", resp.Failed)
	}
	for i, item := range resp.Results {
		if item.Index != i {
			t.Errorf("result %d has index %d", i, item.Index)
		}
	}
	if resp.Results[1].Error == "" || resp.Results[1].Result != nil {
		t.Errorf("second pair should carry only an error: %+v", resp.Results[1])
	}
	if resp.Results[2].Result == nil || resp.Results[2].Result.RawDistance != 1 {
		t.Errorf("third pair = %+v, want raw distance 1", resp.Results[2].Result)
	}
}
