package main

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/CamJeff/COMP-321-Problem-Development/format"
	"github.com/CamJeff/COMP-321-Problem-Development/search"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type solveResponse struct {
	Run    string `json:"run"`
	Found  bool   `json:"found"`
	IDs    []int  `json:"ids"`
	Output string `json:"output"`
}

type handler struct {
	log *zap.Logger
}

func newHandler(log *zap.Logger) *handler {
	if log == nil {
		log = zap.NewNop()
	}

	return &handler{log: log}
}

func (h *handler) handle(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	run := uuid.NewString()
	log := h.log.With(zap.String("run", run))

	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, run, "invalid base64 body")
		}
		body = string(decoded)
	}

	inst, err := format.ReadJSON([]byte(body))
	if err != nil {
		log.Info("rejected instance", zap.Error(err))
		return errResp(400, run, err.Error())
	}

	opts := []search.Option{search.WithLogger(log)}
	if v := gjson.Get(body, "maxCount"); v.Exists() {
		n := v.Int()
		if v.Type != gjson.Number || float64(n) != v.Num || n < 0 {
			return errResp(400, run, "maxCount must be a non-negative integer")
		}
		opts = append(opts, search.WithMaxCount(int(n)))
	}
	if v := gjson.Get(body, "dominance"); v.Exists() {
		d, err := search.ParseDominance(v.String())
		if err != nil {
			return errResp(400, run, err.Error())
		}
		opts = append(opts, search.WithDominance(d))
	}

	res, err := search.Search(inst.Target, inst.Problems, inst.Topics, opts...)
	if err != nil {
		return errResp(400, run, err.Error())
	}
	log.Info("solved",
		zap.Int("problems", len(inst.Problems)),
		zap.Bool("found", res.Found),
		zap.Int("popped", res.Stats.Popped),
	)

	ids := res.IDs
	if ids == nil {
		ids = []int{}
	}
	out, _ := json.Marshal(solveResponse{
		Run:    run,
		Found:  res.Found,
		IDs:    ids,
		Output: format.Answer(res, format.DefaultSentinel),
	})

	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(out)}, nil
}

func errResp(code int, run, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"run": run, "error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
