// Command pickset-lambda serves problem-set selection behind an AWS Lambda
// function URL. The request body is a JSON instance as read by format.ReadJSON,
// optionally carrying "maxCount" and "dominance":
//
//	{"target": "10", "topics": ["dp"], "problems": [...], "maxCount": 12}
//
// The response is {"run", "found", "ids", "output"} where output is the line the
// text tool would print.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	lambda.Start(newHandler(log).handle)
}
