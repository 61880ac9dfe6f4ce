package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
)

// DecodeRequestFunc turns an incoming HTTP request into the endpoint
// request object.
type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

// EncodeResponseFunc writes the endpoint response to the client.
type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// MakeHandlerFunc bridges a go-kit endpoint into a chi handler. Decode
// and endpoint errors both flow through the shared error encoder.
func MakeHandlerFunc(e endpoint.Endpoint, dec DecodeRequestFunc, enc EncodeResponseFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		request, err := dec(ctx, r)
		if err != nil {
			ErrorResponse(ctx, err, w)

			return
		}

		response, err := e(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, w)

			return
		}

		if err := enc(ctx, w, response); err != nil {
			ErrorResponse(ctx, err, w)
		}
	}
}
