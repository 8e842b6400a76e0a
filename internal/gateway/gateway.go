package gateway

import (
	"context"
	"net/http"

	"resty.dev/v3"
)

// Gateway is the client for the remote pharmacy API. It is the only
// component that talks to the network; everything above it works on
// the payloads it returns. No retries: a failed call is terminal until
// the admin triggers the action again.
type Gateway struct {
	client *resty.Client
}

func New(client *resty.Client, baseURL string) *Gateway {
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")

	return &Gateway{client: client}
}

// get performs a read request and decodes the response into out.
// Failures are reported as FetchFailed regardless of status code.
func (g *Gateway) get(ctx context.Context, op, path string, out any) error {
	req := g.client.R().SetContext(ctx)
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Get(path)
	if err != nil {
		return &Error{Kind: FetchFailed, Op: op, Err: err}
	}
	if resp.IsError() {
		return &Error{Kind: FetchFailed, Op: op, Status: resp.StatusCode(), Message: resp.String()}
	}

	return nil
}

// write performs a mutating request. A 4xx response means the server
// understood and refused the request (ValidationRejected); anything
// else that fails is MutationFailed.
func (g *Gateway) write(ctx context.Context, op, method, path string, body any) error {
	req := g.client.R().SetContext(ctx)
	if body != nil {
		req.SetContentType("application/json")
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return &Error{Kind: MutationFailed, Op: op, Err: err}
	}
	if resp.IsError() {
		kind := MutationFailed
		if resp.StatusCode() >= http.StatusBadRequest && resp.StatusCode() < http.StatusInternalServerError {
			kind = ValidationRejected
		}
		return &Error{Kind: kind, Op: op, Status: resp.StatusCode(), Message: resp.String()}
	}

	return nil
}
