// Package httpadapter bridges API Gateway proxy records to net/http.
//
// The dispatcher hands HTTP proxy records to a ProxyFunc without parsing
// them. Wrap converts any http.Handler into that ProxyFunc: the proxy
// record is decoded into a request, served in-process, and the captured
// response is re-encoded into the proxy response shape API Gateway
// expects. This lets an ordinary router (net/http mux, chi, echo, and
// friends) sit behind the same Lambda entry point as the typed event
// handlers.
package httpadapter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	awsevents "github.com/aws/aws-lambda-go/events"

	"github.com/bjaus/lambdaroute"
	"github.com/bjaus/lambdaroute/internal/jsoncodec"
)

// Wrap adapts an http.Handler into a ProxyFunc suitable for
// lambdaroute.WithProxy. Each proxy record is served as one in-process
// request; the handler never sees a network connection.
func Wrap(h http.Handler) lambdaroute.ProxyFunc {
	return func(ctx context.Context, record json.RawMessage) (json.RawMessage, error) {
		var proxy awsevents.APIGatewayProxyRequest
		if err := jsoncodec.Unmarshal(record, &proxy); err != nil {
			return nil, fmt.Errorf("httpadapter: decode proxy request: %w", err)
		}

		req, err := newRequest(ctx, &proxy)
		if err != nil {
			return nil, err
		}

		rec := newRecorder()
		h.ServeHTTP(rec, req)

		out, err := jsoncodec.Marshal(awsevents.APIGatewayProxyResponse{
			StatusCode:        rec.status,
			MultiValueHeaders: rec.header,
			Body:              rec.body.String(),
			IsBase64Encoded:   false,
		})
		if err != nil {
			return nil, fmt.Errorf("httpadapter: encode proxy response: %w", err)
		}
		return out, nil
	}
}

// newRequest rebuilds the http.Request a proxy record describes. API
// Gateway may deliver headers and query parameters in single-value or
// multi-value form depending on integration settings; the multi-value
// maps win when present because they are lossless.
func newRequest(ctx context.Context, proxy *awsevents.APIGatewayProxyRequest) (*http.Request, error) {
	body := []byte(proxy.Body)
	if proxy.IsBase64Encoded {
		var err error
		if body, err = base64.StdEncoding.DecodeString(proxy.Body); err != nil {
			return nil, fmt.Errorf("httpadapter: decode base64 body: %w", err)
		}
	}

	u := url.URL{Path: proxy.Path, RawQuery: queryString(proxy)}

	req, err := http.NewRequestWithContext(ctx, proxy.HTTPMethod, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("httpadapter: build request: %w", err)
	}

	if len(proxy.MultiValueHeaders) > 0 {
		for name, vals := range proxy.MultiValueHeaders {
			for _, v := range vals {
				req.Header.Add(name, v)
			}
		}
	} else {
		for name, v := range proxy.Headers {
			req.Header.Set(name, v)
		}
	}

	if host := req.Header.Get("Host"); host != "" {
		req.Host = host
	}
	if id := proxy.RequestContext.RequestID; id != "" && req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", id)
	}
	if ip := proxy.RequestContext.Identity.SourceIP; ip != "" {
		req.RemoteAddr = ip
	}
	return req, nil
}

func queryString(proxy *awsevents.APIGatewayProxyRequest) string {
	vals := url.Values{}
	if len(proxy.MultiValueQueryStringParameters) > 0 {
		for name, vs := range proxy.MultiValueQueryStringParameters {
			for _, v := range vs {
				vals.Add(name, v)
			}
		}
	} else {
		for name, v := range proxy.QueryStringParameters {
			vals.Set(name, v)
		}
	}
	return vals.Encode()
}

// responseRecorder captures the handler's response in memory. It is the
// minimal http.ResponseWriter the adapter needs; the response never
// touches a connection, so flushing and hijacking are not supported.
type responseRecorder struct {
	status      int
	header      http.Header
	body        bytes.Buffer
	wroteHeader bool
}

func newRecorder() *responseRecorder {
	return &responseRecorder{status: http.StatusOK, header: make(http.Header)}
}

func (r *responseRecorder) Header() http.Header { return r.header }

func (r *responseRecorder) WriteHeader(code int) {
	if r.wroteHeader {
		return
	}
	r.status = code
	r.wroteHeader = true
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.body.Write(p)
}
