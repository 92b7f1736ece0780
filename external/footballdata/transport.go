package footballdata

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	TransportNetHTTP  = "nethttp"
	TransportFastHTTP = "fasthttp"

	maxResponseBytes = 6 << 20
)

var errBodyTooLarge = crerr.New("response body exceeds limit")

// Response is the raw result of one upstream GET.
type Response struct {
	StatusCode int
	Body       []byte
}

// Transport performs a single GET. Implementations must honour ctx cancellation
// and return the whole body up to maxResponseBytes.
type Transport interface {
	Get(ctx context.Context, rawURL string, headers map[string]string) (Response, error)
}

type netHTTPTransport struct {
	client *http.Client
}

// NewNetHTTPTransport wraps client with otelhttp so upstream calls show up as child spans.
func NewNetHTTPTransport(client *http.Client, timeout time.Duration) Transport {
	traced := &http.Client{}
	if client != nil {
		*traced = *client
	}
	if traced.Timeout <= 0 {
		traced.Timeout = timeout
	}
	base := traced.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	traced.Transport = otelhttp.NewTransport(base)
	return &netHTTPTransport{client: traced}
}

func (t *netHTTPTransport) Get(ctx context.Context, rawURL string, headers map[string]string) (Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Response{}, crerr.Wrap(err, "build request")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return Response{}, crerr.Wrap(err, "read response body")
	}
	if len(raw) > maxResponseBytes {
		return Response{}, errBodyTooLarge
	}
	return Response{StatusCode: resp.StatusCode, Body: raw}, nil
}

type fastHTTPTransport struct {
	client  *fasthttp.Client
	timeout time.Duration
}

// NewFastHTTPTransport uses a pooled fasthttp client. fasthttp has no context
// support, so the effective timeout is the earlier of timeout and ctx's deadline.
func NewFastHTTPTransport(timeout time.Duration) Transport {
	return &fastHTTPTransport{
		client: &fasthttp.Client{
			Name:                "football-pulse",
			MaxResponseBodySize: maxResponseBytes,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
		},
		timeout: timeout,
	}
}

func (t *fastHTTPTransport) Get(ctx context.Context, rawURL string, headers map[string]string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	timeout := t.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return Response{}, context.DeadlineExceeded
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	if err := t.client.DoTimeout(req, resp, timeout); err != nil {
		if stderrors.Is(err, fasthttp.ErrBodyTooLarge) {
			return Response{}, errBodyTooLarge
		}
		return Response{}, err
	}

	// resp is returned to the pool on exit, so the body must be copied.
	body := append([]byte(nil), resp.Body()...)
	return Response{StatusCode: resp.StatusCode(), Body: body}, nil
}
