package ghrepo

import (
	"context"
	"net/http"
	"time"

	"github.com/matzehuels/ghinfo/pkg/observability"
)

const (
	// defaultUserAgent identifies this library to the GitHub API, which
	// rejects requests without a User-Agent header.
	defaultUserAgent = "ghinfo"

	defaultTimeout = 30 * time.Second

	acceptHeader = "application/vnd.github.v3+json"
)

// Option configures a single Fetch or FetchBlocking call.
type Option func(*options)

type options struct {
	baseURL   string
	userAgent string
	timeout   time.Duration
	client    *http.Client
}

// WithBaseURL overrides the API root (default [DefaultBaseURL]).
// Useful for tests and GitHub Enterprise installations.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithUserAgent overrides the User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// WithTimeout sets the transport timeout for the per-call HTTP client.
// It has no effect when [WithHTTPClient] is also given.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithHTTPClient makes the call use the given client instead of building
// a fresh one. This is the injection point for callers that need custom
// transport behavior (authenticated round-trippers, proxies, recorded
// transports in tests); the package itself never handles credentials.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.client = c }
}

func newOptions(opts []Option) options {
	o := options{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) httpClient() *http.Client {
	if o.client != nil {
		return o.client
	}
	// Fresh client per call: no state shared between invocations.
	return &http.Client{Timeout: o.timeout}
}

// Fetch retrieves metadata for owner/repo from the GitHub API.
//
// It issues exactly one HTTP GET. Cancelling ctx while the request is in
// flight abandons it and returns a [RequestError] wrapping ctx.Err().
// A non-2xx response returns a [StatusError] without reading the body;
// a body that does not match the schema returns a [DecodeError].
func Fetch(ctx context.Context, owner, repo string, opts ...Option) (*RepoInfo, error) {
	o := newOptions(opts)
	url := repoURL(o.baseURL, owner, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &RequestError{Cause: err}
	}
	req.Header.Set("User-Agent", o.userAgent)
	req.Header.Set("Accept", acceptHeader)

	host, path := req.URL.Host, req.URL.Path
	observability.HTTP().OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := o.httpClient().Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, host, path, err)
		return nil, &RequestError{Cause: err}
	}
	defer resp.Body.Close()

	observability.HTTP().OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	return decodeRepoInfo(resp.Body)
}

// FetchBlocking retrieves metadata for owner/repo without a context.
// It is a thin wrapper over [Fetch] with context.Background(): same URL
// construction, same decode, same error mapping. Intended for callers
// that have no cancellation to propagate.
func FetchBlocking(owner, repo string, opts ...Option) (*RepoInfo, error) {
	return Fetch(context.Background(), owner, repo, opts...)
}
