package cli

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/ghinfo/pkg/apperrors"
	"github.com/matzehuels/ghinfo/pkg/ghrepo"
)

func TestParseRepoRefs(t *testing.T) {
	refs, err := parseRepoRefs([]string{"rust-lang/rust", "golang/go"})
	if err != nil {
		t.Fatalf("parseRepoRefs failed: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("got %d refs, want 2", len(refs))
	}
	if refs[0].Owner != "rust-lang" || refs[0].Repo != "rust" {
		t.Errorf("refs[0] = %+v", refs[0])
	}
	if refs[1].String() != "golang/go" {
		t.Errorf("refs[1].String() = %q", refs[1].String())
	}
}

func TestParseRepoRefsInvalid(t *testing.T) {
	_, err := parseRepoRefs([]string{"rust-lang/rust", "not-a-ref"})
	if err == nil {
		t.Fatal("parseRepoRefs should fail")
	}
	if !apperrors.Is(err, apperrors.ErrCodeInvalidRepoRef) {
		t.Errorf("error code = %q, want %q", apperrors.GetCode(err), apperrors.ErrCodeInvalidRepoRef)
	}
}

func TestMapFetchError(t *testing.T) {
	ref := repoRef{Owner: "foo", Repo: "bar"}

	tests := []struct {
		name     string
		err      error
		wantCode apperrors.Code
	}{
		{
			name:     "404 becomes not found",
			err:      &ghrepo.StatusError{Code: http.StatusNotFound},
			wantCode: apperrors.ErrCodeNotFound,
		},
		{
			name:     "other status becomes upstream status",
			err:      &ghrepo.StatusError{Code: http.StatusForbidden},
			wantCode: apperrors.ErrCodeUpstreamStatus,
		},
		{
			name:     "request error becomes network",
			err:      &ghrepo.RequestError{Cause: errors.New("dial tcp: refused")},
			wantCode: apperrors.ErrCodeNetwork,
		},
		{
			name:     "decode error becomes decode",
			err:      &ghrepo.DecodeError{Cause: errors.New("missing field")},
			wantCode: apperrors.ErrCodeDecode,
		},
		{
			name:     "anything else becomes internal",
			err:      errors.New("surprise"),
			wantCode: apperrors.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapFetchError(ref, tt.err)
			if code := apperrors.GetCode(mapped); code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}

func TestFetchOptionsPrecedence(t *testing.T) {
	c := &CLI{Config: DefaultConfig()}

	// Library defaults: no options needed.
	if opts := c.fetchOptions(0); len(opts) != 0 {
		t.Errorf("default config produced %d options, want 0", len(opts))
	}

	c.Config.APIBaseURL = "https://github.example.com/api/v3"
	c.Config.UserAgent = "custom-agent"
	c.Config.TimeoutSeconds = 9

	// Config only: base URL + user agent + timeout.
	if opts := c.fetchOptions(0); len(opts) != 3 {
		t.Errorf("got %d options, want 3", len(opts))
	}

	// Flag timeout still yields 3 options (flag replaces config timeout).
	if opts := c.fetchOptions(2 * time.Second); len(opts) != 3 {
		t.Errorf("got %d options, want 3", len(opts))
	}
}

func TestFetchAllKeepsArgumentOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/a/one":
			w.Write([]byte(repoBody(t, "a/one")))
		case "/repos/b/two":
			// Slower response must not reorder results.
			time.Sleep(30 * time.Millisecond)
			w.Write([]byte(repoBody(t, "b/two")))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	refs := []repoRef{
		{Owner: "b", Repo: "two"},
		{Owner: "a", Repo: "one"},
		{Owner: "c", Repo: "missing"},
	}
	results := fetchAll(context.Background(), refs, []ghrepo.Option{ghrepo.WithBaseURL(server.URL)})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].Err != nil || results[0].Info.FullName != "b/two" {
		t.Errorf("results[0] = %+v", results[0])
	}
	if results[1].Err != nil || results[1].Info.FullName != "a/one" {
		t.Errorf("results[1] = %+v", results[1])
	}

	var statusErr *ghrepo.StatusError
	if !errors.As(results[2].Err, &statusErr) || statusErr.Code != http.StatusNotFound {
		t.Errorf("results[2].Err = %v, want 404 StatusError", results[2].Err)
	}
}
