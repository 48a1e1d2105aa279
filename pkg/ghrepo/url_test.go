package ghrepo

import (
	"strings"
	"testing"
)

func TestAPIURL(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		repo  string
		want  string
	}{
		{
			name:  "plain identifiers",
			owner: "rust-lang",
			repo:  "rust",
			want:  "https://api.github.com/repos/rust-lang/rust",
		},
		{
			name:  "unreserved characters pass through",
			owner: "a-b_c.d~e",
			repo:  "Repo.Name-1",
			want:  "https://api.github.com/repos/a-b_c.d~e/Repo.Name-1",
		},
		{
			name:  "slash cannot inject a path segment",
			owner: "evil/owner",
			repo:  "repo",
			want:  "https://api.github.com/repos/evil%2Fowner/repo",
		},
		{
			name:  "query and fragment characters are encoded",
			owner: "owner",
			repo:  "repo?x=1#frag",
			want:  "https://api.github.com/repos/owner/repo%3Fx%3D1%23frag",
		},
		{
			name:  "space",
			owner: "an owner",
			repo:  "a repo",
			want:  "https://api.github.com/repos/an%20owner/a%20repo",
		},
		{
			name:  "empty segments",
			owner: "",
			repo:  "",
			want:  "https://api.github.com/repos//",
		},
		{
			name:  "unicode is encoded per octet",
			owner: "ü",
			repo:  "répo",
			want:  "https://api.github.com/repos/%C3%BC/r%C3%A9po",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := APIURL(tt.owner, tt.repo); got != tt.want {
				t.Errorf("APIURL(%q, %q) = %q, want %q", tt.owner, tt.repo, got, tt.want)
			}
		})
	}
}

func TestAPIURLNoUnencodedReservedCharacters(t *testing.T) {
	inputs := []string{"/", "?", "#", " ", "a/b?c#d e", "..", "%2F", "&=+", "\x00"}

	for _, owner := range inputs {
		for _, repo := range inputs {
			u := APIURL(owner, repo)
			suffix := strings.TrimPrefix(u, DefaultBaseURL+"/repos/")
			if suffix == u {
				t.Fatalf("APIURL(%q, %q) = %q, missing expected prefix", owner, repo, u)
			}
			// Exactly one separator between the two encoded segments.
			if got := strings.Count(suffix, "/"); got != 1 {
				t.Errorf("APIURL(%q, %q): path %q has %d slashes, want 1", owner, repo, suffix, got)
			}
			for _, c := range []string{"?", "#", " "} {
				if strings.Contains(suffix, c) {
					t.Errorf("APIURL(%q, %q): path %q contains unencoded %q", owner, repo, suffix, c)
				}
			}
		}
	}
}

func TestAPIURLDeterministic(t *testing.T) {
	a := APIURL("owner?", "repo#")
	b := APIURL("owner?", "repo#")
	if a != b {
		t.Errorf("APIURL not deterministic: %q != %q", a, b)
	}
}
