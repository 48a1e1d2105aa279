package ghrepo

import (
	"strings"
	"testing"
)

func TestValidateOwner(t *testing.T) {
	valid := []string{"a", "rust-lang", "user123", "A1-b2"}
	for _, owner := range valid {
		if err := ValidateOwner(owner); err != nil {
			t.Errorf("ValidateOwner(%q) = %v, want nil", owner, err)
		}
	}

	invalid := []string{"", "-starts-with-hyphen", "has space", "has/slash", strings.Repeat("a", 40)}
	for _, owner := range invalid {
		if err := ValidateOwner(owner); err == nil {
			t.Errorf("ValidateOwner(%q) = nil, want error", owner)
		}
	}
}

func TestValidateRepo(t *testing.T) {
	valid := []string{"rust", "my_repo", "repo.name", "a-b.c_d", strings.Repeat("x", 100)}
	for _, repo := range valid {
		if err := ValidateRepo(repo); err != nil {
			t.Errorf("ValidateRepo(%q) = %v, want nil", repo, err)
		}
	}

	invalid := []string{"", "has space", "has/slash", strings.Repeat("x", 101)}
	for _, repo := range invalid {
		if err := ValidateRepo(repo); err == nil {
			t.Errorf("ValidateRepo(%q) = nil, want error", repo)
		}
	}
}

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		ref       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{ref: "rust-lang/rust", wantOwner: "rust-lang", wantRepo: "rust"},
		{ref: "torvalds/linux", wantOwner: "torvalds", wantRepo: "linux"},
		{ref: "no-slash", wantErr: true},
		{ref: "", wantErr: true},
		{ref: "/repo", wantErr: true},
		{ref: "owner/", wantErr: true},
		{ref: "-bad/repo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			owner, repo, err := ParseRepoRef(tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseRepoRef(%q) = (%q, %q), want error", tt.ref, owner, repo)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRepoRef(%q) failed: %v", tt.ref, err)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("got (%q, %q), want (%q, %q)", owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}
