package ghrepo_test

import (
	"fmt"

	"github.com/matzehuels/ghinfo/pkg/ghrepo"
)

func ExampleAPIURL() {
	// Identifiers are percent-encoded as single path segments
	fmt.Println(ghrepo.APIURL("rust-lang", "rust"))
	fmt.Println(ghrepo.APIURL("a/b", "c d"))
	// Output:
	// https://api.github.com/repos/rust-lang/rust
	// https://api.github.com/repos/a%2Fb/c%20d
}

func ExampleParseRepoRef() {
	owner, repo, err := ghrepo.ParseRepoRef("rust-lang/rust")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(owner)
	fmt.Println(repo)
	// Output:
	// rust-lang
	// rust
}
