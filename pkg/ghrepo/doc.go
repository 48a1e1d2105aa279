// Package ghrepo fetches metadata for a single GitHub repository.
//
// # Overview
//
// This package wraps one endpoint of the GitHub REST API
// (https://api.github.com/repos/{owner}/{repo}) and decodes the response
// into a [RepoInfo] value. There is no caching, no pagination, no retries,
// and no write operations: every call issues exactly one HTTP GET and
// returns either a decoded snapshot or a typed error.
//
// # Usage
//
//	info, err := ghrepo.Fetch(ctx, "rust-lang", "rust")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(info.FullName, "-", info.Stargazers, "stars")
//
// Callers without a context can use the blocking variant:
//
//	info, err := ghrepo.FetchBlocking("rust-lang", "rust")
//
// Both variants share the same URL construction, decoding, and error
// mapping; [FetchBlocking] is [Fetch] with a background context.
//
// # Errors
//
// Failures come from a closed set of three types, inspectable with
// [errors.As]:
//
//   - [RequestError]: the request could not be sent or the response could
//     not be received (DNS, connection, TLS, timeout). Wraps the cause.
//   - [StatusError]: the server answered with a non-2xx status. Carries
//     the numeric code; the body is not read.
//   - [DecodeError]: the body did not match the expected schema (missing
//     field, type mismatch, unrecognized owner type). Wraps the cause.
//
// # Authentication
//
// The package sends no credentials. Callers that need authenticated
// requests (higher rate limits, private repositories) can inject a
// preconfigured transport via [WithHTTPClient]; the package itself never
// handles tokens.
//
// # Concurrency
//
// Calls share no state. Each invocation builds its own HTTP client unless
// one is injected, so any number of calls may run concurrently. Cancelling
// the context passed to [Fetch] abandons the in-flight request.
package ghrepo
