package ghrepo

import "strings"

// DefaultBaseURL is the root of the GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

// APIURL returns the repository metadata endpoint for owner and repo,
// rooted at [DefaultBaseURL]. Both inputs are percent-encoded as single
// path segments, so reserved characters ("/", "?", "#", ...) cannot
// introduce extra path segments, query strings, or fragments.
//
// APIURL performs no network access and no validation; it is a pure
// function of its inputs.
func APIURL(owner, repo string) string {
	return repoURL(DefaultBaseURL, owner, repo)
}

func repoURL(base, owner, repo string) string {
	return base + "/repos/" + escapeSegment(owner) + "/" + escapeSegment(repo)
}

// escapeSegment percent-encodes every octet outside the RFC 3986
// unreserved set (ALPHA / DIGIT / "-" / "_" / "." / "~").
func escapeSegment(s string) string {
	const upperhex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
