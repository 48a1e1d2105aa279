package ghrepo

import (
	"encoding/json"
	"fmt"
	"io"
)

// OwnerKind identifies the type of account that owns a repository.
// It is a closed two-variant set; decoding any other wire value fails
// rather than falling back to a default.
type OwnerKind string

// The two recognized owner kinds.
const (
	OwnerUser         OwnerKind = "User"
	OwnerOrganization OwnerKind = "Organization"
)

// UnmarshalJSON rejects values outside the recognized kinds.
func (k *OwnerKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch kind := OwnerKind(s); kind {
	case OwnerUser, OwnerOrganization:
		*k = kind
		return nil
	}
	return fmt.Errorf("unrecognized owner type %q", s)
}

// RepoInfo is an immutable snapshot of one repository's metadata at
// request time. It is produced atomically by a single decode; no field
// is mutated after construction.
type RepoInfo struct {
	Name     string `json:"name"`
	FullName string `json:"full_name"` // "owner/name"
	URL      string `json:"html_url"`

	Owner OwnerInfo `json:"owner"`

	Stargazers  int `json:"stargazers_count"`
	Subscribers int `json:"subscribers_count"`
	Forks       int `json:"forks_count"`

	// OpenIssues counts open issues plus open pull requests.
	OpenIssues int `json:"open_issues_count"`

	IsFork     bool `json:"fork"`
	IsArchived bool `json:"archived"`

	DefaultBranch string `json:"default_branch"`

	Homepage    string      `json:"homepage"`
	Description string      `json:"description"`
	License     LicenseInfo `json:"license"`

	Language string `json:"language"`

	// Topics preserves the order returned by the server.
	Topics []string `json:"topics"`
}

// OwnerInfo describes the account owning a repository.
type OwnerInfo struct {
	Name      string    `json:"login"`
	URL       string    `json:"html_url"`
	AvatarURL string    `json:"avatar_url"`
	Kind      OwnerKind `json:"type"`
}

// LicenseInfo describes a repository's license.
type LicenseInfo struct {
	Key  string `json:"key"`  // short identifier, e.g. "other"
	Name string `json:"name"` // human-readable name
}

// Wire structs use pointer fields so that a missing key and an explicit
// JSON null are both detectable; every field below is required.
type repoWire struct {
	Name          *string      `json:"name"`
	FullName      *string      `json:"full_name"`
	HTMLURL       *string      `json:"html_url"`
	Owner         *ownerWire   `json:"owner"`
	Stargazers    *int         `json:"stargazers_count"`
	Subscribers   *int         `json:"subscribers_count"`
	Forks         *int         `json:"forks_count"`
	OpenIssues    *int         `json:"open_issues_count"`
	Fork          *bool        `json:"fork"`
	Archived      *bool        `json:"archived"`
	DefaultBranch *string      `json:"default_branch"`
	Homepage      *string      `json:"homepage"`
	Description   *string      `json:"description"`
	License       *licenseWire `json:"license"`
	Language      *string      `json:"language"`
	Topics        *[]string    `json:"topics"`
}

type ownerWire struct {
	Login     *string    `json:"login"`
	HTMLURL   *string    `json:"html_url"`
	AvatarURL *string    `json:"avatar_url"`
	Type      *OwnerKind `json:"type"`
}

type licenseWire struct {
	Key  *string `json:"key"`
	Name *string `json:"name"`
}

// decodeRepoInfo reads one JSON object from r and converts it into a
// RepoInfo, surfacing every failure as a *DecodeError.
func decodeRepoInfo(r io.Reader) (*RepoInfo, error) {
	var w repoWire
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	info, err := w.toRepoInfo()
	if err != nil {
		return nil, &DecodeError{Cause: err}
	}
	return info, nil
}

func (w *repoWire) toRepoInfo() (*RepoInfo, error) {
	var info RepoInfo
	var err error

	if info.Name, err = reqString(w.Name, "name"); err != nil {
		return nil, err
	}
	if info.FullName, err = reqString(w.FullName, "full_name"); err != nil {
		return nil, err
	}
	if info.URL, err = reqString(w.HTMLURL, "html_url"); err != nil {
		return nil, err
	}
	if w.Owner == nil {
		return nil, errMissing("owner")
	}
	if info.Owner, err = w.Owner.toOwnerInfo(); err != nil {
		return nil, err
	}
	if info.Stargazers, err = reqCount(w.Stargazers, "stargazers_count"); err != nil {
		return nil, err
	}
	if info.Subscribers, err = reqCount(w.Subscribers, "subscribers_count"); err != nil {
		return nil, err
	}
	if info.Forks, err = reqCount(w.Forks, "forks_count"); err != nil {
		return nil, err
	}
	if info.OpenIssues, err = reqCount(w.OpenIssues, "open_issues_count"); err != nil {
		return nil, err
	}
	if w.Fork == nil {
		return nil, errMissing("fork")
	}
	info.IsFork = *w.Fork
	if w.Archived == nil {
		return nil, errMissing("archived")
	}
	info.IsArchived = *w.Archived
	if info.DefaultBranch, err = reqString(w.DefaultBranch, "default_branch"); err != nil {
		return nil, err
	}
	if info.Homepage, err = reqString(w.Homepage, "homepage"); err != nil {
		return nil, err
	}
	if info.Description, err = reqString(w.Description, "description"); err != nil {
		return nil, err
	}
	if w.License == nil {
		return nil, errMissing("license")
	}
	if info.License.Key, err = reqString(w.License.Key, "license.key"); err != nil {
		return nil, err
	}
	if info.License.Name, err = reqString(w.License.Name, "license.name"); err != nil {
		return nil, err
	}
	if info.Language, err = reqString(w.Language, "language"); err != nil {
		return nil, err
	}
	if w.Topics == nil {
		return nil, errMissing("topics")
	}
	info.Topics = *w.Topics

	return &info, nil
}

func (w *ownerWire) toOwnerInfo() (OwnerInfo, error) {
	var owner OwnerInfo
	var err error

	if owner.Name, err = reqString(w.Login, "owner.login"); err != nil {
		return OwnerInfo{}, err
	}
	if owner.URL, err = reqString(w.HTMLURL, "owner.html_url"); err != nil {
		return OwnerInfo{}, err
	}
	if owner.AvatarURL, err = reqString(w.AvatarURL, "owner.avatar_url"); err != nil {
		return OwnerInfo{}, err
	}
	if w.Type == nil {
		return OwnerInfo{}, errMissing("owner.type")
	}
	owner.Kind = *w.Type

	return owner, nil
}

func reqString(v *string, name string) (string, error) {
	if v == nil {
		return "", errMissing(name)
	}
	return *v, nil
}

func reqCount(v *int, name string) (int, error) {
	if v == nil {
		return 0, errMissing(name)
	}
	if *v < 0 {
		return 0, fmt.Errorf("field %q must be non-negative, got %d", name, *v)
	}
	return *v, nil
}

func errMissing(name string) error {
	return fmt.Errorf("missing required field %q", name)
}
