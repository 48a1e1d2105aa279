package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ghinfo/pkg/apperrors"
	"github.com/matzehuels/ghinfo/pkg/ghrepo"
)

// repoRef is a parsed owner/repo argument.
type repoRef struct {
	Owner string
	Repo  string
}

func (r repoRef) String() string { return r.Owner + "/" + r.Repo }

// fetchResult pairs a reference with its fetch outcome.
type fetchResult struct {
	Ref  repoRef
	Info *ghrepo.RepoInfo
	Err  error
}

// getCommand creates the get command for fetching repository metadata.
func (c *CLI) getCommand() *cobra.Command {
	var (
		jsonOut     bool
		interactive bool
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "get <owner/repo> [owner/repo...]",
		Short: "Fetch metadata for one or more GitHub repositories",
		Long: `Fetch repository metadata (stars, forks, open issues, license, topics, ...)
from the GitHub REST API.

A single repository is shown as a detail card. Multiple repositories are
fetched concurrently and shown as a summary table; pass --interactive to
browse them and inspect each one.

Examples:
  ghinfo get rust-lang/rust
  ghinfo get rust-lang/rust --json
  ghinfo get golang/go rust-lang/rust python/cpython
  ghinfo get golang/go rust-lang/rust -i`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGet(cmd.Context(), args, jsonOut, interactive, timeout)
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "print JSON instead of styled output")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse results interactively")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-request timeout (overrides config)")

	return cmd
}

func (c *CLI) runGet(ctx context.Context, args []string, jsonOut, interactive bool, timeout time.Duration) error {
	refs, err := parseRepoRefs(args)
	if err != nil {
		return err
	}

	opts := c.fetchOptions(timeout)
	if jsonOut || c.Config.Format == FormatJSON {
		jsonOut = true
	}

	if len(refs) == 1 {
		if interactive {
			printWarning("Interactive mode needs multiple repositories; showing details directly")
		}
		return c.getOne(ctx, refs[0], opts, jsonOut)
	}
	return c.getMany(ctx, refs, opts, jsonOut, interactive)
}

func (c *CLI) getOne(ctx context.Context, ref repoRef, opts []ghrepo.Option, jsonOut bool) error {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", ref))
	spinner.Start()

	start := time.Now()
	info, err := ghrepo.Fetch(ctx, ref.Owner, ref.Repo, opts...)
	if err != nil {
		mapped := mapFetchError(ref, err)
		spinner.StopWithError(apperrors.UserMessage(mapped))
		return mapped
	}
	spinner.Stop()
	c.Logger.Debug("Fetched repository", "repo", info.FullName, "elapsed", time.Since(start).Round(time.Millisecond))

	if jsonOut {
		return printJSON(info)
	}
	fmt.Println(renderCard(info))
	return nil
}

func (c *CLI) getMany(ctx context.Context, refs []repoRef, opts []ghrepo.Option, jsonOut, interactive bool) error {
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %d repositories...", len(refs)))
	spinner.Start()

	start := time.Now()
	results := fetchAll(ctx, refs, opts)
	spinner.Stop()

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	c.Logger.Debug("Fetched repositories",
		"total", len(results), "failed", failed,
		"elapsed", time.Since(start).Round(time.Millisecond))

	if jsonOut {
		return printResultsJSON(results)
	}

	if interactive {
		m := NewResultListModel(results)
		p := tea.NewProgram(m)
		if _, err := p.Run(); err != nil {
			return err
		}
		return nil
	}

	fmt.Println(renderTable(results))
	for _, res := range results {
		if res.Err != nil {
			printError("%s", apperrors.UserMessage(mapFetchError(res.Ref, res.Err)))
		}
	}
	if failed > 0 {
		return apperrors.New(apperrors.ErrCodeInternal, "%d of %d fetches failed", failed, len(results))
	}
	printSuccess("Fetched %d repositories", len(results))
	return nil
}

// fetchAll runs one fetch per reference concurrently. Results keep the
// argument order regardless of completion order.
func fetchAll(ctx context.Context, refs []repoRef, opts []ghrepo.Option) []fetchResult {
	results := make([]fetchResult, len(refs))

	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		go func(i int, ref repoRef) {
			defer wg.Done()
			info, err := ghrepo.Fetch(ctx, ref.Owner, ref.Repo, opts...)
			results[i] = fetchResult{Ref: ref, Info: info, Err: err}
		}(i, ref)
	}
	wg.Wait()

	return results
}

func parseRepoRefs(args []string) ([]repoRef, error) {
	refs := make([]repoRef, 0, len(args))
	for _, arg := range args {
		owner, repo, err := ghrepo.ParseRepoRef(arg)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRepoRef, err, "invalid reference %q", arg)
		}
		refs = append(refs, repoRef{Owner: owner, Repo: repo})
	}
	return refs, nil
}

// fetchOptions translates config and flags into library options.
// Precedence: flag > config file > library default.
func (c *CLI) fetchOptions(timeout time.Duration) []ghrepo.Option {
	var opts []ghrepo.Option
	if c.Config.APIBaseURL != "" && c.Config.APIBaseURL != ghrepo.DefaultBaseURL {
		opts = append(opts, ghrepo.WithBaseURL(c.Config.APIBaseURL))
	}
	if c.Config.UserAgent != "" {
		opts = append(opts, ghrepo.WithUserAgent(c.Config.UserAgent))
	}
	switch {
	case timeout > 0:
		opts = append(opts, ghrepo.WithTimeout(timeout))
	case c.Config.TimeoutSeconds > 0:
		opts = append(opts, ghrepo.WithTimeout(time.Duration(c.Config.TimeoutSeconds)*time.Second))
	}
	return opts
}

// mapFetchError converts library errors into coded application errors
// with messages suitable for direct display.
func mapFetchError(ref repoRef, err error) error {
	var statusErr *ghrepo.StatusError
	switch {
	case errors.As(err, &statusErr):
		if statusErr.Code == http.StatusNotFound {
			return apperrors.New(apperrors.ErrCodeNotFound, "repository %s not found", ref)
		}
		return apperrors.Wrap(apperrors.ErrCodeUpstreamStatus, err, "GitHub returned status %d for %s", statusErr.Code, ref)
	case errors.As(err, new(*ghrepo.RequestError)):
		return apperrors.Wrap(apperrors.ErrCodeNetwork, err, "could not reach GitHub for %s", ref)
	case errors.As(err, new(*ghrepo.DecodeError)):
		return apperrors.Wrap(apperrors.ErrCodeDecode, err, "unexpected API response for %s", ref)
	}
	return apperrors.Wrap(apperrors.ErrCodeInternal, err, "fetch %s", ref)
}
