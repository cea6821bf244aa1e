// Package gallery implements the terminal client for the character API.
package gallery

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/louisbranch/character-gallery/internal/character"
	entrypoint "github.com/louisbranch/character-gallery/internal/platform/cmd"
	"github.com/louisbranch/character-gallery/internal/services/gallery/integration/characterapi"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/i18n"
	"github.com/louisbranch/character-gallery/internal/services/gallery/view"
)

const defaultConcurrency = 4

// Config holds the defaults read from the environment.
type Config struct {
	APIBaseURL string        `env:"CHARACTER_GALLERY_API_BASE_URL" envDefault:"http://localhost:8080/api/v0"`
	APIKey     string        `env:"CHARACTER_GALLERY_API_KEY"`
	Timeout    time.Duration `env:"CHARACTER_GALLERY_API_TIMEOUT" envDefault:"10s"`
	Lang       string        `env:"CHARACTER_GALLERY_LANG" envDefault:"en-US"`
}

// ClientFactory builds the API client once flags are parsed.
type ClientFactory func(Config) (characterapi.Client, error)

// Options wires the root command.
type Options struct {
	Defaults  Config
	NewClient ClientFactory
	// Concurrency bounds parallel fetches in show.
	Concurrency int
	Out         io.Writer
	Err         io.Writer
}

// Execute loads environment defaults and runs the command line in args.
func Execute(ctx context.Context, args []string) error {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return err
	}
	root := NewRootCommand(Options{Defaults: cfg})
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the gallery command tree.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.NewClient == nil {
		opts.NewClient = newHTTPClient
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	cfg := opts.Defaults

	root := &cobra.Command{
		Use:           "gallery",
		Short:         "Browse characters from the character API",
		Long:          `gallery prints character cards fetched from the character API, one page of the listing or a set of records by id.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if opts.Out != nil {
		root.SetOut(opts.Out)
	}
	if opts.Err != nil {
		root.SetErr(opts.Err)
	}
	flags := root.PersistentFlags()
	flags.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Character API base URL")
	flags.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "Character API key")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Request timeout")
	flags.StringVar(&cfg.Lang, "lang", cfg.Lang, "Language for card labels (en-US, es)")

	root.AddCommand(newListCommand(&cfg, opts), newShowCommand(&cfg, opts))
	return root
}

func newListCommand(cfg *Config, opts Options) *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the character listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if page < 0 {
				return fmt.Errorf("page must not be negative, got %d", page)
			}
			client, err := opts.NewClient(*cfg)
			if err != nil {
				return err
			}
			ui := copyFor(cfg.Lang)
			state := view.NewGallery(client, quietLogger(), page).Mount(cmd.Context())
			if state.Status == view.StatusFailed {
				return fmt.Errorf("list characters: %w", state.Reason)
			}
			if state.Stale {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.StaleNotice)
			}
			return writeGallery(cmd.OutOrStdout(), ui, state)
		},
	}
	cmd.Flags().IntVar(&page, "page", 0, "Zero-based page index")
	return cmd
}

func newShowCommand(cfg *Config, opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID [ID...]",
		Short: "Print character cards by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]character.ID, len(args))
			for idx, raw := range args {
				id, ok := character.ParseID(raw)
				if !ok {
					return fmt.Errorf("invalid character id %q", raw)
				}
				ids[idx] = id
			}
			client, err := opts.NewClient(*cfg)
			if err != nil {
				return err
			}

			states := make([]view.DetailState, len(ids))
			group, ctx := errgroup.WithContext(cmd.Context())
			group.SetLimit(opts.Concurrency)
			for idx, id := range ids {
				group.Go(func() error {
					detail := view.NewDetail(client, quietLogger())
					defer detail.Close()
					state := detail.SetID(ctx, id)
					if state.Status == view.StatusFailed {
						return fmt.Errorf("show character %s: %w", id, state.Reason)
					}
					states[idx] = state
					return nil
				})
			}
			if err := group.Wait(); err != nil {
				return err
			}

			ui := copyFor(cfg.Lang)
			out := cmd.OutOrStdout()
			for idx, state := range states {
				if idx > 0 {
					fmt.Fprintln(out)
				}
				if state.Stale {
					fmt.Fprintln(cmd.ErrOrStderr(), ui.StaleNotice)
				}
				if err := writeDetail(out, ui, state); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newHTTPClient(cfg Config) (characterapi.Client, error) {
	client, err := characterapi.New(characterapi.Config{
		BaseURL: cfg.APIBaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init character api client: %w", err)
	}
	return client, nil
}

func copyFor(lang string) i18n.Copy {
	tag, ok := i18n.ParseTag(strings.TrimSpace(lang))
	if !ok {
		tag = i18n.Default()
	}
	return i18n.Gallery(tag)
}

// Views log fetch failures; the command reports them as errors instead.
func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
