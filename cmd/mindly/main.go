package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	mindly "github.com/mindly/mindly-client"
	"github.com/mindly/mindly-client/session"
)

var (
	baseURL string
	debug   bool
	wait    bool
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, mindly.UserMessage(err))
		log.Debug().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mindly",
		Short:         "Mindly emotional-wellbeing journal client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("MINDLY_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Base URL of the Mindly backend (overrides MINDLY_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&wait, "wait", false, "Wait for the backend to become reachable before running")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newRecordCmd())
	rootCmd.AddCommand(newPatientsCmd())
	rootCmd.AddCommand(newPatientShowCmd())
	rootCmd.AddCommand(newFeedbackCmd())
	rootCmd.AddCommand(newAlertsCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newChatCmd())

	return rootCmd
}

// openStore returns the session store at the default data directory.
func openStore() (*session.Store, error) {
	base, err := session.BaseDir()
	if err != nil {
		return nil, err
	}
	return session.NewStore(base), nil
}

// buildClient assembles an SDK client from env config, the --base-url flag
// and the session store as token source.
func buildClient(ctx context.Context, store *session.Store) (*mindly.Client, error) {
	cfg, err := mindly.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if wait {
		if err := waitForBackend(ctx, cfg.BaseURL); err != nil {
			return nil, err
		}
	}
	return mindly.NewFromConfig(cfg, mindly.WithTokenSource(store))
}

// waitForBackend probes the backend until it answers anything at all. This is
// a startup readiness gate for scripted use; individual operations still run
// exactly once.
func waitForBackend(ctx context.Context, url string) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 500 * time.Millisecond
	exp.MaxElapsedTime = 30 * time.Second

	probe := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Debug().Err(err).Str("url", url).Msg("backend not reachable yet")
			return err
		}
		_ = resp.Body.Close()
		return nil
	}
	return backoff.Retry(probe, backoff.WithContext(exp, ctx))
}

// requireSession loads the current session or fails with the re-login prompt.
func requireSession(store *session.Store) (*session.Session, error) {
	sess, err := store.Load()
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.Email == "" {
		return nil, fmt.Errorf("sessão expirada, faça login novamente")
	}
	return sess, nil
}
