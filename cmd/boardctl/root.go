package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

// clientName labels the board server in logs, metrics and circuit breaker
// state.
const clientName = "pipeline-api"

type rootOptions struct {
	profile   string
	baseURL   string
	assumeYes bool
}

func newSession(in io.Reader, out io.Writer) *session {
	return &session{in: in, out: out}
}

func newRootCmd(s *session) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "boardctl",
		Short:         "Inspect and move opportunities on pipeline boards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.connect(cmd.Context(), s)
		},
	}
	root.SetOut(s.out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.profile, "profile", os.Getenv("APP_PROFILE"), "config profile (defaults to $APP_PROFILE, then local)")
	flags.StringVar(&opts.baseURL, "server", "", "board server base URL (overrides client.base_url)")
	flags.BoolVarP(&opts.assumeYes, "yes", "y", false, "accept every conversion prompt")

	root.AddCommand(newShowCmd(s), newMoveCmd(s), newDragCmd(s))
	return root
}

// connect loads configuration, starts telemetry and builds the session's
// board server client. A session that already has a client is left
// untouched.
func (o *rootOptions) connect(ctx context.Context, s *session) error {
	if s.client != nil {
		return nil
	}

	profile := o.profile
	if profile == "" {
		profile = "local"
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if o.baseURL != "" {
		cfg.Client.BaseURL = o.baseURL
	}

	logger := logging.New(cfg.Log, os.Stderr)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.Provide(injector, func(_ do.Injector) (*telemetry.Providers, error) {
		return telemetry.Setup(ctx, cfg.Telemetry)
	})
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		providers := do.MustInvoke[*telemetry.Providers](i)
		return httpclient.New(&cfg.Client, clientName, providers.Metrics, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.PipelineClient, error) {
		return acl.NewPipelineClient(do.MustInvoke[*httpclient.Client](i), logger), nil
	})

	providers, err := do.Invoke[*telemetry.Providers](injector)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	s.providers = providers
	s.metrics = providers.Metrics

	client, err := do.Invoke[ports.PipelineClient](injector)
	if err != nil {
		return fmt.Errorf("resolving board client: %w", err)
	}

	s.logger = logger
	s.settings = cfg.Board
	s.assumeYes = o.assumeYes
	s.client = client
	return nil
}

func newShowCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "show PIPELINE",
		Short: "Print a board with its column totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.show(cmd.Context(), args[0])
		},
	}
}

func newMoveCmd(s *session) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "move PIPELINE ID...",
		Short: "Request stage changes for one or more opportunities",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args[1:])
			if err != nil {
				return err
			}
			return s.move(cmd.Context(), args[0], to, ids)
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "destination stage")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newDragCmd(s *session) *cobra.Command {
	var (
		to    string
		index int
	)
	cmd := &cobra.Command{
		Use:   "drag PIPELINE ID",
		Short: "Drag one opportunity onto a stage column",
		Long: "Drag lifts the card, hovers the destination column and drops it at\n" +
			"--index within the column. Dropping on the card's own column only\n" +
			"repositions it; any other column waits for the server to confirm.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args[1:])
			if err != nil {
				return err
			}
			return s.drag(cmd.Context(), args[0], ids[0], to, index)
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "destination stage")
	cmd.Flags().IntVar(&index, "index", -1, "position within the column (-1 appends)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			return nil, errors.New("invalid opportunity id " + strconv.Quote(arg))
		}
		ids = append(ids, id)
	}
	return ids, nil
}
