package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmitrymomot/searchkit/pkg/clientip"
	"github.com/dmitrymomot/searchkit/pkg/config"
	"github.com/dmitrymomot/searchkit/pkg/logger"
	"github.com/dmitrymomot/searchkit/pkg/opensearch"
	"github.com/dmitrymomot/searchkit/pkg/requestid"
	"github.com/dmitrymomot/searchkit/pkg/resource"
)

// Supported --output values.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"
)

// app carries flag values and everything derived from them for one invocation.
type app struct {
	envFile     string
	host        string
	port        int
	scheme      string
	username    string
	password    string
	askPassword bool
	caCert      string
	logLevel    string
	logFormat   string
	output      string
	timeout     time.Duration

	cfg opensearch.Config
	log *slog.Logger
}

// NewRootCommand builds the searchctl command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "searchctl",
		Short: "Secured OpenSearch connection toolkit",
		Long: `searchctl resolves OpenSearch connection settings from the environment,
.env files and flags, then connects with basic auth and a private CA when
configured.

Environment: OPENSEARCH_HOST, OPENSEARCH_PORT, OPENSEARCH_SCHEME,
OPENSEARCH_USERNAME, OPENSEARCH_PASSWORD, OPENSEARCH_CA_CERT_PATH.
CA certificates may live on S3 (s3://bucket/key), see CA_S3_* variables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "load variables from this .env file first")
	flags.StringVar(&a.host, "host", "", "cluster host (overrides OPENSEARCH_HOST)")
	flags.IntVar(&a.port, "port", 0, "cluster port (overrides OPENSEARCH_PORT)")
	flags.StringVar(&a.scheme, "scheme", "", "http or https (overrides OPENSEARCH_SCHEME)")
	flags.StringVarP(&a.username, "username", "u", "", "basic auth username")
	flags.StringVarP(&a.password, "password", "p", "", "basic auth password")
	flags.BoolVar(&a.askPassword, "ask-password", false, "prompt for the password")
	flags.StringVar(&a.caCert, "ca-cert", "", "CA certificate path or s3://bucket/key")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", string(logger.FormatText), "log format (text, json)")
	flags.StringVarP(&a.output, "output", "o", OutputFormatTable, "output format (table, json, yaml)")
	flags.DurationVar(&a.timeout, "timeout", 10*time.Second, "timeout for cluster requests")

	root.AddCommand(newVersionCommand(a, version, commit, date))
	root.AddCommand(newPingCommand(a))
	root.AddCommand(newCACommand(a))
	root.AddCommand(newProbeCommand(a))

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.setupOutput(); err != nil {
		return err
	}

	level, err := logger.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.logFormat)
	if err != nil {
		return err
	}
	a.log = logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithAttr(logger.Component("searchctl")),
		logger.WithContextExtractors(requestid.LogExtractor(), clientip.LogExtractor()),
	)

	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		a.cfg.Host = a.host
	}
	if flags.Changed("port") {
		a.cfg.Port = a.port
	}
	if flags.Changed("scheme") {
		if err := a.cfg.Scheme.UnmarshalText([]byte(a.scheme)); err != nil {
			return err
		}
	}
	if flags.Changed("username") {
		a.cfg.Username = a.username
	}
	if flags.Changed("ca-cert") {
		a.cfg.CACertPath = a.caCert
	}

	switch {
	case a.askPassword && flags.Changed("password"):
		return errors.New("--password and --ask-password are mutually exclusive")
	case a.askPassword:
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		a.cfg.Password = string(b)
	case flags.Changed("password"):
		a.cfg.Password = a.password
	}

	return nil
}

func (a *app) setupOutput() error {
	switch a.output {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (use table, json or yaml)", a.output)
	}
}

// loaderFor returns a resource loader able to read path. Local files are
// always readable; S3 is wired only when path needs it.
func (a *app) loaderFor(ctx context.Context, path string) (resource.Loader, error) {
	mux := resource.NewMux(resource.NewFileLoader(""))
	if !strings.HasPrefix(path, resource.S3Prefix) {
		return mux, nil
	}

	var s3cfg resource.S3Config
	if err := config.Load(&s3cfg); err != nil {
		return nil, err
	}
	s3loader, err := resource.NewS3Loader(ctx, s3cfg)
	if err != nil {
		return nil, err
	}
	mux.Handle(resource.S3Prefix, s3loader)
	return mux, nil
}

// bootstrapOptions returns the options every cluster-facing command passes
// to the opensearch package.
func (a *app) bootstrapOptions(ctx context.Context) ([]opensearch.Option, error) {
	loader, err := a.loaderFor(ctx, a.cfg.CACertPath)
	if err != nil {
		return nil, err
	}
	return []opensearch.Option{
		opensearch.WithLogger(a.log),
		opensearch.WithResourceLoader(loader),
	}, nil
}
