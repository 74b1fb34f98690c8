package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pixhaven/pixctl/auth"
	"github.com/pixhaven/pixctl/config"
	"github.com/pixhaven/pixctl/pixhaven"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	credStore  auth.Store
	credFile   *auth.FileStore
	client     *pixhaven.Client
	operations *pixhaven.Operations

	// Command flags
	dryRun bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pixctl",
	Short: "A CLI to manage images on a PixHaven server",
	Long: `pixctl talks to a PixHaven image server: list and inspect images,
upload new ones, update metadata, replace files, manage access tokens,
and delete images matching filter criteria.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without making changes")
}

// initializeApp initializes the configuration, logger, credential store and client.
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	// Resolve the credential store. A token in the config wins; otherwise
	// the file written by `pixctl login` is used.
	credentialsPath := cfg.Auth.CredentialsFile
	if credentialsPath == "" {
		credentialsPath, err = auth.DefaultPath()
		if err != nil {
			return err
		}
	}
	credFile = auth.NewFileStore(credentialsPath)

	if cfg.Auth.Token != "" {
		credStore = auth.StaticStore{auth.TokenKey: cfg.Auth.Token}
	} else {
		credStore = credFile
	}

	// Create PixHaven client
	client, err = pixhaven.NewClient(
		cfg.Server.URL,
		credStore,
		logger,
		pixhaven.WithTimeout(time.Duration(cfg.Server.Timeout)*time.Second),
	)
	if err != nil {
		return fmt.Errorf("failed to create PixHaven client: %w", err)
	}

	operations = pixhaven.NewOperations(client, logger)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
