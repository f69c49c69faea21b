package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/billmal071/ituring/internal/actions"
	"github.com/billmal071/ituring/internal/config"
	"github.com/billmal071/ituring/internal/ituring"
	"github.com/billmal071/ituring/internal/logger"
	"github.com/billmal071/ituring/internal/session"
)

var (
	// Version is set at build time
	Version = "0.1.0"
	// Commit is set at build time
	Commit = "dev"
)

var (
	cfgFile string
	verbose bool

	store  *session.Store
	runner *actions.Runner
)

var errNoCommand = errors.New("a command is required")

var rootCmd = &cobra.Command{
	Use:   "ituring",
	Short: "Command-line kit for an ituring.com.cn account",
	Long: `ituring talks to the private API behind ituring.com.cn.

It lists purchased and favourite books, prints download and Kindle push
scripts for your library, and tidies up the favourite list.

Examples:
  ituring login                       Save an access token
  ituring report > books.csv          Shelf and favourites as CSV
  ituring fetch > ebooks.txt          aria2c input file for your ebooks
  aria2c -i ebooks.txt                Download them
  ituring push-books > push.sh        Kindle push script
  ituring clean-favourite             Unfavourite purchased books
  ituring all-books > catalog.csv     Scan the whole catalog`,
	Version:       fmt.Sprintf("%s (%s)", Version, Commit),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		return errNoCommand
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd == cmd.Root() || cmd.Name() == "help" {
			return nil
		}
		return setup(cmd)
	},
}

// Execute runs the root command
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default "+config.GetConfigPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(cleanFavouriteCmd)
	rootCmd.AddCommand(allBooksCmd)
	rootCmd.AddCommand(pushBooksCmd)
}

// setup loads config and the saved token and builds the shared runner
func setup(cmd *cobra.Command) error {
	if err := config.Init(cfgFile, Version); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.Get()

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Level: level, Output: cmd.ErrOrStderr()})

	store = session.NewStore(cfg.Session.TokenPath)
	token, err := store.Load()
	if err != nil {
		return err
	}
	log.Debug().Str("path", store.Path).Bool("token", token != "").Msg("session loaded")

	client, err := ituring.NewClient(ituring.Options{
		BaseURL:    cfg.API.BaseURL,
		LegacyURL:  cfg.API.LegacyURL,
		FileURL:    cfg.API.FileURL,
		RefererURL: cfg.API.RefererURL,
		Token:      string(token),
		UserAgent:  cfg.Network.UserAgent,
		Timeout:    cfg.Network.Timeout,
		Logger:     log,
	})
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	runner = &actions.Runner{
		API:       client,
		Out:       cmd.OutOrStdout(),
		Err:       cmd.ErrOrStderr(),
		OutputDir: cfg.Fetch.OutputDir,
		MaxMisses: cfg.Catalog.MaxMisses,
		Progress:  isTerminal(cmd.ErrOrStderr()),
		Log:       log,
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
