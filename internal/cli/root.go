package cli

import (
	"io"
	"os"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/console"
	"auction-house/internal/repository"
	"auction-house/internal/session"
	"auction-house/utils"

	"github.com/spf13/cobra"
)

// Execute runs the root command. Fatal exits non-zero on failure.
func Execute() {
	cmd := newRootCmd(os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		utils.Fatal("command failed", map[string]any{"error": err.Error()})
	}
}

type options struct {
	configPath string
	debug      bool
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "auction-house",
		Short:        "Auction House: register, list, bid on and sell items",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			// the operator owns stdout; logs only show up with --debug
			utils.SetOutput(io.Discard)
			if opts.debug {
				utils.SetOutput(os.Stderr)
				_ = utils.SetLevel("debug")
			}

			svc, err := newService(cfg)
			if err != nil {
				return err
			}
			return console.NewShell(svc, console.NewUI(in, out)).Run()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.AddCommand(serveCmd(&opts))
	return cmd
}

// newService builds the auction house and registers the seed data
func newService(cfg config.Config) (*auction.AuctionService, error) {
	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo, session.NewMemoryStore())

	if err := prepopulate(svc, cfg.Seed); err != nil {
		return nil, err
	}
	return svc, nil
}
