package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/khoahotran/portfolio-builder/adapters/media_storage"
	"github.com/khoahotran/portfolio-builder/adapters/persistence"
	"github.com/khoahotran/portfolio-builder/internal/application/seed"
	"github.com/khoahotran/portfolio-builder/internal/application/service"
	portfolioUC "github.com/khoahotran/portfolio-builder/internal/application/usecase/portfolio"
	"github.com/khoahotran/portfolio-builder/internal/config"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// CLI holds what the subcommands share. Fields left nil are opened from
// config on first use.
type CLI struct {
	configDir string
	verbose   bool

	cfg      config.Config
	log      logger.Logger
	kv       persistence.KeyValue
	repo     portfolio.Repository
	store    *portfolioUC.Store
	uploader service.Uploader
	fs       afero.Fs
}

func newRootCommand(cli *CLI) *cobra.Command {
	root := &cobra.Command{
		Use:           "folioctl",
		Short:         "Inspect and maintain the stored portfolio collection",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cli.configDir, "config", ".", "directory holding .env and config.yaml")
	root.PersistentFlags().BoolVarP(&cli.verbose, "verbose", "v", false, "log storage activity")

	root.AddCommand(
		cli.listCommand(),
		cli.showCommand(),
		cli.deleteCommand(),
		cli.resetCommand(),
		cli.exportCommand(),
		cli.backupCommand(),
	)
	return root
}

func (c *CLI) logger() logger.Logger {
	if c.log == nil {
		if c.verbose {
			c.log = logger.NewZapLogger(c.cfg.App.Env)
		} else {
			c.log = logger.NewNopLogger()
		}
	}
	return c.log
}

// openRepo loads config and opens the configured storage backend.
func (c *CLI) openRepo(ctx context.Context) (portfolio.Repository, error) {
	if c.repo != nil {
		return c.repo, nil
	}
	cfg, err := config.LoadConfig(c.configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg

	kv, err := persistence.NewKeyValue(ctx, cfg, c.logger())
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	c.kv = kv
	c.repo = persistence.NewSnapshotRepo(kv, cfg.Storage.Key, c.logger())
	return c.repo, nil
}

func (c *CLI) openStore(ctx context.Context) (*portfolioUC.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	repo, err := c.openRepo(ctx)
	if err != nil {
		return nil, err
	}

	opts := []portfolioUC.Option{portfolioUC.WithSeedOnEmpty(c.cfg.Seed.Enabled)}
	if c.cfg.Seed.Copies > 0 {
		opts = append(opts, portfolioUC.WithSeeder(seed.Seeder{Templates: seed.SampleTemplates(), Copies: c.cfg.Seed.Copies}))
	}
	store := portfolioUC.NewStore(repo, c.logger(), opts...)
	if err := store.Initialize(ctx); err != nil {
		return nil, err
	}
	c.store = store
	return store, nil
}

func (c *CLI) openUploader() (service.Uploader, error) {
	if c.uploader != nil {
		return c.uploader, nil
	}
	up, err := media_storage.NewCloudinaryAdapter(c.cfg, c.logger())
	if err != nil {
		return nil, err
	}
	c.uploader = up
	return up, nil
}

func (c *CLI) close() error {
	if c.log != nil {
		c.log.Sync()
	}
	if c.kv != nil {
		err := c.kv.Close()
		c.kv = nil
		return err
	}
	return nil
}

func printf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
