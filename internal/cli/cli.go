package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackcheck/pkg/buildinfo"
	"github.com/matzehuels/stackcheck/pkg/cache"
	"github.com/matzehuels/stackcheck/pkg/checker"
	"github.com/matzehuels/stackcheck/pkg/config"
	"github.com/matzehuels/stackcheck/pkg/pipeline"
	"github.com/matzehuels/stackcheck/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "stackcheck"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Stackcheck grades container stacking solutions",
		Long: `Stackcheck checks solutions to the container stacking problem: containers
arrive one at a time and must be stacked so that ships can be loaded in order
of arrival, using as few stacks as possible.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger, cmd.Name()))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/stackcheck/config.toml)")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads .env, the config file and the environment.
func (c *CLI) loadConfig() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	path, explicit := c.configPath, c.configPath != ""
	if !explicit {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("loaded config", "path", path, "cache", cfg.Cache.Backend, "store", cfg.Store.Backend)
	return nil
}

// runnerOpts overrides config settings from command flags.
type runnerOpts struct {
	noCache bool
	noStore bool
}

// newRunner creates a pipeline runner from the loaded config.
func (c *CLI) newRunner(ctx context.Context, opts runnerOpts) (*pipeline.Runner, error) {
	cfg := c.config

	ch, err := c.newCache(ctx, opts.noCache)
	if err != nil {
		return nil, err
	}

	var keyer cache.Keyer
	if cfg.Cache.Prefix != "" {
		keyer = cache.NewPrefixKeyer(cfg.Cache.Prefix)
	}

	r := pipeline.NewRunner(ch, keyer, c.Logger)
	r.TTL = cfg.Cache.TTL.Duration
	r.Checker = &checker.Checker{Timeout: cfg.Check.Timeout.Duration}
	r.Checker.Verifier.Memoize = cfg.Check.Memoize

	if opts.noStore {
		r.Store = nil
		return r, nil
	}
	st, err := c.newStore(ctx)
	if err != nil {
		_ = r.Close(ctx)
		return nil, err
	}
	r.Store = st
	return r, nil
}

func (c *CLI) newCache(ctx context.Context, disabled bool) (cache.Cache, error) {
	cfg := c.config.Cache
	if disabled {
		return cache.NewNullCache(), nil
	}

	switch cfg.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	}

	dir := cfg.Dir
	if dir == "" {
		d, err := cacheDir()
		if err != nil {
			c.Logger.Warn("no cache directory, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
		dir = d
	}
	return cache.NewFileCache(dir)
}

func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	cfg := c.config.Store
	if cfg.Backend == config.StoreMongo {
		return store.NewMongoStore(ctx, store.MongoConfig{URI: cfg.MongoURI, Database: cfg.Database})
	}
	return store.NewMemoryStore(), nil
}
