package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/terramap/pkg/cache"
	"github.com/matzehuels/terramap/pkg/errors"
	"github.com/matzehuels/terramap/pkg/server"
)

// Cache backends for the serve command.
const (
	cacheNone   = "none"
	cacheMemory = "memory"
	cacheFile   = "file"
	cacheRedis  = "redis"
)

type serveOpts struct {
	addr           string
	maxCells       int
	maxConnections int
	workers        int
	cache          string        // backend: none, memory, file, redis
	cacheDir       string        // file backend directory
	cacheEntries   int           // memory backend capacity
	cacheTTL       time.Duration // entry lifetime; 0 keeps entries forever
	redisURL       string        // redis backend address
	logFile        logFileOpts   // access log file; stderr when path is empty
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:           ":8080",
		maxCells:       server.DefaultMaxCells,
		maxConnections: server.DefaultMaxConnections,
		cache:          cacheMemory,
		cacheEntries:   256,
		cacheTTL:       time.Hour,
		logFile:        logFileOpts{maxSizeMB: 50, maxBackups: 3, maxAgeDays: 28, compress: true},
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve maps over HTTP",
		Example: `  terramap serve --addr :8080
  terramap serve --cache redis --redis-url redis://localhost:6379/0
  curl 'localhost:8080/map?seed=42&size=64x48&format=png' > map.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd, &opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.addr, "addr", opts.addr, "listen address")
	f.IntVar(&opts.maxCells, "max-cells", opts.maxCells, "largest map a request may ask for, in cells")
	f.IntVar(&opts.maxConnections, "max-connections", opts.maxConnections, "maximum concurrent connections (0 for no limit)")
	f.IntVarP(&opts.workers, "workers", "w", 0, "rows generated in parallel per request (default GOMAXPROCS)")
	f.StringVar(&opts.cache, "cache", opts.cache, "rendered map cache: none, memory, file, redis")
	f.StringVar(&opts.cacheDir, "cache-dir", "", "file cache directory (default $XDG_CACHE_HOME/terramap)")
	f.IntVar(&opts.cacheEntries, "cache-entries", opts.cacheEntries, "memory cache capacity")
	f.DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "cache entry lifetime (0 for no expiry)")
	f.StringVar(&opts.redisURL, "redis-url", "redis://localhost:6379/0", "redis cache URL")
	f.StringVar(&opts.logFile.path, "log-file", "", "write request logs to a rotating file instead of stderr")
	f.IntVar(&opts.logFile.maxSizeMB, "log-max-size", opts.logFile.maxSizeMB, "rotate the log file after this many megabytes")
	f.IntVar(&opts.logFile.maxBackups, "log-max-backups", opts.logFile.maxBackups, "rotated log files to keep")

	_ = cmd.RegisterFlagCompletionFunc("cache", cobra.FixedCompletions(
		[]string{cacheNone, cacheMemory, cacheFile, cacheRedis}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	store, err := newCache(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Debug("Cache ready", "backend", opts.cache, "ttl", opts.cacheTTL)

	reqLogger := logger
	if opts.logFile.path != "" {
		l, closer := newFileLogger(opts.logFile, logger.GetLevel())
		defer closer.Close()
		reqLogger = l
		printInfo(cmd.ErrOrStderr(), "Request log: %s", opts.logFile.path)
	}

	srv := server.New(reqLogger,
		server.WithMaxCells(opts.maxCells),
		server.WithMaxConnections(opts.maxConnections),
		server.WithWorkers(opts.workers),
		server.WithCache(store, opts.cacheTTL),
	)
	printInfo(cmd.ErrOrStderr(), "Serving on %s", opts.addr)
	return srv.ListenAndServe(ctx, opts.addr)
}

// newCache builds the configured cache backend.
func newCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch strings.ToLower(opts.cache) {
	case cacheNone, "":
		return cache.NewNullCache(), nil
	case cacheMemory:
		return cache.NewMemoryCache(opts.cacheEntries), nil
	case cacheFile:
		dir := opts.cacheDir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "resolving cache directory")
			}
			dir = d
		}
		c, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "creating cache directory %s", dir)
		}
		return c, nil
	case cacheRedis:
		c, err := cache.NewRedisCache(ctx, opts.redisURL, appName+":")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "connecting to %s", opts.redisURL)
		}
		return c, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid cache: %q (must be one of: none, memory, file, redis)", opts.cache)
}

// cacheDir returns $XDG_CACHE_HOME/terramap or ~/.cache/terramap.
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
