package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/bridgebot/internal/application"
	"github.com/eugenenazirov/bridgebot/internal/config"
	"github.com/eugenenazirov/bridgebot/internal/exchange"
	"github.com/eugenenazirov/bridgebot/internal/logging"
	"github.com/eugenenazirov/bridgebot/internal/reload"
)

type sourceOptions struct {
	configFile   string
	coinListFile string
	envFile      string
}

func main() {
	kingpinApp := kingpin.New("bridgebot", "Resolves and serves the trading bot configuration")
	configFile := kingpinApp.Flag("config", "Path to the persisted settings file").Default(config.DefaultConfigFile).String()
	coinListFile := kingpinApp.Flag("coin-list", "Path to the supported coin list file").Default(config.DefaultCoinListFile).String()
	envFile := kingpinApp.Flag("env-file", "Optional .env file merged under the process environment").String()
	printOnly := kingpinApp.Flag("print", "Print the resolved configuration as YAML and exit").Bool()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").Default(logging.DefaultLevel).String()

	defaults := application.DefaultServerOptions()
	listen := kingpinApp.Flag("listen", "Address of the inspection API").Default(defaults.Listen).String()
	reloadInterval := kingpinApp.Flag("reload-interval-min", "Minimum time between configuration reloads (0 disables throttling)").Default(defaults.ReloadInterval.String()).Duration()
	rateLimitRPS := kingpinApp.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default(fmt.Sprint(defaults.RateLimitRPS)).Float64()
	rateLimitBurst := kingpinApp.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default(fmt.Sprint(defaults.RateLimitBurst)).Int()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	logger, err := logging.New(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	load := newLoader(config.OSFiles{}, os.Environ, sourceOptions{
		configFile:   *configFile,
		coinListFile: *coinListFile,
		envFile:      *envFile,
	}, logger)

	cfg, err := load()
	if err != nil {
		logger.Fatal("failed to resolve configuration",
			zap.String("kind", config.ErrorKind(err)),
			zap.Error(err),
		)
	}

	if *printOnly {
		if err := printConfig(os.Stdout, cfg); err != nil {
			logger.Fatal("failed to print configuration", zap.Error(err))
		}
		return
	}

	opts := defaults
	opts.Listen = *listen
	opts.ReloadInterval = *reloadInterval
	opts.RateLimitRPS = *rateLimitRPS
	opts.RateLimitBurst = *rateLimitBurst

	app, err := application.New(opts, cfg, load, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watchReloads(ctx, app.Reloader())

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	sig := awaitShutdown(app.Server(), opts.ShutdownGracePeriod, logger)
	logger.Info("server stopped", zap.String("signal", sig.String()))
}

// newLoader returns a LoadFunc that takes a fresh environment snapshot and
// rereads every file on each call.
func newLoader(files config.FileReader, environ func() []string, opts sourceOptions, logger *zap.Logger) reload.LoadFunc {
	orderTypes := exchange.NewBinanceOrderTypes()

	return func() (config.Config, error) {
		env := config.EnvironmentFromList(environ())
		if opts.envFile != "" {
			vars, err := config.ReadDotEnv(files, opts.envFile)
			if err != nil {
				return config.Config{}, err
			}
			env = env.WithFallback(vars)
		}

		return config.Load(config.Sources{
			Env:          env,
			Files:        files,
			ConfigPath:   opts.configFile,
			CoinListPath: opts.coinListFile,
			OrderTypes:   orderTypes,
			Logger:       logger,
		})
	}
}

func printConfig(w io.Writer, cfg config.Config) error {
	return config.WriteYAML(w, cfg)
}
