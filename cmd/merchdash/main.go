package main

import (
	"fmt"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"merchdash/internal/api"
	"merchdash/internal/charts"
	"merchdash/internal/config"
	"merchdash/internal/dataset"
)

var (
	cfgFile  string
	dataFile string
	verbose  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "merchdash",
	Short: "Merchandise trade dashboard",
	Long: `merchdash loads World Bank merchandise trade statistics from CSV and
composes a four-chart dashboard (line, horizontal bar and two donut pies)
with commentary. "render" writes it to a static HTML file; "serve" hosts it
over HTTP along with JSON data endpoints.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the dashboard to an HTML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if out, _ := cmd.Flags().GetString("out"); out != "" {
			cfg.Output = out
		}

		dash, err := buildDashboard(cfg)
		if err != nil {
			return err
		}
		if err := dash.WriteFile(cfg.Output); err != nil {
			return err
		}
		logger.Info("dashboard written", zap.String("file", cfg.Output))
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if listen, _ := cmd.Flags().GetString("listen"); listen != "" {
			cfg.Listen = listen
		}
		watch, _ := cmd.Flags().GetBool("watch")

		e := echo.New()
		e.HideBanner = true
		e.Use(middleware.CORS())
		e.Use(middleware.Recover())

		// Routes are live immediately; handlers answer 503 until the
		// background load lands.
		h := api.NewHandler(nil)
		h.RegisterRoutes(e)

		go func() {
			logger.Info("loading dashboard in background", zap.String("file", cfg.DataFile))
			dash, err := buildDashboard(cfg)
			if err != nil {
				logger.Error("initial dashboard build failed", zap.Error(err))
				return
			}
			h.SetDashboard(dash)
			logger.Info("dashboard ready")
		}()

		if watch {
			w, err := api.WatchData(cfg.DataFile, func() (*charts.Dashboard, error) {
				return buildDashboard(cfg)
			}, h, logger)
			if err != nil {
				return err
			}
			defer w.Close()
		}

		logger.Info("server ready", zap.String("listen", cfg.Listen))
		return e.Start(cfg.Listen)
	},
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dataFile != "" {
		cfg.DataFile = dataFile
	}
	return cfg, nil
}

func buildDashboard(cfg *config.Config) (*charts.Dashboard, error) {
	table, err := dataset.Load(cfg.DataFile, logger)
	if err != nil {
		return nil, err
	}
	return charts.Build(table, cfg, logger)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config (defaults are built in)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "path to the merchandise CSV (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	renderCmd.Flags().String("out", "", "output HTML file (default from config)")
	serveCmd.Flags().String("listen", "", "listen address (overrides config)")
	serveCmd.Flags().Bool("watch", false, "rebuild when the data file changes")

	rootCmd.AddCommand(renderCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
