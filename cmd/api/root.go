package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"receita-api/internal/adapters/render/fpdf"
	"receita-api/internal/config"
	"receita-api/internal/domain/prescriptions"
	"receita-api/internal/platform/logger"
	"receita-api/internal/router"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"
)

const shutdownTimeout = 10 * time.Second

// flag -> clave de viper
var flagKeys = map[string]string{
	"port":       "server.port",
	"static-dir": "static.dir",
	"log-level":  "log.level",
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "receita-api",
		Short:         "Gera receitas em PDF e serve o SPA",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&cfgFile, "config", "", "archivo de configuración (toml, yaml o json)")
	fs.Int("port", config.DefaultPort, "puerto HTTP (env PORT)")
	fs.String("static-dir", "dist", "directorio del build del SPA (env STATIC_DIR)")
	fs.String("log-level", "info", "debug|info|warn|error (env LOG_LEVEL)")

	if err := bindFlags(v, fs); err != nil {
		panic(err)
	}
	return cmd
}

// bindFlags hace que un flag explícito gane sobre env y archivo.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return errors.Wrapf(err, "bind flag --%s", name)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper, path string) (*config.Config, error) {
	if path == "" {
		return config.Load(v)
	}
	return config.LoadFile(v, path)
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
	})
	defer func() { _ = log.Sync() }()

	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		log.Debug("maxprocs", map[string]any{"detail": fmt.Sprintf(format, args...)})
	}))

	renderer, err := fpdf.New(cfg.Layout())
	if err != nil {
		return errors.Wrap(err, "pdf renderer")
	}
	svc := prescriptions.NewService(renderer, prescriptions.Options{
		Filename: cfg.PDF.Filename,
		Creator:  cfg.AppName,
		Location: cfg.Location(),
	})

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Logger:        log,
			StaticFS:      os.DirFS(cfg.Static.Dir),
			StaticIndex:   cfg.Static.Index,
			Prescriptions: svc,
		}),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":       srv.Addr,
			"static_dir": cfg.Static.Dir,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return errors.Wrap(err, "server error")
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return nil
}
