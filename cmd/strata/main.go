package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/stratakit/strata/auth"
	"github.com/stratakit/strata/bootstrap"
	"github.com/stratakit/strata/config"
	"github.com/stratakit/strata/observability"
	"github.com/stratakit/strata/registry"
	"github.com/stratakit/strata/scaffold"
	"github.com/stratakit/strata/server"
	"github.com/stratakit/strata/server/endpoint"
	"github.com/stratakit/strata/server/middleware"
	"github.com/stratakit/strata/user"
	"github.com/stratakit/strata/version"
)

const modulePath = "github.com/stratakit/strata"

func main() {
	root := &cli.Command{
		Name:    "strata",
		Usage:   "Layered HTTP API starter kit",
		Version: version.Short(),
		Commands: []*cli.Command{
			serveCmd(),
			newCmd(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the example API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config file",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "Path to a .env file loaded before config",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var loaderOpts []config.LoaderOption
			if path := cmd.String("config"); path != "" {
				loaderOpts = append(loaderOpts, config.WithConfigFile(path))
			}
			if path := cmd.String("env-file"); path != "" {
				loaderOpts = append(loaderOpts, config.WithEnvFile(path))
			}

			var cfg config.AppConfig
			if err := config.Load(&cfg, loaderOpts...); err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg.Service.Version == "" {
				cfg.Service.Version = version.Short()
			}

			app, err := bootstrap.New(&cfg)
			if err != nil {
				return err
			}

			if err := user.Register(app.Registry, resolveHasher(app), app.Logger); err != nil {
				return err
			}

			srv := server.New(cfg.Server, app.Logger)
			if err := mountRoutes(app, srv, &cfg); err != nil {
				return err
			}
			if err := app.RegisterComponent(srv); err != nil {
				return err
			}

			return app.Run(ctx)
		},
	}
}

func resolveHasher(app *bootstrap.App) auth.Hasher {
	return registry.MustSingleton[auth.Hasher](app.Registry, registry.Core.PasswordHasher)
}

func mountRoutes(app *bootstrap.App, srv *server.Server, cfg *config.AppConfig) error {
	srv.ApplyMiddleware()
	engine := srv.Engine()

	if cfg.Observability.Enabled {
		metrics, err := observability.NewMetrics(observability.Meter("strata.http"))
		if err != nil {
			return fmt.Errorf("creating request metrics: %w", err)
		}
		engine.Use(observability.GinMiddleware(metrics))
	}

	engine.GET("/health", endpoint.Health(cfg.Service.Name, app.Components.HealthAll))
	engine.GET("/version", endpoint.Version(cfg.Service.Name, cfg.Service.Version))

	api := engine.Group("/api/v1")
	if cfg.Auth.Enabled {
		tokens, err := registry.Singleton[*auth.TokenService](app.Registry, registry.Core.TokenService)
		if err != nil {
			return err
		}
		api.Use(middleware.Auth(middleware.AuthConfig{TokenVerifier: tokens.Verify}))
	}

	handler, err := user.HandlerFrom(app.Registry)
	if err != nil {
		return err
	}
	user.Routes(api, handler)
	return nil
}

func newCmd() *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "Generate a new resource package",
		ArgsUsage: "<resource>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Value: ".",
				Usage: "Directory to generate the resource package under",
			},
			&cli.StringFlag{
				Name:  "module",
				Value: modulePath,
				Usage: "Module import path used in generated files",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite existing files",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one resource name, got %d", cmd.Args().Len())
			}

			res, err := scaffold.NewResource(cmd.Args().First())
			if err != nil {
				return err
			}

			gen := scaffold.NewGenerator(cmd.String("dir"), cmd.String("module"), cmd.Bool("force"), nil)
			written, err := gen.Generate(res)
			if err != nil {
				return err
			}

			for _, path := range written {
				fmt.Println(path)
			}
			return nil
		},
	}
}
