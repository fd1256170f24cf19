package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/objectstore"
	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/script"
	"github.com/jsamuelsen11/game-narrative-script/internal/adapters/storyfile"
	"github.com/jsamuelsen11/game-narrative-script/internal/app"
	"github.com/jsamuelsen11/game-narrative-script/internal/domain"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/config"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/logging"
	"github.com/jsamuelsen11/game-narrative-script/internal/platform/telemetry"
	"github.com/jsamuelsen11/game-narrative-script/internal/ports"
)

type buildOptions struct {
	output  string
	publish bool
	workers int
}

func newBuildCmd(root *rootOptions) *cobra.Command {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build [flags] FILE...",
		Short: "Compile sources into a tree blob and index",
		Long: `Compile the given sources in order. When two sources declare or define the
same name, the first one wins and the later one is reported as a conflict.

Every problem found is printed, one per line, and nothing is written unless
all checks pass.`,
		Args: minimumArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "tree blob path (default compiler.output_dir/compiler.tree_name)")
	cmd.Flags().BoolVar(&opts.publish, "publish", false, "upload the generated pair to the object store")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "files parsed at once (default compiler.parse_workers)")
	return cmd
}

func runBuild(cmd *cobra.Command, root *rootOptions, opts *buildOptions, sources []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(root.profile, config.WithConfigDir(root.configDir), config.WithOptionalFiles())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if opts.publish && !cfg.ObjectStore.Enabled {
		return usageError{errors.New("--publish requires object_store.enabled")}
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())

	otel, err := telemetry.Setup(ctx, cfg.Telemetry.Enabled,
		cfg.Telemetry.ServiceName, cfg.Telemetry.Exporter, cfg.Telemetry.Endpoint)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		if err := otel.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	registerDependencies(injector, cfg, logger, opts)

	svc, err := do.Invoke[*app.BuildService](injector)
	if err != nil {
		return fmt.Errorf("resolving build service: %w", err)
	}

	treePath := opts.output
	if treePath == "" {
		treePath = cfg.Compiler.TreePath()
	}

	res, err := svc.Build(ctx, app.BuildRequest{
		Sources:  sources,
		TreePath: treePath,
		Publish:  opts.publish,
	})
	if err != nil {
		var diags domain.Diagnostics
		if errors.As(err, &diags) {
			for _, line := range diags.Lines() {
				fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", line)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d problem(s) found, nothing written\n", len(diags))
			return errReported
		}
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wrote %s (%d acts, %d symbols, %d bytes)\n", res.TreePath, len(res.Acts), res.Symbols, res.Bytes)
	fmt.Fprintf(out, "wrote %s\n", res.IndexPath)
	if res.Published {
		store := do.MustInvoke[*objectstore.Store](injector)
		fmt.Fprintf(out, "published %s\n", store.Key(res.TreePath))
	}
	return nil
}

func registerDependencies(injector do.Injector, cfg *config.Config, logger *slog.Logger, opts *buildOptions) {
	do.Provide(injector, func(_ do.Injector) (ports.SyntaxSource, error) {
		return script.NewParser(logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.StoryEncoder, error) {
		return storyfile.NewEncoder(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*objectstore.Store, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return objectstore.New(&cfg.ObjectStore, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (*app.BuildService, error) {
		workers := cfg.Compiler.ParseWorkers
		if opts.workers > 0 {
			workers = opts.workers
		}

		buildOpts := []app.BuildOption{
			app.WithParseWorkers(workers),
			app.WithBuildMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		}
		if opts.publish {
			store, err := do.Invoke[*objectstore.Store](i)
			if err != nil {
				return nil, fmt.Errorf("creating object store: %w", err)
			}
			buildOpts = append(buildOpts, app.WithPublisher(store))
		}

		return app.NewBuildService(
			do.MustInvoke[ports.SyntaxSource](i),
			do.MustInvoke[ports.StoryEncoder](i),
			logger,
			buildOpts...,
		), nil
	})
}
