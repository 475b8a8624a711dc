package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	autoanchors "github.com/alnah/go-autoanchors"
	"github.com/alnah/go-autoanchors/internal/config"
)

// ErrConversionFailed is returned when at least one file failed.
var ErrConversionFailed = errors.New("conversion failed")

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment, logger zerolog.Logger) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()

	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	// Precedence: flags > env > file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	outputExt := ".html"
	if cfg.PDF.Enabled {
		outputExt = ".pdf"
	}

	files, err := discoverFiles(inputPath, outputDir, outputExt)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no HTML or Markdown files found in %s", ErrNoInput, inputPath)
	}

	params := &conversionParams{
		listView:  flags.listView,
		inlineCSS: cfg.Assets.Inline,
		pdf:       cfg.PDF.Enabled,
	}
	if cfg.Assets.InstallURL != "" && !cfg.Assets.Inline {
		links := &headLinks{}
		if err := autoanchors.RegisterStyles(links, cfg.Assets.InstallURL); err != nil {
			return err
		}
		params.styleLinks = links.String()
	}

	workers := flags.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := autoanchors.ResolvePoolSize(workers)
	logger.Debug().Int("pool", poolSize).Int("files", len(files)).Msg("starting conversion")

	pool := env.NewPool(poolSize, converterOptions(cfg)...)
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warn().Err(err).Msg("closing converters")
		}
	}()

	results := convertBatch(ctx, pool, files, params, logger)
	failed := printResults(results, flags.common.quiet, flags.common.verbose, env, logger)
	if failed == 0 {
		return nil
	}

	// Surface the first error so the exit code reflects its kind.
	for _, r := range results {
		if r.Err != nil {
			return fmt.Errorf("%w: %d of %d files: %w", ErrConversionFailed, failed, len(results), r.Err)
		}
	}
	return nil
}

// loadConfig loads the config named by the flag, then by AUTOANCHORS_CONFIG,
// and falls back to defaults.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.toc.label != "" {
		cfg.TOC.Label = flags.toc.label
	}
	if flags.toc.noAdvert {
		cfg.TOC.Advert = false
	}
	if flags.toc.disabled {
		cfg.TOC.Enabled = false
	}
	if flags.noAnchors {
		cfg.Anchors.Enabled = false
	}

	if flags.assets.style != "" {
		cfg.Assets.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
	if flags.assets.inlineCSS {
		cfg.Assets.Inline = true
	}

	if flags.pdf {
		cfg.PDF.Enabled = true
	}
	if flags.timeout != "" {
		cfg.PDF.Timeout = flags.timeout
	}
}

// transformerOptions maps config to Transformer options.
func transformerOptions(cfg *config.Config) []autoanchors.Option {
	opts := []autoanchors.Option{
		autoanchors.WithLabel(cfg.TOC.Label),
		autoanchors.WithAdvert(cfg.TOC.Advert),
	}
	if !cfg.TOC.Enabled {
		opts = append(opts, autoanchors.WithoutTOC())
	}
	if !cfg.Anchors.Enabled {
		opts = append(opts, autoanchors.WithoutAnchors())
	}
	return opts
}

// converterOptions maps config to Converter options.
func converterOptions(cfg *config.Config) []autoanchors.ConverterOption {
	return []autoanchors.ConverterOption{
		autoanchors.WithTransformer(autoanchors.New(transformerOptions(cfg)...)),
		autoanchors.WithStyle(cfg.Assets.Style),
		autoanchors.WithAssetPath(cfg.Assets.BasePath),
		autoanchors.WithTimeout(cfg.PDFTimeout()),
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
