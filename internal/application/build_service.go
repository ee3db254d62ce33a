package application

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/hailam/tokenfiles/internal/logging"
	"github.com/hailam/tokenfiles/internal/ports"
)

// WriterFactory returns the writer a platform's files go to.
type WriterFactory func(platform *ports.PlatformConfig) ports.FileWriter

// BuildRequest names the inputs of one build run.
type BuildRequest struct {
	TokensPath string
	ConfigPath string
	// Platforms limits the build to the named platforms. Empty builds all.
	Platforms []string
	// Workers > 0 builds each platform's files concurrently.
	Workers int
}

// BuildService loads the dictionary and platforms, then runs a Dispatcher per
// platform in configuration order.
type BuildService struct {
	tokens    ports.DictionaryLoader
	platforms ports.PlatformLoader
	writers   WriterFactory
	logger    *slog.Logger

	// OnPlatform, when set, is called before each platform is built.
	OnPlatform func(name string, index, total int)
}

// NewBuildService constructs a BuildService. A nil logger discards output.
func NewBuildService(tokens ports.DictionaryLoader, platforms ports.PlatformLoader, writers WriterFactory, logger *slog.Logger) *BuildService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &BuildService{tokens: tokens, platforms: platforms, writers: writers, logger: logger}
}

// Build runs every selected platform. The first failing platform stops the
// run; platforms already built keep their output.
func (s *BuildService) Build(ctx context.Context, req BuildRequest) error {
	dict, err := s.tokens.Load(req.TokensPath)
	if err != nil {
		return fmt.Errorf("failed to load tokens: %w", err)
	}
	all, err := s.platforms.Load(req.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load platforms: %w", err)
	}

	selected, err := selectPlatforms(all, req.Platforms)
	if err != nil {
		return err
	}
	s.logger.Info("starting build", "tokens", len(dict.AllProperties), "platforms", len(selected))

	for i, platform := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.OnPlatform != nil {
			s.OnPlatform(platform.Name, i, len(selected))
		}
		logger := s.logger.With("platform", platform.Name)
		logger.Info("building platform", "buildPath", platform.BuildPath, "files", len(platform.Files))

		dispatcher := NewDispatcher(s.writers(platform), logger)
		if err := dispatcher.BuildFilesConcurrent(ctx, dict, platform, req.Workers); err != nil {
			return fmt.Errorf("platform %s: %w", platform.Name, err)
		}
	}
	return nil
}

func selectPlatforms(all []*ports.PlatformConfig, names []string) ([]*ports.PlatformConfig, error) {
	if len(names) == 0 {
		return all, nil
	}
	var selected []*ports.PlatformConfig
	for _, name := range names {
		idx := slices.IndexFunc(all, func(p *ports.PlatformConfig) bool { return p.Name == name })
		if idx < 0 {
			return nil, fmt.Errorf("unknown platform: %s", name)
		}
	}
	// keep configuration order
	for _, p := range all {
		if slices.Contains(names, p.Name) {
			selected = append(selected, p)
		}
	}
	return selected, nil
}
