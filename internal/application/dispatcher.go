package application

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hailam/tokenfiles/internal/logging"
	"github.com/hailam/tokenfiles/internal/ports"
)

// Dispatcher routes every file spec of a platform to its content strategy and
// hands the result to the writer.
type Dispatcher struct {
	writer ports.FileWriter
	logger *slog.Logger
}

// NewDispatcher constructs a Dispatcher. A nil logger discards output.
func NewDispatcher(writer ports.FileWriter, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Dispatcher{writer: writer, logger: logger}
}

// BuildFiles validates the platform, then generates and writes each file in
// order. The first error aborts the remaining files; files already written
// stay written.
func (d *Dispatcher) BuildFiles(dict *ports.Dictionary, platform *ports.PlatformConfig) error {
	if err := validate(dict, platform); err != nil {
		return err
	}
	for i, spec := range platform.Files {
		if err := d.buildFile(i, spec, dict, platform); err != nil {
			d.logger.Error("build failed", "platform", platform.Name, "error", err)
			return err
		}
	}
	return nil
}

// BuildFilesConcurrent behaves like BuildFiles but runs up to workers files at
// once. The first error cancels files that have not started and is returned.
// workers <= 0 falls back to the sequential path.
func (d *Dispatcher) BuildFilesConcurrent(ctx context.Context, dict *ports.Dictionary, platform *ports.PlatformConfig, workers int) error {
	if workers <= 0 {
		return d.BuildFiles(dict, platform)
	}
	if err := validate(dict, platform); err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, spec := range platform.Files {
		if gctx.Err() != nil {
			break
		}
		i, spec := i, spec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return d.buildFile(i, spec, dict, platform)
		})
	}
	if err := g.Wait(); err != nil {
		d.logger.Error("build failed", "platform", platform.Name, "error", err)
		return err
	}
	return ctx.Err()
}

func (d *Dispatcher) buildFile(index int, spec *ports.FileSpec, dict *ports.Dictionary, platform *ports.PlatformConfig) error {
	if spec == nil {
		return fileError(platform.Name, index, "", "file spec is nil")
	}
	if spec.Strategy.Kind == ports.StrategyNone || spec.Strategy.Fn == nil {
		return fileError(platform.Name, index, spec.Destination, "no template or formatter supplied")
	}

	d.logger.Debug("generating file",
		"platform", platform.Name,
		"destination", spec.Destination,
		"strategy", spec.Strategy.Kind.String(),
		"name", spec.Strategy.Name)

	content, err := spec.Strategy.Fn(spec, platform, dict)
	if err != nil {
		return &StrategyError{Destination: spec.Destination, Kind: spec.Strategy.Kind.String(), Err: err}
	}
	if err := d.writer.Write(spec.Destination, content); err != nil {
		return &WriteError{Destination: spec.Destination, Err: err}
	}

	d.logger.Info("wrote file", "platform", platform.Name, "destination", spec.Destination, "bytes", len(content))
	return nil
}

func validate(dict *ports.Dictionary, platform *ports.PlatformConfig) error {
	if platform == nil {
		return platformError("", "platform config is nil")
	}
	if dict == nil {
		return platformError(platform.Name, "dictionary is nil")
	}
	if platform.BuildPath != "" && !hasTrailingSeparator(platform.BuildPath) {
		return platformError(platform.Name, "build path must end in a trailing separator")
	}
	return nil
}

func hasTrailingSeparator(path string) bool {
	return strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(os.PathSeparator))
}
