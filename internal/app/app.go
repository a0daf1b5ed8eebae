// Package app wires the command line surface to the catalog, selector and
// printer.
package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/colorscripts/internal/catalog"
	"github.com/samdwyer/colorscripts/internal/selector"
	"github.com/samdwyer/colorscripts/internal/telemetry"
	"github.com/samdwyer/colorscripts/internal/ui"
)

// App holds everything a single run needs.
type App struct {
	cfg         Config
	fsys        fs.FS
	out         io.Writer
	printer     *ui.Printer
	generations *catalog.GenerationRegistry
	rng         *rand.Rand
	tracer      trace.Tracer
	runID       string
}

// New creates an app reading assets from fsys, which is rooted at the data
// directory, and writing to out.
func New(cfg Config, fsys fs.FS, out io.Writer) (*App, error) {
	generations, err := catalog.LoadGenerationRegistry()
	if err != nil {
		return nil, err
	}

	style, err := titleStyle(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &App{
		cfg:         cfg,
		fsys:        fsys,
		out:         out,
		printer:     ui.NewPrinter(fsys, out, style),
		generations: generations,
		rng:         rand.New(rand.NewSource(seed)),
		tracer:      telemetry.Tracer("app"),
		runID:       uuid.NewString(),
	}, nil
}

// Run performs the action selected by the config.
func (a *App) Run(ctx context.Context) (err error) {
	mode := a.cfg.Mode()
	ctx, span := a.tracer.Start(ctx, "colorscripts.run", trace.WithAttributes(
		attribute.String("run.id", a.runID),
		attribute.String("run.mode", mode.String()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	switch mode {
	case ModeList:
		return a.list(ctx)
	case ModeName:
		return a.show(ctx, a.cfg.Name, a.cfg.Shiny)
	case ModeRandom:
		return a.random(ctx, a.cfg.Random)
	default:
		writeUsage(a.out)
		return nil
	}
}

func (a *App) list(ctx context.Context) error {
	_, span := a.tracer.Start(ctx, "colorscripts.list")
	defer span.End()

	names, err := catalog.LoadNames(a.fsys)
	if err != nil {
		return err
	}
	span.SetAttributes(attribute.Int("names.count", names.Count()))
	return a.printer.List(names.Raw())
}

func (a *App) show(ctx context.Context, name string, shiny bool) error {
	_, span := a.tracer.Start(ctx, "colorscripts.show", trace.WithAttributes(
		attribute.String("entity.name", name),
		attribute.Bool("entity.shiny", shiny),
		attribute.Bool("title", !a.cfg.NoTitle),
	))
	defer span.End()

	return a.printer.Show(name, !a.cfg.NoTitle, ui.VariantOf(shiny))
}

func (a *App) random(ctx context.Context, spec string) error {
	ctx, span := a.tracer.Start(ctx, "colorscripts.random", trace.WithAttributes(
		attribute.String("generation.specifier", spec),
		attribute.Bool("shiny.forced", a.cfg.Shiny),
	))
	defer span.End()

	names, err := catalog.LoadNames(a.fsys)
	if err != nil {
		return err
	}
	if last := a.generations.LastIndex(); names.Count() < last {
		return fmt.Errorf("%s has %d names, generation table needs %d", catalog.NamesFile, names.Count(), last)
	}

	choice, err := selector.New(a.generations, names, a.rng).Pick(spec, a.cfg.Shiny)
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.Int("range.start", choice.Span.Start),
		attribute.Int("range.end", choice.Span.End),
		attribute.Int("entity.index", choice.Index),
	)
	if g := a.generations.ForIndex(choice.Index); g != nil {
		span.SetAttributes(attribute.String("generation.label", g.Label))
	}

	return a.show(ctx, choice.Name, choice.Shiny)
}

func titleStyle(cfg Config) (ui.TitleStyle, error) {
	regular, err := ui.ParseColor(cfg.TitleColor)
	if err != nil {
		return ui.TitleStyle{}, fmt.Errorf("title color: %w", err)
	}
	shiny, err := ui.ParseColor(cfg.ShinyTitleColor)
	if err != nil {
		return ui.TitleStyle{}, fmt.Errorf("shiny title color: %w", err)
	}
	return ui.TitleStyle{Regular: regular, Shiny: shiny}, nil
}
