// Package docgen lays out, renders and saves specimen documents.
package docgen

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gouthamve/specimen/pkg/layout"
	"github.com/gouthamve/specimen/pkg/models"
	"github.com/gouthamve/specimen/pkg/randomizer"
	"github.com/gouthamve/specimen/pkg/render"
)

const tracerName = "github.com/gouthamve/specimen/pkg/docgen"

type Generator struct {
	dir      string
	source   randomizer.Source
	renderer *render.Renderer
	now      func() time.Time
	tracer   trace.Tracer
}

type Option func(*Generator)

// WithOutputDir writes documents to dir instead of the working directory.
func WithOutputDir(dir string) Option {
	return func(g *Generator) { g.dir = dir }
}

// WithSource sets the filler value source.
func WithSource(src randomizer.Source) Option {
	return func(g *Generator) { g.source = src }
}

func WithFonts(fonts *render.Fonts) Option {
	return func(g *Generator) { g.renderer = render.NewRenderer(fonts) }
}

// WithClock sets the function used for issue and validity dates.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(g *Generator) { g.tracer = tp.Tracer(tracerName) }
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		dir:      ".",
		source:   randomizer.NewUnseeded(),
		renderer: render.NewRenderer(nil),
		now:      time.Now,
		tracer:   otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Filename returns the file name used for kind. It depends only on its
// arguments, so regenerating a document replaces the previous file.
func Filename(rec models.Record, kind models.DocumentKind) string {
	return fmt.Sprintf("%s_%s_%s_%s.png", rec.School, rec.FirstName, rec.LastName, kind)
}

// GenerateTranscript writes the transcript for rec and returns its path.
func (g *Generator) GenerateTranscript(ctx context.Context, rec models.Record) (string, error) {
	return g.Generate(ctx, rec, models.Transcript)
}

// GenerateStudentID writes the student ID card for rec and returns its path.
func (g *Generator) GenerateStudentID(ctx context.Context, rec models.Record) (string, error) {
	return g.Generate(ctx, rec, models.StudentID)
}

func (g *Generator) Generate(ctx context.Context, rec models.Record, kind models.DocumentKind) (path string, err error) {
	_, span := g.tracer.Start(ctx, "Generate", trace.WithAttributes(
		attribute.String("document.kind", kind.String()),
	))
	start := time.Now()
	defer func() {
		status := "success"
		if err != nil {
			status = "failure"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		generateDuration.WithLabelValues(kind.String(), status).Observe(time.Since(start).Seconds())
		span.End()
	}()

	doc, err := layout.Build(rec, kind, g.source, g.now())
	if err != nil {
		return "", err
	}

	img, err := g.renderer.RenderDocument(doc)
	if err != nil {
		return "", fmt.Errorf("failed to render %s: %w", kind, err)
	}

	path = filepath.Join(g.dir, Filename(rec, kind))
	if err := render.SavePNG(img, path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", kind, err)
	}

	span.SetAttributes(attribute.String("document.path", path))
	slog.Info("generated document", "kind", kind, "path", path)
	return path, nil
}
