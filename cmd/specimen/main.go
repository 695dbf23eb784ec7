package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/gouthamve/specimen/pkg/docgen"
	"github.com/gouthamve/specimen/pkg/models"
	"github.com/gouthamve/specimen/pkg/randomizer"
	"github.com/gouthamve/specimen/pkg/render"
)

func main() {
	rec := models.Record{}

	rootCmd := &cobra.Command{
		Use:   "specimen",
		Short: "Render specimen transcripts and ID cards for layout testing",
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rec.FirstName, "first", "Dee Dee", "First name printed on the documents.")
	flags.StringVar(&rec.LastName, "last", "Vaughan", "Last name printed on the documents.")
	flags.StringVar(&rec.School, "school", "Example State University", "School name printed on the documents.")
	flags.StringVar(&rec.DateOfBirth, "dob", "2003-11-06", "Date of birth printed on the transcript.")
	flags.String("out", ".", "Directory the PNG files are written to.")
	flags.String("font", "arial.ttf", "Path to the regular font.")
	flags.String("font-bold", "arialbd.ttf", "Path to the bold font.")
	flags.Uint64("seed", 0, "Seed for filler values. 0 picks a random seed.")
	flags.Bool("trace", false, "Print generation spans to stdout.")
	flags.Bool("debug", false, "Enable debug logging.")

	for _, sub := range []struct {
		use, short string
		kinds      []models.DocumentKind
	}{
		{"transcript", "Render the transcript", []models.DocumentKind{models.Transcript}},
		{"student-id", "Render the student ID card", []models.DocumentKind{models.StudentID}},
		{"all", "Render every document", models.Kinds},
	} {
		rootCmd.AddCommand(&cobra.Command{
			Use:   sub.use,
			Short: sub.short,
			Run: func(cmd *cobra.Command, args []string) {
				generate(cmd, rec, sub.kinds)
			},
		})
	}

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func generate(cmd *cobra.Command, rec models.Record, kinds []models.DocumentKind) {
	flags := cmd.Flags()
	outDir, err := flags.GetString("out")
	if err != nil {
		log.Fatalln("cannot get out flag:", err)
	}
	regular, err := flags.GetString("font")
	if err != nil {
		log.Fatalln("cannot get font flag:", err)
	}
	bold, err := flags.GetString("font-bold")
	if err != nil {
		log.Fatalln("cannot get font-bold flag:", err)
	}
	seed, err := flags.GetUint64("seed")
	if err != nil {
		log.Fatalln("cannot get seed flag:", err)
	}
	traceEnabled, err := flags.GetBool("trace")
	if err != nil {
		log.Fatalln("cannot get trace flag:", err)
	}
	debug, err := flags.GetBool("debug")
	if err != nil {
		log.Fatalln("cannot get debug flag:", err)
	}

	if debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var src randomizer.Source = randomizer.NewUnseeded()
	if seed != 0 {
		src = randomizer.New(seed)
	}

	opts := []docgen.Option{
		docgen.WithOutputDir(outDir),
		docgen.WithSource(src),
		docgen.WithFonts(&render.Fonts{Regular: regular, Bold: bold}),
	}

	ctx := context.Background()
	if traceEnabled {
		exp, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			log.Fatalf("failed to create trace exporter: %v", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		defer func() {
			if err := tp.Shutdown(ctx); err != nil {
				log.Printf("failed to shut down tracer provider: %v", err)
			}
		}()
		opts = append(opts, docgen.WithTracerProvider(tp))
	}

	g := docgen.NewGenerator(opts...)
	for _, kind := range kinds {
		path, err := g.Generate(ctx, rec, kind)
		if err != nil {
			log.Fatalf("failed to generate %s: %v", kind, err)
		}
		log.Println("Wrote", path)
	}
}
