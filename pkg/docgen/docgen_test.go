package docgen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/gouthamve/specimen/pkg/models"
	"github.com/gouthamve/specimen/pkg/randomizer"
	"github.com/gouthamve/specimen/pkg/render"
)

var testRecord = models.Record{
	FirstName:   "Dee Dee",
	LastName:    "Vaughan",
	School:      "Example State University",
	DateOfBirth: "2003-11-06",
}

func newTestGenerator(t *testing.T, dir string, seed uint64, opts ...Option) *Generator {
	t.Helper()
	missing := filepath.Join(t.TempDir(), "missing.ttf")
	clock := func() time.Time { return time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC) }
	base := []Option{
		WithOutputDir(dir),
		WithSource(randomizer.New(seed)),
		WithFonts(&render.Fonts{Regular: missing, Bold: missing}),
		WithClock(clock),
	}
	return NewGenerator(append(base, opts...)...)
}

func TestGenerateDocuments(t *testing.T) {
	dir := t.TempDir()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	g := newTestGenerator(t, dir, 5, WithTracerProvider(tp))

	for _, tc := range []struct {
		generate      func() (string, error)
		name          string
		width, height int
	}{
		{
			generate: func() (string, error) { return g.GenerateTranscript(t.Context(), testRecord) },
			name:     "Example State University_Dee Dee_Vaughan_transcript.png",
			width:    850,
			height:   1100,
		},
		{
			generate: func() (string, error) { return g.GenerateStudentID(t.Context(), testRecord) },
			name:     "Example State University_Dee Dee_Vaughan_student_id.png",
			width:    650,
			height:   400,
		},
	} {
		path, err := tc.generate()
		if err != nil {
			t.Fatalf("failed to generate %s: %v", tc.name, err)
		}
		if want := filepath.Join(dir, tc.name); path != want {
			t.Errorf("expected path %q, got %q", want, path)
		}

		img, err := imaging.Open(path)
		if err != nil {
			t.Fatalf("failed to decode %s: %v", path, err)
		}
		if b := img.Bounds(); b.Dx() != tc.width || b.Dy() != tc.height {
			t.Errorf("%s: expected %dx%d, got %dx%d", tc.name, tc.width, tc.height, b.Dx(), b.Dy())
		}
	}

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	for _, s := range spans {
		if s.Name() != "Generate" {
			t.Errorf("unexpected span name %q", s.Name())
		}
	}

	if n := testutil.CollectAndCount(generateDuration); n < 2 {
		t.Errorf("expected duration series for both kinds, got %d", n)
	}
}

func TestFilenameIsPure(t *testing.T) {
	got := []string{
		Filename(testRecord, models.Transcript),
		Filename(testRecord, models.Transcript),
		Filename(testRecord, models.StudentID),
	}
	want := []string{
		"Example State University_Dee Dee_Vaughan_transcript.png",
		"Example State University_Dee Dee_Vaughan_transcript.png",
		"Example State University_Dee Dee_Vaughan_student_id.png",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRegenerateOverwrites(t *testing.T) {
	dir := t.TempDir()

	var sizes []int64
	for _, seed := range []uint64{1, 2} {
		path, err := newTestGenerator(t, dir, seed).GenerateStudentID(t.Context(), testRecord)
		if err != nil {
			t.Fatalf("failed to generate: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("failed to stat %s: %v", path, err)
		}
		sizes = append(sizes, info.Size())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one file after regenerating, got %d", len(entries))
	}
	if sizes[0] == 0 || sizes[1] == 0 {
		t.Errorf("expected non-empty files, got sizes %v", sizes)
	}
}

func TestSeededOutputIsIdentical(t *testing.T) {
	read := func(dir string) []byte {
		path, err := newTestGenerator(t, dir, 9).GenerateTranscript(t.Context(), testRecord)
		if err != nil {
			t.Fatalf("failed to generate: %v", err)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read %s: %v", path, err)
		}
		return b
	}

	if !cmp.Equal(read(t.TempDir()), read(t.TempDir())) {
		t.Error("expected byte-identical transcripts for the same seed")
	}
}

func TestGenerateFailsOnUnwritableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")
	if _, err := newTestGenerator(t, dir, 1).GenerateTranscript(t.Context(), testRecord); err == nil {
		t.Fatal("expected error writing to a missing directory")
	}
}
