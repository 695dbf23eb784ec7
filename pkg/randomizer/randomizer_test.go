package randomizer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRanges(t *testing.T) {
	g := New(42)
	for i := 0; i < 10000; i++ {
		if id := g.StudentID(); id < minStudentID || id > maxStudentID {
			t.Fatalf("student ID %d out of range", id)
		}

		bg := g.Background()
		for _, c := range []uint8{bg.R, bg.G, bg.B} {
			if c < 240 {
				t.Fatalf("background channel %d below 240", c)
			}
		}
		if bg.A != 0xff {
			t.Fatalf("background must be opaque, got alpha %d", bg.A)
		}

		tint := g.HeaderTint()
		if tint.R > 50 || tint.G > 50 {
			t.Fatalf("header tint red/green out of range: %v", tint)
		}
		if tint.B < 50 || tint.B > 150 {
			t.Fatalf("header tint blue out of range: %v", tint)
		}
	}
}

func TestSeededSequencesRepeat(t *testing.T) {
	draw := func(g *Rand) []int {
		var out []int
		for i := 0; i < 20; i++ {
			out = append(out, g.StudentID())
			if g.BarPresent() {
				out = append(out, 1)
			} else {
				out = append(out, 0)
			}
		}
		return out
	}

	if diff := cmp.Diff(draw(New(7)), draw(New(7))); diff != "" {
		t.Errorf("same seed produced different draws (-first +second):\n%s", diff)
	}
}

func TestBarProbability(t *testing.T) {
	const (
		seeds = 500
		bars  = 40
	)

	total := 0
	for seed := uint64(0); seed < seeds; seed++ {
		g := New(seed)
		for i := 0; i < bars; i++ {
			if g.BarPresent() {
				total++
			}
		}
	}

	avg := float64(total) / seeds
	if avg < 26 || avg > 30 {
		t.Errorf("expected about 28 bars per strip, got %.2f", avg)
	}
}
