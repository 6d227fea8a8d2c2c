package render

import (
	"strings"
	"testing"

	"github.com/robalobadob/forca/internal/game"
)

func TestGallowsStages(t *testing.T) {
	if strings.Contains(Gallows(0), "O") {
		t.Error("stage 0 should be an empty gallows")
	}
	full := Gallows(game.MaxErrors)
	for _, part := range []string{"O", "/|\\", "/ \\"} {
		if !strings.Contains(full, part) {
			t.Errorf("full figure missing %q", part)
		}
	}
	for i := 1; i < game.Stages; i++ {
		if Gallows(i) == Gallows(i-1) {
			t.Errorf("stage %d identical to stage %d", i, i-1)
		}
	}
	if Gallows(-3) != Gallows(0) || Gallows(99) != full {
		t.Error("out-of-range stages should clamp")
	}
}

func TestWordAndTried(t *testing.T) {
	if got := Word([]rune("_AÇ_")); got != "_ A Ç _" {
		t.Errorf("Word = %q", got)
	}
	if got := Tried(nil); got != "—" {
		t.Errorf("Tried(nil) = %q", got)
	}
	if got := Tried([]string{"A", "C"}); got != "A C" {
		t.Errorf("Tried = %q", got)
	}
}
