package selection

import (
	"errors"
	"testing"

	"github.com/robalobadob/forca/internal/words"
)

func rec(theme, display string, lvl words.Level) words.Record {
	return words.Record{Theme: theme, DisplayForm: display, NormalizedForm: words.Normalize(display), Level: lvl}
}

var pool = []words.Record{
	rec("animais", "GATO", words.LevelA),
	rec("animais", "CÃO", words.LevelB),
	rec("animais", "BEIJA-FLOR", words.LevelC),
	rec("animais", "PATO", words.LevelA),
}

// first always picks index 0, so tests are deterministic.
func first(int) int { return 0 }

func TestFilterByLevel(t *testing.T) {
	if got := FilterByLevel(pool, words.LevelAll); len(got) != 4 {
		t.Errorf("ALL = %d records", len(got))
	}
	got := FilterByLevel(pool, words.LevelA)
	if len(got) != 2 || got[0].DisplayForm != "GATO" || got[1].DisplayForm != "PATO" {
		t.Errorf("A = %+v", got)
	}
	if got := FilterByLevel(pool[:1], words.LevelC); len(got) != 0 {
		t.Errorf("C on GATO = %+v", got)
	}
}

func TestPickEmptyPool(t *testing.T) {
	p := &Picker{Intn: first}
	if _, err := p.Pick(nil, NewUsedSet()); !errors.Is(err, ErrNoCandidates) {
		t.Errorf("err = %v, want ErrNoCandidates", err)
	}
}

func TestPickDoesNotRepeatUntilExhausted(t *testing.T) {
	p := &Picker{Intn: first}
	used := NewUsedSet()
	seen := make(map[string]bool)
	for i := 0; i < len(pool); i++ {
		r, err := p.Pick(pool, used)
		if err != nil {
			t.Fatal(err)
		}
		if seen[r.DisplayForm] {
			t.Fatalf("repeated %s before exhaustion", r.DisplayForm)
		}
		seen[r.DisplayForm] = true
	}
	if used.Len() != len(pool) {
		t.Errorf("used.Len() = %d", used.Len())
	}

	// Exhausted: the theme resets and a valid record still comes back.
	r, err := p.Pick(pool, used)
	if err != nil {
		t.Fatalf("Pick after exhaustion: %v", err)
	}
	if r.DisplayForm != "GATO" || used.Len() != 1 {
		t.Errorf("after reset got %s, used=%d", r.DisplayForm, used.Len())
	}
}

func TestResetIsPerTheme(t *testing.T) {
	p := &Picker{Intn: first}
	used := NewUsedSet()
	other := rec("frutas", "UVA", words.LevelA)
	used.Add(other)

	level := FilterByLevel(pool, words.LevelC)
	p.Pick(level, used)
	if _, err := p.Pick(level, used); err != nil {
		t.Fatal(err)
	}
	if !used.Has(other) {
		t.Error("reset of animais cleared frutas history")
	}
}

func TestResetClearsWholeTheme(t *testing.T) {
	p := &Picker{Intn: first}
	used := NewUsedSet()
	gato := pool[0]
	used.Add(gato)

	onlyC := FilterByLevel(pool, words.LevelC)
	p.Pick(onlyC, used)
	p.Pick(onlyC, used) // exhausted → animais reset
	if used.Has(gato) {
		t.Error("per-theme reset should forget GATO as well")
	}
}

func TestPickUsesIntnRange(t *testing.T) {
	var asked []int
	p := &Picker{Intn: func(n int) int { asked = append(asked, n); return n - 1 }}
	used := NewUsedSet()
	r, _ := p.Pick(pool, used)
	if r.DisplayForm != "PATO" || asked[0] != 4 {
		t.Errorf("got %s, asked %v", r.DisplayForm, asked)
	}
	r, _ = p.Pick(pool, used)
	if r.DisplayForm != "BEIJA-FLOR" || asked[1] != 3 {
		t.Errorf("got %s, asked %v", r.DisplayForm, asked)
	}
}

func TestCryptoPicker(t *testing.T) {
	p := NewPicker()
	used := NewUsedSet()
	for i := 0; i < 50; i++ {
		if _, err := p.Pick(pool, used); err != nil {
			t.Fatal(err)
		}
	}
	if th := p.RandomTheme([]string{"a", "b"}); th != "a" && th != "b" {
		t.Errorf("RandomTheme = %q", th)
	}
	if th := p.RandomTheme(nil); th != "" {
		t.Errorf("RandomTheme(nil) = %q", th)
	}
}

func TestUsedSetClear(t *testing.T) {
	used := NewUsedSet()
	used.Add(pool[0])
	used.Add(rec("frutas", "UVA", words.LevelA))
	used.Clear()
	if used.Len() != 0 {
		t.Errorf("Len after Clear = %d", used.Len())
	}
}
