package pipeline

import (
	"context"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestNewRunnerValidation(t *testing.T) {
	_, err := NewRunner(Config{MinWordLength: 10, MaxWordLength: 5, Logger: quietLogger()})
	if err == nil {
		t.Fatal("expected error for min > max")
	}
}

func TestNewRunnerDefaults(t *testing.T) {
	r, err := NewRunner(Config{Logger: quietLogger()})
	if err != nil {
		t.Fatal(err)
	}
	if r.cfg.MinWordLength != 3 || r.cfg.MaxWordLength != 50 {
		t.Errorf("length defaults = [%d,%d], want [3,50]", r.cfg.MinWordLength, r.cfg.MaxWordLength)
	}
	if r.cfg.MarkovMultiplier != 50 {
		t.Errorf("MarkovMultiplier = %d, want 50", r.cfg.MarkovMultiplier)
	}
	if r.cfg.Workers <= 0 {
		t.Errorf("Workers = %d, want positive", r.cfg.Workers)
	}
	if r.cfg.Rand == nil {
		t.Error("Rand not defaulted")
	}
}

func TestRunEndToEnd(t *testing.T) {
	r, err := NewRunner(Config{
		CompanyName:      "acme",
		Domain:           "acme.com",
		RefineIterations: 1,
		Workers:          2,
		Rand:             rand.New(rand.NewSource(42)),
		Logger:           quietLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}

	words := []string{"hello", "hello", "world", "acmeteam"}
	res, err := r.Run(context.Background(), words, []string{"winter sale"})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"hello", "world", "acme", "acmeteam", "winter sale"} {
		if !res.Final.Has(want) {
			t.Errorf("final set missing %q", want)
		}
	}
	// high-frequency words pick up permutation variants
	if !res.Final.Has("hello1") {
		t.Error("final set missing permutation variant hello1")
	}
	if res.Comprehensive.Len() == 0 {
		t.Error("comprehensive set is empty")
	}
	if len(res.MarkovWords) == 0 {
		t.Error("no markov words generated")
	}
	if len(res.Rules) == 0 || len(res.Masks) == 0 {
		t.Errorf("artifacts missing: %d rules, %d masks", len(res.Rules), len(res.Masks))
	}
	for _, key := range []string{"total_words", "rules_generated", "masks_generated", "min_length", "max_length"} {
		if _, ok := res.Analysis[key]; !ok {
			t.Errorf("analysis missing key %q", key)
		}
	}
	if res.Analysis["total_words"] != "4" {
		t.Errorf("total_words = %q, want 4", res.Analysis["total_words"])
	}

	if got := r.GetResult(); got != res {
		t.Error("GetResult does not return the published result")
	}
	if published, ok := <-r.ResultCh(); !ok || published != res {
		t.Error("result channel did not carry the result")
	}
	// stats channel was closed after the final phase
	count := 0
	for range r.StatsCh() {
		count++
	}
	if count == 0 {
		t.Error("no stats published")
	}
}

func TestRunCancelled(t *testing.T) {
	r, err := NewRunner(Config{
		RefineIterations: 1,
		Rand:             rand.New(rand.NewSource(1)),
		Logger:           quietLogger(),
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Run(ctx, []string{"hello"}, nil); err == nil {
		t.Fatal("expected context error")
	}
}

func TestHighFrequencyWords(t *testing.T) {
	scores := map[string]float64{
		"common": 0.5,
		"also":   0.5,
		"rare":   0.001,
	}
	got := highFrequencyWords(scores)
	if len(got) != 2 {
		t.Fatalf("got %v, want 2 words", got)
	}
	// equal scores rank alphabetically
	if got[0] != "also" || got[1] != "common" {
		t.Errorf("order = %v, want [also common]", got)
	}
}
