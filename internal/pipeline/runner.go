// Package pipeline orchestrates the synthesis phases: frequency analysis,
// comprehensive wordlist assembly, iterative refinement, Markov expansion,
// and pattern artifact generation.
package pipeline

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"wordup/internal/markov"
	"wordup/internal/mutate"
	"wordup/internal/pattern"
	"wordup/internal/stats"
)

// High-frequency variation selection: words scoring above the threshold
// get leet and permutation variants, capped to the top slice of the corpus.
const (
	highFreqThreshold = 0.01
	highFreqLimit     = 100
)

// Config carries the full pipeline configuration. Each stage receives the
// values it needs at construction; nothing is mutated after NewRunner.
type Config struct {
	CompanyName string
	Domain      string

	MinWordLength int
	MaxWordLength int
	GroupSize     int

	// RefineIterations caps the refinement loop; the loop also stops at a
	// fixed point. Values above 5 are accepted but make runtimes explode.
	RefineIterations int

	// MarkovMultiplier scales the corpus size into the Markov generation
	// target (the original uses a 50x expansion).
	MarkovMultiplier int

	Workers int

	// Rand drives Markov sampling. Tests inject a seeded source; nil gets
	// a time-seeded one.
	Rand *rand.Rand

	Logger *logrus.Logger
}

func (c *Config) validate() error {
	if c.MinWordLength < 0 || c.MaxWordLength < 0 {
		return fmt.Errorf("word length bounds must be non-negative, got min=%d max=%d",
			c.MinWordLength, c.MaxWordLength)
	}
	if c.MinWordLength > 0 && c.MaxWordLength > 0 && c.MinWordLength > c.MaxWordLength {
		return fmt.Errorf("minimum word length %d exceeds maximum %d",
			c.MinWordLength, c.MaxWordLength)
	}
	return nil
}

// Stats is one phase progress sample for the UI.
type Stats struct {
	Phase     string
	Words     int
	Timestamp time.Time
}

// Result bundles every pipeline output handed to the persistence layer.
type Result struct {
	RawWords      []string
	Counts        map[string]int
	Scores        map[string]float64
	Comprehensive mutate.WordSet
	MarkovWords   []string
	Final         mutate.WordSet
	Masks         []string
	Rules         []string
	Analysis      map[string]string
}

// Runner coordinates the phases and publishes progress and the final
// result on channels.
type Runner struct {
	cfg    Config
	engine *mutate.Engine
	log    *logrus.Logger

	statsCh  chan Stats
	resultCh chan *Result

	onceResult sync.Once
	result     *Result
}

// NewRunner validates the configuration, applies defaults, and builds the
// mutation engine.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.MinWordLength == 0 {
		cfg.MinWordLength = 3
	}
	if cfg.MaxWordLength == 0 {
		cfg.MaxWordLength = 50
	}
	if cfg.RefineIterations <= 0 {
		cfg.RefineIterations = 1
	}
	if cfg.MarkovMultiplier <= 0 {
		cfg.MarkovMultiplier = 50
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.RefineIterations > 5 {
		cfg.Logger.Warnf("refinement cap %d is above the practical range; expect very long runtimes",
			cfg.RefineIterations)
	}

	engine := mutate.NewEngine(mutate.Options{
		CompanyName:   cfg.CompanyName,
		Domain:        cfg.Domain,
		MinWordLength: cfg.MinWordLength,
		MaxWordLength: cfg.MaxWordLength,
		Logger:        cfg.Logger,
	})
	return &Runner{
		cfg:      cfg,
		engine:   engine,
		log:      cfg.Logger,
		statsCh:  make(chan Stats, 8),
		resultCh: make(chan *Result, 1),
	}, nil
}

func (r *Runner) StatsCh() <-chan Stats    { return r.statsCh }
func (r *Runner) ResultCh() <-chan *Result { return r.resultCh }

// GetResult returns the result of the last completed run, or nil.
func (r *Runner) GetResult() *Result { return r.result }

// Run executes the full pipeline over the deduplicated lowercase corpus
// and the extracted metadata strings. It closes the stats channel and
// publishes the result when finished.
func (r *Runner) Run(ctx context.Context, words []string, metadata []string) (*Result, error) {
	defer close(r.statsCh)
	// on an error exit the result channel still closes, so listeners
	// never block on a result that will not come
	defer r.onceResult.Do(func() { close(r.resultCh) })

	res := &Result{RawWords: words}

	// Phase 1: frequency analysis.
	res.Counts, res.Scores = stats.Analyze(words)
	r.publish("frequency", len(words))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 2: comprehensive wordlist assembly.
	res.Comprehensive = r.assembleComprehensive(words, metadata, res.Scores)
	r.publish("comprehensive", res.Comprehensive.Len())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 3: iterative refinement to (or toward) a fixed point.
	res.Comprehensive = r.engine.Refine(res.Comprehensive.Sorted(), r.cfg.RefineIterations)
	r.publish("refinement", res.Comprehensive.Len())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 4: Markov expansion of the raw corpus.
	res.MarkovWords = markov.GenerateWords(words, len(words)*r.cfg.MarkovMultiplier, r.cfg.Rand)
	r.publish("markov", len(res.MarkovWords))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 5: final union.
	res.Final = mutate.NewWordSet()
	res.Final.Merge(res.Comprehensive)
	res.Final.AddAll(res.MarkovWords)
	r.publish("final", res.Final.Len())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 6: pattern artifacts and the flat analysis record. Rules come
	// from the bounded raw corpus; masks aggregate the richer final set.
	res.Rules = pattern.RuleGen(words)
	res.Masks = pattern.MaskGen(res.Final.Sorted())
	res.Analysis = pattern.ComprehensiveAnalysis(words)
	res.Analysis["rules_generated"] = fmt.Sprintf("%d", len(res.Rules))
	res.Analysis["masks_generated"] = fmt.Sprintf("%d", len(res.Masks))
	r.publish("analysis", len(res.Analysis))

	r.publishResult(res)
	r.log.WithFields(logrus.Fields{
		"raw":   len(words),
		"final": res.Final.Len(),
		"rules": len(res.Rules),
		"masks": len(res.Masks),
	}).Info("pipeline complete")
	return res, nil
}

// assembleComprehensive builds the base candidate set: raw words, metadata
// strings, company-related terms, per-word variants of the high-frequency
// slice, and company variations.
func (r *Runner) assembleComprehensive(words, metadata []string, scores map[string]float64) mutate.WordSet {
	base := mutate.NewWordSet()
	base.AddAll(words)
	base.AddAll(metadata)
	base.Merge(r.companyTerms(words))
	r.mutateHighFrequency(base, highFrequencyWords(scores))
	base.Merge(r.engine.CompanyVariations())
	return base
}

// companyTerms keeps corpus words sharing a substring relation with the
// company name in either direction.
func (r *Runner) companyTerms(words []string) mutate.WordSet {
	terms := mutate.NewWordSet()
	company := normalizeName(r.cfg.CompanyName)
	if company == "" {
		return terms
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		if containsEither(w, company) {
			terms.Add(w)
		}
	}
	return terms
}

// mutateHighFrequency fans the per-word leet and permutation variants out
// over the worker pool. Workers accumulate private sets that are merged
// after completion, so no shared set is mutated concurrently.
func (r *Runner) mutateHighFrequency(base mutate.WordSet, words []string) {
	if len(words) == 0 {
		return
	}
	jobs := make(chan string, len(words))
	locals := make(chan mutate.WordSet, r.cfg.Workers)

	var wg sync.WaitGroup
	for i := 0; i < r.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := mutate.NewWordSet()
			for w := range jobs {
				local.Merge(r.engine.Leetspeak([]string{w}))
				local.Merge(r.engine.Permutations([]string{w}))
			}
			locals <- local
		}()
	}
	for _, w := range words {
		jobs <- w
	}
	close(jobs)
	wg.Wait()
	close(locals)

	for local := range locals {
		base.Merge(local)
	}
}

// highFrequencyWords picks the words scoring above the threshold, ranked
// by score descending then word ascending, capped to the limit.
func highFrequencyWords(scores map[string]float64) []string {
	type scored struct {
		word  string
		score float64
	}
	picked := make([]scored, 0, len(scores))
	for w, s := range scores {
		if s > highFreqThreshold {
			picked = append(picked, scored{w, s})
		}
	}
	sort.Slice(picked, func(i, j int) bool {
		if picked[i].score != picked[j].score {
			return picked[i].score > picked[j].score
		}
		return picked[i].word < picked[j].word
	})
	if len(picked) > highFreqLimit {
		picked = picked[:highFreqLimit]
	}
	words := make([]string, len(picked))
	for i, p := range picked {
		words[i] = p.word
	}
	return words
}

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}

func containsEither(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func (r *Runner) publish(phase string, words int) {
	s := Stats{Phase: phase, Words: words, Timestamp: time.Now()}
	select {
	case r.statsCh <- s:
	default:
		// drop if the UI is slow; the next phase carries fresh data
	}
}

func (r *Runner) publishResult(res *Result) {
	r.onceResult.Do(func() {
		r.result = res
		select {
		case r.resultCh <- res:
		default:
		}
		close(r.resultCh)
	})
}
