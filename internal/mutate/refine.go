package mutate

import "github.com/sirupsen/logrus"

// Refine repeatedly applies the hybrid composition to the accumulated set
// until an iteration adds no new words (a fixed point) or the iteration cap
// is reached. The cap is load-bearing: each pass feeds on its own output,
// so small caps (3-5) are required for tractable runtimes.
func (e *Engine) Refine(words []string, iterations int) WordSet {
	acc := NewWordSet()
	acc.AddAll(words)

	for i := 1; i <= iterations; i++ {
		before := acc.Len()
		acc.Merge(e.Hybrid(acc.Sorted()))
		grown := acc.Len() - before
		e.log.WithFields(logrus.Fields{
			"iteration": i,
			"added":     grown,
			"total":     acc.Len(),
		}).Debug("refinement pass complete")
		if grown == 0 {
			e.log.WithField("iteration", i).Debug("refinement reached fixed point")
			break
		}
	}
	return acc
}
