package id3

import (
	"math"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
)

/*
Scorer is an interface wrapping the Score method, which rates how good
a split is: it takes the population distribution of the node being
split and the distributions of its with-variant and without-variant
branches, and returns a score where higher is better.

Scorers consume only the counting primitives the split engine produces,
so the engine itself stays free of statistical criteria.
*/
type Scorer interface {
	Score(parent, with, without genome.Distribution) float64
}

/*
ScorerFunc wraps a function with the Score method signature to
implement the Scorer interface
*/
type ScorerFunc func(parent, with, without genome.Distribution) float64

// Score invokes the ScorerFunc with its parameters and returns its
// float64 result.
func (sf ScorerFunc) Score(parent, with, without genome.Distribution) float64 {
	return sf(parent, with, without)
}

/*
InformationGain returns a Scorer that rates a split by the reduction in
entropy of the population distribution it achieves: the entropy of the
node being split minus the entropy of each branch weighted by the
fraction of individuals it keeps.
*/
func InformationGain() Scorer {
	return ScorerFunc(func(parent, with, without genome.Distribution) float64 {
		total := float64(parent.Total())
		if total == 0 {
			return 0.0
		}
		gain := entropy(parent)
		gain -= entropy(with) * float64(with.Total()) / total
		gain -= entropy(without) * float64(without.Total()) / total
		return gain
	})
}

func entropy(d genome.Distribution) float64 {
	total := float64(d.Total())
	if total == 0 {
		return 0.0
	}
	var result float64
	for _, count := range d {
		if count == 0 {
			continue
		}
		prob := float64(count) / total
		result -= prob * math.Log(prob)
	}
	return result
}
