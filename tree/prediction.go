package tree

import (
	"fmt"
	"strings"

	"github.com/CanDIG/ID3-Sickkids-Project/genome"
)

/*
Prediction represents the ancestry prediction a tree node makes: the
probability of each population among the individuals the node covered
while growing.
*/
type Prediction struct {
	probabilities map[string]float64
	weight        int
}

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromSample is the error returned by the Predict method
of a tree when the prediction cannot be made because the tree itself
has no prediction for that kind of individual, as opposed to cases
where the individual's variant presence cannot be obtained.
*/
const ErrCannotPredictFromSample = PredictionError("no prediction available for this kind of individual")

/*
ErrCannotPredictFromEmptyDistribution is the error returned when trying
to build a prediction from a distribution with no individuals.
*/
const ErrCannotPredictFromEmptyDistribution = PredictionError("cannot make prediction from empty distribution")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
NewPrediction takes a population count distribution and returns a
prediction with the probability of each counted population, or an
ErrCannotPredictFromEmptyDistribution error if the distribution has no
individuals.
*/
func NewPrediction(d genome.Distribution) (*Prediction, error) {
	weight := d.Total()
	if weight == 0 {
		return nil, ErrCannotPredictFromEmptyDistribution
	}
	probs := make(map[string]float64)
	for population, count := range d {
		if count > 0 {
			probs[population] = float64(count) / float64(weight)
		}
	}
	return &Prediction{probs, weight}, nil
}

/*
ProbabilityOf takes a population label and returns the float64
probability of that population according to the prediction.
*/
func (p *Prediction) ProbabilityOf(population string) float64 {
	return p.probabilities[population]
}

/*
Probabilities returns a map of population label to float64 containing
the probabilities of each predicted population
*/
func (p *Prediction) Probabilities() map[string]float64 {
	return p.probabilities
}

/*
Weight returns the weight of the prediction: an int equal to the number
of individuals the prediction was made from
*/
func (p *Prediction) Weight() int {
	return p.weight
}

/*
PredictedPopulation returns a string with the most probable population
and a float64 with its prevalence
*/
func (p *Prediction) PredictedPopulation() (population string, prob float64) {
	for k, v := range p.probabilities {
		if v > prob {
			population = k
			prob = v
		}
	}
	return
}

func (p *Prediction) String() string {
	return strings.Replace(fmt.Sprintf("%v", p.probabilities), "map", "", 1)
}
