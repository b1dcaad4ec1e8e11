package genome

/*
Distribution maps population labels to individual counts. Distributions
produced against a catalog carry an explicit entry for every label on
the ancestry universe.
*/
type Distribution map[string]int

// Total returns the sum of the counts on the distribution.
func (d Distribution) Total() int {
	var total int
	for _, c := range d {
		total += c
	}
	return total
}

// Populations returns the number of labels on the distribution with a
// count greater than zero.
func (d Distribution) Populations() int {
	var n int
	for _, c := range d {
		if c > 0 {
			n++
		}
	}
	return n
}

/*
Minus returns a new distribution with, for every label on the
distribution, its count minus the count for the label on the other
distribution.
*/
func (d Distribution) Minus(other Distribution) Distribution {
	result := make(Distribution, len(d))
	for label, c := range d {
		result[label] = c - other[label]
	}
	return result
}
