package arbor

import "math"

/*
splitEntropy returns the expected conditional entropy of the goal over
the rows rowIdx[start:end) after splitting them on the categories of
the attribute column attr:

	H(G | A) = -sum_v (n_v / N) * sum_g (n_vg / n_v) * log2(n_vg / n_v)

with 0*log2(0) taken as 0. The per-category histogram of attr is left
in headerScratch and the count matrix in samples; neither the row
index slice nor anything else is mutated.
*/
func (b *builder) splitEntropy(attr, start, end int) float64 {
	aCats := b.cats[attr].Count()
	gCats := b.goalCats

	header := b.headerScratch[:aCats]
	for i := range header {
		header[i] = 0
	}
	samples := b.samples[:aCats*gCats]
	for i := range samples {
		samples[i] = 0
	}

	for _, r := range b.rowIdx[start:end] {
		av := int(b.at(attr, r))
		gv := int(b.at(b.goal, r))
		samples[av*gCats+gv]++
		header[av]++
	}

	n := float64(end - start)
	var mean float64
	for i := 0; i < aCats; i++ {
		inCategory := float64(header[i])
		var entropy float64
		// Accumulate entropy * n_v rather than entropy; the weighted
		// average needs the product anyway.
		for j := 0; j < gCats; j++ {
			s := float64(samples[i*gCats+j])
			if s != 0 {
				entropy += s * math.Log2(s/inCategory)
			}
		}
		mean += entropy / n
	}
	return -mean
}
