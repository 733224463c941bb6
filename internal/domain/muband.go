package domain

// MuBandInterpolator linearly interpolates per-mu-bin intensity vectors at
// the fixed quadrature mu centers. Query mus outside the sampled range clamp
// to the nearest boundary bin; the boundary bin's value is used unmodified
// rather than extrapolating the interpolation formula.
//
// The bracket lookup depends only on the sample mus and the quadrature mu
// centers, neither of which changes during the phase loop, so it is resolved
// once at construction.
type MuBandInterpolator struct {
	nBins  int
	lower  []int     // per query mu: index of the lower bracketing sample bin
	frac   []float64 // per query mu: interpolation fraction, 0 when clamped
	interp []bool    // per query mu: false when clamped to a boundary bin
}

// NewMuBandInterpolator resolves the bracketing of each query mu against the
// sample mu bins. sampleMus must be strictly increasing; the bracketing logic
// silently assumes ordered bins, so this is validated up front.
func NewMuBandInterpolator(sampleMus, queryMus []float64) (*MuBandInterpolator, error) {
	if len(sampleMus) == 0 {
		return nil, &InvalidInputError{Reason: "mus must not be empty"}
	}
	for i := 1; i < len(sampleMus); i++ {
		if sampleMus[i] <= sampleMus[i-1] {
			return nil, &InvalidInputError{Reason: "mus must be strictly increasing"}
		}
	}

	mb := &MuBandInterpolator{
		nBins:  len(sampleMus),
		lower:  make([]int, len(queryMus)),
		frac:   make([]float64, len(queryMus)),
		interp: make([]bool, len(queryMus)),
	}

	last := len(sampleMus) - 1
	for i, m := range queryMus {
		switch {
		case m <= sampleMus[0]:
			mb.lower[i] = 0
		case m > sampleMus[last]:
			mb.lower[i] = last
		default:
			j := 0
			for m > sampleMus[j+1] {
				j++
			}
			mb.lower[i] = j
			mb.frac[i] = (m - sampleMus[j]) / (sampleMus[j+1] - sampleMus[j])
			mb.interp[i] = true
		}
	}
	return mb, nil
}

// BandValues fills out (length nLambda) with the intensity at query mu index
// iMu. values holds one sample's intensity flattened wavelength-major:
// values[w*nBins+j] is channel w at sample mu bin j.
func (mb *MuBandInterpolator) BandValues(values []float64, nLambda, iMu int, out []float64) {
	j := mb.lower[iMu]
	if !mb.interp[iMu] {
		for w := 0; w < nLambda; w++ {
			out[w] = values[w*mb.nBins+j]
		}
		return
	}
	t := mb.frac[iMu]
	for w := 0; w < nLambda; w++ {
		lo := values[w*mb.nBins+j]
		hi := values[w*mb.nBins+j+1]
		out[w] = lo + (hi-lo)*t
	}
}
