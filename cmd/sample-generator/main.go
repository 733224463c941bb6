// Command sample-generator writes a synthetic NetCDF surface-sample file
// for smoke-testing the phasecurve CLI and server end to end.
//
// The default scenario is a 31×11 lon/lat grid with 20 emission-angle
// cosines in [−1,1] and 10 wavelength channels.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/exoclimes/phasecurve-api/internal/adapter/store/atmos"
	"github.com/exoclimes/phasecurve-api/internal/domain"
)

func main() {
	out := flag.String("out", "./samples.nc", "Output NetCDF file path")
	nLon := flag.Int("nlon", 31, "Number of longitude grid points over [-180, 180]")
	nLat := flag.Int("nlat", 11, "Number of latitude grid points over [-90, 90]")
	nMu := flag.Int("nmu", 20, "Number of emission-angle cosines over [-1, 1]")
	channels := flag.Int("channels", 10, "Number of wavelength channels")
	pattern := flag.String("pattern", "cosine", "Intensity pattern: constant or cosine")
	flag.Parse()

	if *nLon < 2 || *nLat < 2 || *nMu < 2 || *channels < 1 {
		log.Fatalf("Grid dimensions too small: nlon=%d nlat=%d nmu=%d channels=%d",
			*nLon, *nLat, *nMu, *channels)
	}

	samples, err := generate(*nLon, *nLat, *nMu, *channels, *pattern)
	if err != nil {
		log.Fatalf("Failed to generate samples: %v", err)
	}

	if err := atmos.WriteSamples(*out, samples); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	log.Printf("Wrote %s: %d×%d grid, %d channels, %d mu bins (pattern: %s)",
		*out, *nLat, *nLon, *channels, *nMu, *pattern)
}

// generate builds a gridded sample set. The cosine pattern is brightest at
// the sub-stellar point (lon 0, lat 0) and fades toward the limb and poles;
// constant is uniformly 1.
func generate(nLon, nLat, nMu, channels int, pattern string) (*domain.SampleSet, error) {
	if pattern != "constant" && pattern != "cosine" {
		return nil, fmt.Errorf("unknown pattern: %s (use constant or cosine)", pattern)
	}

	lons := linspace(-180, 180, nLon)
	lats := linspace(-90, 90, nLat)
	mus := linspace(-1, 1, nMu)

	lon := make([]float64, 0, nLat*nLon)
	lat := make([]float64, 0, nLat*nLon)
	intensity := make([]float64, 0, nLat*nLon*channels*nMu)

	for _, la := range lats {
		for _, lo := range lons {
			lon = append(lon, lo)
			lat = append(lat, la)

			value := 1.0
			if pattern == "cosine" {
				value = math.Cos(domain.Deg2Rad(lo)) * math.Cos(domain.Deg2Rad(la))
			}

			for c := 0; c < channels; c++ {
				for m := 0; m < nMu; m++ {
					intensity = append(intensity, value)
				}
			}
		}
	}

	lonArr, err := domain.NewArray([]int{nLat, nLon}, lon)
	if err != nil {
		return nil, err
	}
	latArr, err := domain.NewArray([]int{nLat, nLon}, lat)
	if err != nil {
		return nil, err
	}
	intensityArr, err := domain.NewArray([]int{nLat, nLon, channels, nMu}, intensity)
	if err != nil {
		return nil, err
	}

	return &domain.SampleSet{
		Lon:       lonArr,
		Lat:       latArr,
		Mus:       mus,
		Intensity: intensityArr,
	}, nil
}

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
