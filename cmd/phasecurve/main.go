// Command phasecurve computes a disk-integrated phase curve from a NetCDF
// surface-sample file and writes it as CSV on stdout, one row per phase.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/exoclimes/phasecurve-api/internal/adapter/store/atmos"
	"github.com/exoclimes/phasecurve-api/internal/usecase"
)

func main() {
	input := flag.String("input", "", "Path to NetCDF sample file (required)")
	phasesArg := flag.String("phases", "", "Comma-separated phase list (default: 11 evenly spaced in [0,1])")
	smoothing := flag.Float64("smoothing", 0, "RBF smoothing parameter (default: 0.1)")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	phases, err := parsePhases(*phasesArg)
	if err != nil {
		log.Fatalf("Invalid -phases: %v", err)
	}

	samples, err := atmos.NewStore(*input).LoadSamples()
	if err != nil {
		log.Fatalf("Failed to load samples: %v", err)
	}
	log.Printf("Loaded %d surface points, %d mu bins from %s",
		samples.Lon.Size(), len(samples.Mus), *input)

	uc := usecase.NewComputeUseCase(*smoothing)
	resp, err := uc.Execute(usecase.ComputeRequest{
		Phases:    phases,
		Lon:       samples.Lon,
		Lat:       samples.Lat,
		Mus:       samples.Mus,
		Intensity: samples.Intensity,
	})
	if err != nil {
		log.Fatalf("Computation failed: %v", err)
	}

	if err := writeCSV(os.Stdout, resp); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// parsePhases parses a comma-separated float list; empty means defaults.
func parsePhases(arg string) ([]float64, error) {
	if arg == "" {
		return nil, nil
	}
	parts := strings.Split(arg, ",")
	phases := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad phase %q: %w", p, err)
		}
		phases[i] = v
	}
	return phases, nil
}

// writeCSV writes one row per phase: the phase value followed by the flux of
// every wavelength channel.
func writeCSV(out *os.File, resp *usecase.ComputeResponse) error {
	w := csv.NewWriter(out)

	header := make([]string, 1+resp.Channels)
	header[0] = "phase"
	for c := 0; c < resp.Channels; c++ {
		header[c+1] = fmt.Sprintf("flux_%d", c)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, phase := range resp.Phases {
		row := make([]string, 1+resp.Channels)
		row[0] = strconv.FormatFloat(phase, 'g', -1, 64)
		for c, v := range resp.Flux[i] {
			row[c+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
