// Package atmos reads and writes surface-intensity sample sets as NetCDF,
// the interchange format of the upstream atmospheric-model pipeline.
//
// Two layouts are accepted, mirroring the shapes the compute engine takes:
//
//   - flattened: dims (point, wavelength, mu); vars lon(point), lat(point),
//     mu(mu), intensity(point, wavelength, mu)
//   - gridded: dims (y, x, wavelength, mu); vars lon(y,x), lat(y,x),
//     mu(mu), intensity(y, x, wavelength, mu)
package atmos

import (
	"fmt"

	"github.com/fhs/go-netcdf/netcdf"

	"github.com/exoclimes/phasecurve-api/internal/domain"
)

// Store loads sample sets from a NetCDF file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given NetCDF file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// LoadSamples reads the full sample set. Rank validation beyond what the
// file format forces is left to the compute engine.
func (s *Store) LoadSamples() (*domain.SampleSet, error) {
	nc, err := netcdf.OpenFile(s.path, netcdf.NOWRITE)
	if err != nil {
		return nil, fmt.Errorf("failed to open NetCDF file: %w", err)
	}
	defer func() { _ = nc.Close() }()

	lon, err := readVar(nc, "lon", "longitude")
	if err != nil {
		return nil, err
	}
	lat, err := readVar(nc, "lat", "latitude")
	if err != nil {
		return nil, err
	}
	mu, err := readVar(nc, "mu", "mus")
	if err != nil {
		return nil, err
	}
	if mu.Rank() != 1 {
		return nil, fmt.Errorf("mu variable must be 1-D, got %dD", mu.Rank())
	}
	intensity, err := readVar(nc, "intensity", "radiance")
	if err != nil {
		return nil, err
	}

	return &domain.SampleSet{
		Lon:       lon,
		Lat:       lat,
		Mus:       mu.Data,
		Intensity: intensity,
	}, nil
}

// WriteSamples writes a sample set using the layout implied by the lon/lat
// rank. Used by the sample generator and by tests.
func WriteSamples(path string, s *domain.SampleSet) error {
	f, err := netcdf.CreateFile(path, netcdf.CLOBBER)
	if err != nil {
		return fmt.Errorf("failed to create NetCDF file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var coordDims []netcdf.Dim
	switch s.Lon.Rank() {
	case 1:
		d, err := f.AddDim("point", uint64(s.Lon.Shape[0]))
		if err != nil {
			return err
		}
		coordDims = []netcdf.Dim{d}
	case 2:
		dy, err := f.AddDim("y", uint64(s.Lon.Shape[0]))
		if err != nil {
			return err
		}
		dx, err := f.AddDim("x", uint64(s.Lon.Shape[1]))
		if err != nil {
			return err
		}
		coordDims = []netcdf.Dim{dy, dx}
	default:
		return fmt.Errorf("lon must be 1-D or 2-D, got %dD", s.Lon.Rank())
	}

	rank := s.Intensity.Rank()
	if rank != len(coordDims)+2 {
		return fmt.Errorf("intensity rank %d does not match coordinate rank %d", rank, s.Lon.Rank())
	}
	wavelengthDim, err := f.AddDim("wavelength", uint64(s.Intensity.Shape[rank-2]))
	if err != nil {
		return err
	}
	muDim, err := f.AddDim("mu", uint64(len(s.Mus)))
	if err != nil {
		return err
	}

	vlon, err := f.AddVar("lon", netcdf.DOUBLE, coordDims)
	if err != nil {
		return err
	}
	vlat, err := f.AddVar("lat", netcdf.DOUBLE, coordDims)
	if err != nil {
		return err
	}
	vmu, err := f.AddVar("mu", netcdf.DOUBLE, []netcdf.Dim{muDim})
	if err != nil {
		return err
	}
	intensityDims := append(append([]netcdf.Dim{}, coordDims...), wavelengthDim, muDim)
	vint, err := f.AddVar("intensity", netcdf.DOUBLE, intensityDims)
	if err != nil {
		return err
	}

	if err := f.EndDef(); err != nil {
		return fmt.Errorf("failed to end define mode: %w", err)
	}

	if err := vlon.WriteFloat64s(s.Lon.Data); err != nil {
		return fmt.Errorf("failed to write lon: %w", err)
	}
	if err := vlat.WriteFloat64s(s.Lat.Data); err != nil {
		return fmt.Errorf("failed to write lat: %w", err)
	}
	if err := vmu.WriteFloat64s(s.Mus); err != nil {
		return fmt.Errorf("failed to write mu: %w", err)
	}
	if err := vint.WriteFloat64s(s.Intensity.Data); err != nil {
		return fmt.Errorf("failed to write intensity: %w", err)
	}
	return nil
}

// readVar reads a variable of any rank into a flat array, trying each
// candidate name in order. float32 and int data are widened to float64.
func readVar(nc netcdf.Dataset, names ...string) (domain.Array, error) {
	var v netcdf.Var
	found := false
	for _, name := range names {
		if cand, err := nc.Var(name); err == nil {
			v = cand
			found = true
			break
		}
	}
	if !found {
		return domain.Array{}, fmt.Errorf("variable not found (tried: %v)", names)
	}

	dims, err := v.Dims()
	if err != nil {
		return domain.Array{}, fmt.Errorf("failed to get dimensions: %w", err)
	}
	shape := make([]int, len(dims))
	total := 1
	for i, d := range dims {
		n, err := d.Len()
		if err != nil {
			return domain.Array{}, fmt.Errorf("failed to get dimension length: %w", err)
		}
		shape[i] = int(n)
		total *= int(n)
	}

	t, err := v.Type()
	if err != nil {
		return domain.Array{}, fmt.Errorf("failed to get variable type: %w", err)
	}

	var data []float64
	switch t {
	case netcdf.DOUBLE:
		data = make([]float64, total)
		if err := v.ReadFloat64s(data); err != nil {
			return domain.Array{}, err
		}
	case netcdf.FLOAT:
		tmp := make([]float32, total)
		if err := v.ReadFloat32s(tmp); err != nil {
			return domain.Array{}, err
		}
		data = make([]float64, total)
		for i, val := range tmp {
			data[i] = float64(val)
		}
	case netcdf.INT:
		tmp := make([]int32, total)
		if err := v.ReadInt32s(tmp); err != nil {
			return domain.Array{}, err
		}
		data = make([]float64, total)
		for i, val := range tmp {
			data[i] = float64(val)
		}
	default:
		return domain.Array{}, fmt.Errorf("unsupported var type: %v", t)
	}

	return domain.NewArray(shape, data)
}
