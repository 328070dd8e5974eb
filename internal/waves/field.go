package waves

import "github.com/go-gl/mathgl/mgl64"

// Parameters are the fractal wave settings. The renderer receives the same
// values as shader uniforms every frame.
type Parameters struct {
	Amplitude   float64 `yaml:"amplitude"`
	Frequency   float64 `yaml:"frequency"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
	Iterations  int     `yaml:"iterations"`
	Speed       float64 `yaml:"speed"`
}

// DefaultParameters returns the reference water settings.
func DefaultParameters() Parameters {
	return Parameters{
		Amplitude:   0.025,
		Frequency:   1.07,
		Persistence: 0.3,
		Lacunarity:  2.18,
		Iterations:  8,
		Speed:       0.4,
	}
}

// Elevation returns the surface offset at plane coordinates (x, z) and time t.
// Zero or negative Iterations yield exactly 0.
func Elevation(x, z, t float64, p Parameters) float64 {
	if p.Iterations <= 0 {
		return 0
	}

	elevation := 0.0
	amplitude := 1.0
	frequency := p.Frequency
	phase := t * p.Speed

	for i := 0; i < p.Iterations; i++ {
		elevation += amplitude * Noise2(x*frequency+phase, z*frequency+phase)
		amplitude *= p.Persistence
		frequency *= p.Lacunarity
	}

	return elevation * p.Amplitude
}

// Sampler reports the world-space water height under a point.
type Sampler interface {
	HeightAt(x, z, t float64) float64
}

// Field is a water plane with its origin in world space.
type Field struct {
	params Parameters
	origin mgl64.Vec3
}

func NewField(p Parameters, origin mgl64.Vec3) *Field {
	return &Field{params: p, origin: origin}
}

func (f *Field) Params() Parameters     { return f.params }
func (f *Field) SetParams(p Parameters) { f.params = p }
func (f *Field) Origin() mgl64.Vec3     { return f.origin }

// HeightAt returns the world height of the surface at world (x, z).
func (f *Field) HeightAt(x, z, t float64) float64 {
	return Elevation(x-f.origin.X(), z-f.origin.Z(), t, f.params) + f.origin.Y()
}
