package optics

// Properties is the sum type over optical-interface configurations
// (OpticalProperties in the data model). The set of kinds is closed and
// small, so — per the usual Go idiom for that shape of problem — it is
// modeled as an interface with one implementing struct per kind and the
// element library type-switches over it, rather than a class hierarchy.
type Properties interface {
	Kind() string
}

// LensProps is a thin lens: paraxial refraction with no surface physics.
// EFLmm is the effective focal length in millimeters; positive converges.
type LensProps struct {
	EFLmm float64 `json:"efl_mm" yaml:"efl_mm"`
}

// Kind implements Properties.
func (LensProps) Kind() string { return "lens" }

// MirrorProps is a reflective interface, flat or curved.
type MirrorProps struct {
	Reflectivity float64 `json:"reflectivity" yaml:"reflectivity"` // fraction in [0,1]
}

// Kind implements Properties.
func (MirrorProps) Kind() string { return "mirror" }

// RefractiveProps is a Snell/Fresnel dielectric interface. N1 is the index
// on the segment's -normal side, N2 on the +normal side.
type RefractiveProps struct {
	N1 float64 `json:"n1" yaml:"n1"`
	N2 float64 `json:"n2" yaml:"n2"`
}

// Kind implements Properties.
func (RefractiveProps) Kind() string { return "refractive_interface" }

// BeamsplitterProps is either a fixed-ratio non-polarizing splitter or, when
// IsPolarizing is set, a polarizing beamsplitter whose split follows
// Malus's law against PBSTransmissionAxisDeg (ignoring SplitT/SplitR).
type BeamsplitterProps struct {
	SplitT                 float64 `json:"split_T" yaml:"split_t"`
	SplitR                 float64 `json:"split_R" yaml:"split_r"`
	IsPolarizing           bool    `json:"is_polarizing" yaml:"is_polarizing"`
	PBSTransmissionAxisDeg float64 `json:"pbs_transmission_axis_deg" yaml:"pbs_transmission_axis_deg"`
}

// Kind implements Properties.
func (BeamsplitterProps) Kind() string { return "beamsplitter" }

// WaveplateProps is a retarder: 90 deg is quarter-wave, 180 deg half-wave.
type WaveplateProps struct {
	PhaseShiftDeg float64 `json:"phase_shift_deg" yaml:"phase_shift_deg"`
	FastAxisDeg   float64 `json:"fast_axis_deg" yaml:"fast_axis_deg"`
}

// Kind implements Properties.
func (WaveplateProps) Kind() string { return "waveplate" }

// PassType selects which side of the cutoff wavelength a Dichroic transmits.
type PassType string

const (
	Longpass  PassType = "longpass"
	Shortpass PassType = "shortpass"
)

// DichroicProps is a wavelength-dependent mirror/transmitter with a smooth
// transition centered on CutoffNM.
type DichroicProps struct {
	CutoffNM          float64  `json:"cutoff_wavelength_nm" yaml:"cutoff_wavelength_nm"`
	TransitionWidthNM float64  `json:"transition_width_nm" yaml:"transition_width_nm"`
	PassType          PassType `json:"pass_type" yaml:"pass_type"`
}

// Kind implements Properties.
func (DichroicProps) Kind() string { return "dichroic" }
