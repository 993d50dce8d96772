// Package scenefile implements (de)serialization of optical elements,
// sources, and traced RayPaths to and from the wire formats an external
// caller supplies: JSON using the exact field names a scene author
// writes, plus a YAML mirror of the same shape. It is the engine's
// only package that knows about on-disk/over-the-wire shapes; everything
// downstream deals in pkg/element, pkg/source, and pkg/core types.
package scenefile

import (
	"fmt"

	"github.com/QPG-MIT/optiverse-sub001/pkg/core"
	"github.com/QPG-MIT/optiverse-sub001/pkg/element"
	"github.com/QPG-MIT/optiverse-sub001/pkg/geometry"
	qmath "github.com/QPG-MIT/optiverse-sub001/pkg/math"
	"github.com/QPG-MIT/optiverse-sub001/pkg/optics"
	"github.com/QPG-MIT/optiverse-sub001/pkg/source"
)

// ElementDoc is the wire shape of one optical element: geometry fields
// common to every element_type, plus exactly the kind-specific fields
// for whichever element_type is set. Unused kind-specific fields are
// simply left at their zero value, matching a hand-authored JSON/YAML
// scene file where only the relevant block is populated.
type ElementDoc struct {
	X1MM                float64 `json:"x1_mm" yaml:"x1_mm"`
	Y1MM                float64 `json:"y1_mm" yaml:"y1_mm"`
	X2MM                float64 `json:"x2_mm" yaml:"x2_mm"`
	Y2MM                float64 `json:"y2_mm" yaml:"y2_mm"`
	IsCurved            bool    `json:"is_curved" yaml:"is_curved"`
	RadiusOfCurvatureMM float64 `json:"radius_of_curvature_mm" yaml:"radius_of_curvature_mm"`

	ElementType string `json:"element_type" yaml:"element_type"`

	EFLmm        float64 `json:"efl_mm,omitempty" yaml:"efl_mm,omitempty"`
	Reflectivity float64 `json:"reflectivity,omitempty" yaml:"reflectivity,omitempty"`
	N1           float64 `json:"n1,omitempty" yaml:"n1,omitempty"`
	N2           float64 `json:"n2,omitempty" yaml:"n2,omitempty"`

	SplitT                 float64 `json:"split_T,omitempty" yaml:"split_t,omitempty"`
	SplitR                 float64 `json:"split_R,omitempty" yaml:"split_r,omitempty"`
	IsPolarizing           bool    `json:"is_polarizing,omitempty" yaml:"is_polarizing,omitempty"`
	PBSTransmissionAxisDeg float64 `json:"pbs_transmission_axis_deg,omitempty" yaml:"pbs_transmission_axis_deg,omitempty"`

	PhaseShiftDeg float64 `json:"phase_shift_deg,omitempty" yaml:"phase_shift_deg,omitempty"`
	FastAxisDeg   float64 `json:"fast_axis_deg,omitempty" yaml:"fast_axis_deg,omitempty"`

	CutoffWavelengthNM float64 `json:"cutoff_wavelength_nm,omitempty" yaml:"cutoff_wavelength_nm,omitempty"`
	TransitionWidthNM  float64 `json:"transition_width_nm,omitempty" yaml:"transition_width_nm,omitempty"`
	PassType           string  `json:"pass_type,omitempty" yaml:"pass_type,omitempty"`
}

// JonesDoc is the wire shape of a Jones vector: [[Ex_re, Ex_im], [Ey_re, Ey_im]].
type JonesDoc struct {
	Jones [2][2]float64 `json:"jones" yaml:"jones"`
}

// SourceDoc is the wire shape of one emitter.
type SourceDoc struct {
	XMM          float64  `json:"x_mm" yaml:"x_mm"`
	YMM          float64  `json:"y_mm" yaml:"y_mm"`
	AngleDeg     float64  `json:"angle_deg" yaml:"angle_deg"`
	SpreadDeg    float64  `json:"spread_deg" yaml:"spread_deg"`
	NRays        uint32   `json:"n_rays" yaml:"n_rays"`
	SizeMM       float64  `json:"size_mm" yaml:"size_mm"`
	RayLengthMM  float64  `json:"ray_length_mm" yaml:"ray_length_mm"`
	WavelengthNM float64  `json:"wavelength_nm" yaml:"wavelength_nm"`
	BaseRGB      [3]uint8 `json:"base_rgb" yaml:"base_rgb"`
	Polarization JonesDoc `json:"polarization" yaml:"polarization"`
}

// RayPathDoc is the wire shape of one terminated ray path.
type RayPathDoc struct {
	Points       [][2]float64 `json:"points" yaml:"points"`
	RGBA         [4]uint8     `json:"rgba" yaml:"rgba"`
	Polarization JonesDoc     `json:"polarization" yaml:"polarization"`
	WavelengthNM float64      `json:"wavelength_nm" yaml:"wavelength_nm"`
}

// SceneDoc bundles everything one trace call needs.
type SceneDoc struct {
	Elements []ElementDoc `json:"elements" yaml:"elements"`
	Sources  []SourceDoc  `json:"sources" yaml:"sources"`
}

func jonesToPolarization(j JonesDoc) optics.Polarization {
	return optics.NewPolarization(
		complex(j.Jones[0][0], j.Jones[0][1]),
		complex(j.Jones[1][0], j.Jones[1][1]),
	)
}

func polarizationToJones(p optics.Polarization) JonesDoc {
	return JonesDoc{Jones: [2][2]float64{
		{real(p.Ex), imag(p.Ex)},
		{real(p.Ey), imag(p.Ey)},
	}}
}

// ToElement converts one ElementDoc into an element.OpticalElement with
// the given ID, building its Segment and Properties from element_type.
func ToElement(id int, doc ElementDoc) (element.OpticalElement, error) {
	p1 := qmath.NewVec2(doc.X1MM, doc.Y1MM)
	p2 := qmath.NewVec2(doc.X2MM, doc.Y2MM)

	radius := 0.0
	if doc.IsCurved {
		radius = doc.RadiusOfCurvatureMM
	}
	geom := geometry.NewCurvedSegment(p1, p2, radius)

	props, err := toProperties(doc)
	if err != nil {
		return element.OpticalElement{}, fmt.Errorf("element %d: %w", id, err)
	}

	return element.OpticalElement{ID: id, Geometry: geom, Properties: props}, nil
}

func toProperties(doc ElementDoc) (optics.Properties, error) {
	switch doc.ElementType {
	case "lens":
		return optics.LensProps{EFLmm: doc.EFLmm}, nil
	case "mirror":
		return optics.MirrorProps{Reflectivity: doc.Reflectivity}, nil
	case "refractive_interface":
		return optics.RefractiveProps{N1: doc.N1, N2: doc.N2}, nil
	case "beamsplitter":
		return optics.BeamsplitterProps{
			SplitT:                 doc.SplitT,
			SplitR:                 doc.SplitR,
			IsPolarizing:           doc.IsPolarizing,
			PBSTransmissionAxisDeg: doc.PBSTransmissionAxisDeg,
		}, nil
	case "waveplate":
		return optics.WaveplateProps{PhaseShiftDeg: doc.PhaseShiftDeg, FastAxisDeg: doc.FastAxisDeg}, nil
	case "dichroic":
		passType, err := toPassType(doc.PassType)
		if err != nil {
			return nil, err
		}
		return optics.DichroicProps{
			CutoffNM:          doc.CutoffWavelengthNM,
			TransitionWidthNM: doc.TransitionWidthNM,
			PassType:          passType,
		}, nil
	default:
		return nil, fmt.Errorf("unknown element_type %q", doc.ElementType)
	}
}

func toPassType(s string) (optics.PassType, error) {
	switch optics.PassType(s) {
	case optics.Longpass:
		return optics.Longpass, nil
	case optics.Shortpass:
		return optics.Shortpass, nil
	default:
		return "", fmt.Errorf("unknown pass_type %q", s)
	}
}

// FromElement converts an element.OpticalElement back into its wire form.
func FromElement(e element.OpticalElement) ElementDoc {
	p1, p2 := e.Geometry.Endpoints()
	doc := ElementDoc{
		X1MM: p1.X, Y1MM: p1.Y,
		X2MM: p2.X, Y2MM: p2.Y,
	}
	if curved, ok := e.Geometry.(geometry.CurvedSegment); ok {
		doc.IsCurved = true
		doc.RadiusOfCurvatureMM = curved.R
	}

	switch p := e.Properties.(type) {
	case optics.LensProps:
		doc.ElementType = "lens"
		doc.EFLmm = p.EFLmm
	case optics.MirrorProps:
		doc.ElementType = "mirror"
		doc.Reflectivity = p.Reflectivity
	case optics.RefractiveProps:
		doc.ElementType = "refractive_interface"
		doc.N1, doc.N2 = p.N1, p.N2
	case optics.BeamsplitterProps:
		doc.ElementType = "beamsplitter"
		doc.SplitT, doc.SplitR = p.SplitT, p.SplitR
		doc.IsPolarizing = p.IsPolarizing
		doc.PBSTransmissionAxisDeg = p.PBSTransmissionAxisDeg
	case optics.WaveplateProps:
		doc.ElementType = "waveplate"
		doc.PhaseShiftDeg, doc.FastAxisDeg = p.PhaseShiftDeg, p.FastAxisDeg
	case optics.DichroicProps:
		doc.ElementType = "dichroic"
		doc.CutoffWavelengthNM = p.CutoffNM
		doc.TransitionWidthNM = p.TransitionWidthNM
		doc.PassType = string(p.PassType)
	}
	return doc
}

// ToSource converts a SourceDoc into a source.Source.
func ToSource(doc SourceDoc) source.Source {
	return source.Source{
		Position:     qmath.NewVec2(doc.XMM, doc.YMM),
		AngleDeg:     doc.AngleDeg,
		SpreadDeg:    doc.SpreadDeg,
		NRays:        doc.NRays,
		SizeMM:       doc.SizeMM,
		RayLengthMM:  doc.RayLengthMM,
		WavelengthNM: doc.WavelengthNM,
		BaseRGB:      doc.BaseRGB,
		Polarization: jonesToPolarization(doc.Polarization),
	}
}

// FromSource converts a source.Source back into its wire form.
func FromSource(s source.Source) SourceDoc {
	return SourceDoc{
		XMM:          s.Position.X,
		YMM:          s.Position.Y,
		AngleDeg:     s.AngleDeg,
		SpreadDeg:    s.SpreadDeg,
		NRays:        s.NRays,
		SizeMM:       s.SizeMM,
		RayLengthMM:  s.RayLengthMM,
		WavelengthNM: s.WavelengthNM,
		BaseRGB:      s.BaseRGB,
		Polarization: polarizationToJones(s.Polarization),
	}
}

// FromRayPath converts a traced core.RayPath into its wire form.
func FromRayPath(p core.RayPath) RayPathDoc {
	points := make([][2]float64, len(p.Points))
	for i, pt := range p.Points {
		points[i] = [2]float64{pt.X, pt.Y}
	}
	return RayPathDoc{
		Points:       points,
		RGBA:         p.RGBA,
		Polarization: polarizationToJones(p.Polarization),
		WavelengthNM: p.WavelengthNM,
	}
}

// ToElements converts a slice of ElementDocs, assigning each its index as ID.
func ToElements(docs []ElementDoc) ([]element.OpticalElement, error) {
	elements := make([]element.OpticalElement, len(docs))
	for i, doc := range docs {
		el, err := ToElement(i, doc)
		if err != nil {
			return nil, err
		}
		elements[i] = el
	}
	return elements, nil
}

// ToSources converts a slice of SourceDocs.
func ToSources(docs []SourceDoc) []source.Source {
	sources := make([]source.Source, len(docs))
	for i, doc := range docs {
		sources[i] = ToSource(doc)
	}
	return sources
}

// FromRayPaths converts a slice of traced RayPaths into their wire form.
func FromRayPaths(paths []core.RayPath) []RayPathDoc {
	docs := make([]RayPathDoc, len(paths))
	for i, p := range paths {
		docs[i] = FromRayPath(p)
	}
	return docs
}
