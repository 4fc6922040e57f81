// Package atom defines the atom typing vocabulary consumed by the scoring
// terms: the coarse interaction (XS) types with their chemical predicates, the
// fine-grained AutoDock (AD) types used for solvation and volume lookups, and
// the Atom value that carries both together with a partial charge.
//
// Everything here is plain immutable data.  The tables are package-level and
// read-only so they are safe for unlimited concurrent access.
package atom

import (
	"fmt"
	"math"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// XSType: coarse interaction type
// ─────────────────────────────────────────────────────────────────────────────

// XSType classifies an atom for pairwise interaction purposes.
type XSType int

const (
	XSCarbonH XSType = iota
	XSCarbonP
	XSNitrogenP
	XSNitrogenD
	XSNitrogenA
	XSNitrogenDA
	XSOxygenP
	XSOxygenD
	XSOxygenA
	XSOxygenDA
	XSSulfurP
	XSPhosphorusP
	XSFluorineH
	XSChlorineH
	XSBromineH
	XSIodineH
	XSMetalD
	// Aromatic carbons, split by whether they are bonded to a heteroatom.
	XSCarbonAromaticH
	XSCarbonAromaticP

	// XSTypeSize is the number of defined XS types.
	XSTypeSize
)

type xsProperty struct {
	name   string
	radius float64
}

// xsProperties is indexed by XSType.
var xsProperties = [XSTypeSize]xsProperty{
	XSCarbonH:         {"C_H", 1.9},
	XSCarbonP:         {"C_P", 1.9},
	XSNitrogenP:       {"N_P", 1.8},
	XSNitrogenD:       {"N_D", 1.8},
	XSNitrogenA:       {"N_A", 1.8},
	XSNitrogenDA:      {"N_DA", 1.8},
	XSOxygenP:         {"O_P", 1.7},
	XSOxygenD:         {"O_D", 1.7},
	XSOxygenA:         {"O_A", 1.7},
	XSOxygenDA:        {"O_DA", 1.7},
	XSSulfurP:         {"S_P", 2.0},
	XSPhosphorusP:     {"P_P", 2.1},
	XSFluorineH:       {"F_H", 1.5},
	XSChlorineH:       {"Cl_H", 1.8},
	XSBromineH:        {"Br_H", 2.0},
	XSIodineH:         {"I_H", 2.2},
	XSMetalD:          {"Met_D", 1.2},
	XSCarbonAromaticH: {"C_AR_H", 1.9},
	XSCarbonAromaticP: {"C_AR_P", 1.9},
}

// Valid reports whether t is one of the defined XS types.
func (t XSType) Valid() bool {
	return t >= 0 && t < XSTypeSize
}

// String returns the conventional XS type name, e.g. "N_DA".
func (t XSType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("XSType(%d)", int(t))
	}
	return xsProperties[t].name
}

// Radius is the interaction radius in Å.  Invalid types yield 0.
func (t XSType) Radius() float64 {
	if !t.Valid() {
		return 0
	}
	return xsProperties[t].radius
}

// IsHydrophobic reports whether t is a non-polar carbon or a halogen.
func (t XSType) IsHydrophobic() bool {
	switch t {
	case XSCarbonH, XSCarbonAromaticH, XSFluorineH, XSChlorineH, XSBromineH, XSIodineH:
		return true
	}
	return false
}

// IsAcceptor reports whether t can accept a hydrogen bond.
func (t XSType) IsAcceptor() bool {
	switch t {
	case XSNitrogenA, XSNitrogenDA, XSOxygenA, XSOxygenDA:
		return true
	}
	return false
}

// IsDonor reports whether t can donate a hydrogen bond.  Metals count as donors.
func (t XSType) IsDonor() bool {
	switch t {
	case XSNitrogenD, XSNitrogenDA, XSOxygenD, XSOxygenDA, XSMetalD:
		return true
	}
	return false
}

// IsHalogen reports whether t is one of the polarisable halogens that form
// halogen bonds.  Fluorine is excluded.
func (t XSType) IsHalogen() bool {
	switch t {
	case XSChlorineH, XSBromineH, XSIodineH:
		return true
	}
	return false
}

// IsAromatic reports whether t is an aromatic carbon.
func (t XSType) IsAromatic() bool {
	return t == XSCarbonAromaticH || t == XSCarbonAromaticP
}

// IsSulfur reports whether t is sulfur.
func (t XSType) IsSulfur() bool {
	return t == XSSulfurP
}

// IsMetal reports whether t is the generic metal donor type.
func (t XSType) IsMetal() bool {
	return t == XSMetalD
}

// HBondPossible reports whether one of t1, t2 is a donor and the other an acceptor.
func HBondPossible(t1, t2 XSType) bool {
	return (t1.IsDonor() && t2.IsAcceptor()) || (t2.IsDonor() && t1.IsAcceptor())
}

// OptimalDistance is the sum of the two interaction radii.
func OptimalDistance(t1, t2 XSType) float64 {
	return t1.Radius() + t2.Radius()
}

// ParseXSType resolves an XS type name.  Matching is case-insensitive.
func ParseXSType(s string) (XSType, error) {
	for i := XSType(0); i < XSTypeSize; i++ {
		if strings.EqualFold(xsProperties[i].name, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown XS type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t XSType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid XS type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *XSType) UnmarshalText(b []byte) error {
	v, err := ParseXSType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// ADType: fine-grained AutoDock type
// ─────────────────────────────────────────────────────────────────────────────

// ADType is the fine-grained AutoDock 4 atom type.  The zero value ADNone
// means the atom carries no fine-grained type.
type ADType int

const (
	ADNone ADType = iota
	ADCarbon
	ADAromaticCarbon
	ADNitrogen
	ADOxygen
	ADPhosphorus
	ADSulfur
	ADHydrogen
	ADFluorine
	ADIodine
	ADNitrogenAcceptor
	ADOxygenAcceptor
	ADSulfurAcceptor
	ADHydrogenDonor
	ADMagnesium
	ADManganese
	ADZinc
	ADCalcium
	ADIron
	ADChlorine
	ADBromine

	// ADTypeSize is one past the last defined AD type.
	ADTypeSize
)

// MetalSolvationParameter is the solvation parameter assigned to metal atoms
// that carry no fine-grained type.
const MetalSolvationParameter = -0.00110

type adProperty struct {
	name      string
	solvation float64
	volume    float64
}

// adProperties is indexed by ADType; the ADNone slot is never read.
var adProperties = [ADTypeSize]adProperty{
	ADCarbon:           {"C", -0.00143, 33.51030},
	ADAromaticCarbon:   {"A", -0.00052, 33.51030},
	ADNitrogen:         {"N", -0.00162, 22.44930},
	ADOxygen:           {"O", -0.00251, 17.15730},
	ADPhosphorus:       {"P", -0.00110, 38.79240},
	ADSulfur:           {"S", -0.00214, 33.51030},
	ADHydrogen:         {"H", 0.00051, 0.00000},
	ADFluorine:         {"F", -0.00110, 15.44800},
	ADIodine:           {"I", -0.00110, 55.05850},
	ADNitrogenAcceptor: {"NA", -0.00162, 22.44930},
	ADOxygenAcceptor:   {"OA", -0.00251, 17.15730},
	ADSulfurAcceptor:   {"SA", -0.00214, 33.51030},
	ADHydrogenDonor:    {"HD", 0.00051, 0.00000},
	ADMagnesium:        {"Mg", -0.00110, 1.56000},
	ADManganese:        {"Mn", -0.00110, 2.14000},
	ADZinc:             {"Zn", -0.00110, 1.70000},
	ADCalcium:          {"Ca", -0.00110, 2.77000},
	ADIron:             {"Fe", -0.00110, 1.84000},
	ADChlorine:         {"Cl", -0.00110, 35.82350},
	ADBromine:          {"Br", -0.00110, 42.56610},
}

// Valid reports whether t is a real fine-grained type (not ADNone).
func (t ADType) Valid() bool {
	return t > ADNone && t < ADTypeSize
}

func (t ADType) String() string {
	if t == ADNone {
		return ""
	}
	if !t.Valid() {
		return fmt.Sprintf("ADType(%d)", int(t))
	}
	return adProperties[t].name
}

// ParseADType resolves an AutoDock type name.  The empty string yields ADNone.
// Matching is case-sensitive because "A" and "a" style names are distinct in
// PDBQT files.
func ParseADType(s string) (ADType, error) {
	if s == "" {
		return ADNone, nil
	}
	for i := ADNone + 1; i < ADTypeSize; i++ {
		if adProperties[i].name == s {
			return i, nil
		}
	}
	return ADNone, fmt.Errorf("unknown AD type %q", s)
}

func (t ADType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ADType) UnmarshalText(b []byte) error {
	v, err := ParseADType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Atom
// ─────────────────────────────────────────────────────────────────────────────

// Atom is the per-atom input of the pairwise terms.
type Atom struct {
	XS     XSType  `json:"xs"`
	AD     ADType  `json:"ad,omitempty"`
	Charge float64 `json:"charge,omitempty"`
}

// SolvationParameter returns the AD4 solvation parameter of a.  Atoms without
// a fine-grained type only resolve when they are metals; ok is false otherwise.
func SolvationParameter(a Atom) (solvation float64, ok bool) {
	if a.AD.Valid() {
		return adProperties[a.AD].solvation, true
	}
	if a.XS == XSMetalD {
		return MetalSolvationParameter, true
	}
	return 0, false
}

// Volume returns the AD4 van der Waals volume of a, falling back to the
// sphere volume of the XS radius when no fine-grained type is set.
func Volume(a Atom) float64 {
	if a.AD.Valid() {
		return adProperties[a.AD].volume
	}
	r := a.XS.Radius()
	return 4 * math.Pi / 3 * r * r * r
}

//Personal.AI order the ending
