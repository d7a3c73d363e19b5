// Package unit: the catalogue of base vectors, derived dimensions and
// canonical physical constants. Everything here is pure declarative
// composition, initialized once at package load and never mutated.
package unit

// The six base dimension vectors.
var (
	Time        = Base(DimTime)        // [T], seconds
	Length      = Base(DimLength)      // [L], meters
	Mass        = Base(DimMass)        // [M], kilograms
	Current     = Base(DimCurrent)     // [I], amperes
	Temperature = Base(DimTemperature) // [K], kelvin
	Amount      = Base(DimAmount)      // [N], mol
)

// Derived dimensions of classical and quantum mechanics.
var (
	Speed     = Length.Div(Time)
	Frequency = Time.Pow(-1)
	Energy    = Mass.Mul(Speed.Pow(2)) // the Hamiltonian dimension, Joule
	Action    = Energy.Mul(Time)       // action / angular momentum
	Area      = Length.Pow(2)
	Volume    = Length.Pow(3)
	Density   = Volume.Pow(-1) // particle density
	Momentum  = Mass.Mul(Speed)
	Force     = Momentum.Div(Time)
	Gravity   = Length.Pow(3).Mul(Mass.Pow(-1)).Mul(Time.Pow(-2)) // dimension of G
)

// Derived dimensions of electrodynamics.
var (
	Charge    = Current.Div(Speed).Div(Area).Div(Density) // reduces to I·T
	Potential = Energy.Div(Current)                       // electric potential
	EField    = Potential.Div(Length)                     // electric field
	DField    = Energy.Div(EField).Div(Volume)            // polarization field
	BField    = Force.Div(Current).Div(Length)            // magnetic field
	MField    = Energy.Div(BField).Div(Volume)            // magnetic polarization field
)

// Derived dimensions of statistical mechanics.
var (
	Entropy           = Energy.Div(Temperature)
	Boltzmann         = Entropy.Div(Temperature) // dimension assigned to k_B
	Pressure          = Energy.Div(Volume)
	ChemicalPotential = Energy.Div(Density)
	HeatCapacity      = Boltzmann
	Avogadro          = Amount.Pow(-1) // dimension of N_A
)

// SI values of the canonical physical constants (2019 SI definitions
// where exact).
const (
	speedOfLight     = 299792458       // m/s, exact
	reducedPlanck    = 1.054571817e-34 // J·s
	gravitation      = 6.6743e-11      // m³/(kg·s²)
	elementaryCharge = 1.602176634e-19 // C, exact
	boltzmannConst   = 1.380649e-23    // J/K, exact
	avogadroConst    = 6.02214076e23   // 1/mol, exact
	electronMass     = 9.10938356e-31  // kg
)

// Canonical constants: the six that define the Planck and natural unit
// spaces, plus the electron rest mass.
var (
	C    = Constant{Name: "c", Unit: Speed, Value: speedOfLight}
	Hbar = Constant{Name: "hbar", Unit: Action, Value: reducedPlanck}
	G    = Constant{Name: "G", Unit: Gravity, Value: gravitation}
	Qe   = Constant{Name: "e", Unit: Charge, Value: elementaryCharge}
	KB   = Constant{Name: "kB", Unit: Boltzmann, Value: boltzmannConst}
	NA   = Constant{Name: "NA", Unit: Avogadro, Value: avogadroConst}
	Me   = Constant{Name: "me", Unit: Mass, Value: electronMass}
)
