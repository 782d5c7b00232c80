package models

// Specialty is the fixed set of trade categories an item can be tagged with.
// Values match the printed receipts, accents included.
type Specialty string

const (
	SpecialtyEstructura        Specialty = "Estructura"
	SpecialtyElectrico         Specialty = "Eléctrico"
	SpecialtyCivil             Specialty = "Civil"
	SpecialtyFierro            Specialty = "Fierro"
	SpecialtyValvulas          Specialty = "Válvulas"
	SpecialtyInstrumentacion   Specialty = "Instrumentación"
	SpecialtyMecanicaEquipos   Specialty = "Mecánica Equipos"
	SpecialtyElectricosEquipos Specialty = "Eléctricos Equipos"
	SpecialtyCanerias          Specialty = "Cañerías"
)

// AllSpecialties returns the enum in display order.
func AllSpecialties() []Specialty {
	return []Specialty{
		SpecialtyEstructura,
		SpecialtyElectrico,
		SpecialtyCivil,
		SpecialtyFierro,
		SpecialtyValvulas,
		SpecialtyInstrumentacion,
		SpecialtyMecanicaEquipos,
		SpecialtyElectricosEquipos,
		SpecialtyCanerias,
	}
}

// ParseSpecialty matches s against the enum, case-sensitive. Unknown values
// return false rather than minting new categories.
func ParseSpecialty(s string) (Specialty, bool) {
	for _, sp := range AllSpecialties() {
		if string(sp) == s {
			return sp, true
		}
	}
	return "", false
}
