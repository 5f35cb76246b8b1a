package domain

import "strings"

// Unit is the closed enumeration of element quantity units.
type Unit string

const (
	UnitM      Unit = "m"
	UnitM2     Unit = "m2"
	UnitM3     Unit = "m3"
	UnitKG     Unit = "kg"
	UnitL      Unit = "l"
	UnitPcs    Unit = "pcs"
	UnitTonnes Unit = "tonnes"
	UnitTKM    Unit = "tonnes_km"
	UnitNone   Unit = ""
)

var units = map[Unit]struct{}{
	UnitM:      {},
	UnitM2:     {},
	UnitM3:     {},
	UnitKG:     {},
	UnitL:      {},
	UnitPcs:    {},
	UnitTonnes: {},
	UnitTKM:    {},
}

// ParseUnit normalizes a raw unit string to the enumeration. The empty
// string is the "no unit" value. Anything else outside the enumeration
// is a ValidationError.
func ParseUnit(raw string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(raw)))
	if u == UnitNone {
		return UnitNone, nil
	}
	if _, ok := units[u]; !ok {
		return UnitNone, ValidationError{Message: "unknown unit: " + raw}
	}
	return u, nil
}

func (u Unit) String() string {
	return string(u)
}
