// Package lcax builds interchange documents for downstream whole-life
// carbon tooling. The document nests one assembly per schema element,
// with parts derived from the externally cataloged assembly layers.
package lcax

import (
	"strings"
	"time"
)

// formatVersion is the interchange schema version the documents conform
// to.
const formatVersion = "1.6.0"

// Date serializes as a bare calendar date.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" date.
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	parsed, err := ParseDate(strings.Trim(string(b), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Unit is the closed unit vocabulary of the interchange format.
type Unit string

const (
	UnitPCS     Unit = "pcs"
	UnitM       Unit = "m"
	UnitM2      Unit = "m2"
	UnitM3      Unit = "m3"
	UnitKG      Unit = "kg"
	UnitL       Unit = "l"
	UnitUnknown Unit = "unknown"
)

// ConvertUnit maps an arbitrary unit string into the closed vocabulary.
// Anything outside it becomes "unknown".
func ConvertUnit(raw string) Unit {
	switch Unit(strings.ToLower(raw)) {
	case UnitPCS, UnitM, UnitM2, UnitM3, UnitKG, UnitL:
		return Unit(strings.ToLower(raw))
	}
	return UnitUnknown
}

// Document is the root of an interchange export.
type Document struct {
	ID                   string              `json:"id"`
	Name                 string              `json:"name"`
	Description          string              `json:"description"`
	Comment              string              `json:"comment"`
	ClassificationSystem *string             `json:"classification_system"`
	EmissionParts        map[string]Assembly `json:"emission_parts"`
	FormatVersion        string              `json:"format_version"`
	ImpactCategories     []string            `json:"impact_categories"`
	LCIAMethod           string              `json:"lcia_method"`
	LifeCycleStages      []string            `json:"life_cycle_stages"`
	LifeSpan             int                 `json:"life_span"`
	Location             string              `json:"location"`
}

// Assembly is the document's view of one schema element.
type Assembly struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Classification []Classification `json:"classification,omitempty"`
	Parts          map[string]any   `json:"parts"`
	Quantity       float64          `json:"quantity"`
	Unit           Unit             `json:"unit"`
}

// Classification places an assembly in a known classification system.
type Classification struct {
	System string `json:"system"`
	Code   string `json:"code"`
	Name   string `json:"name"`
}

// Part is one assembly layer with its embedded declaration.
type Part struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	PartQuantity         float64   `json:"part_quantity"`
	PartUnit             Unit      `json:"part_unit"`
	ReferenceServiceLife float64   `json:"reference_service_life"`
	EPDSource            EPDSource `json:"epd_source"`
}

// TransportPart is the part shape used when the project declares an A4
// stage. The transport fields are part of the shape, not optional
// additions.
type TransportPart struct {
	Part
	TransportType     string  `json:"transport_type"`
	TransportDistance float64 `json:"transport_distance"`
	TransportUnit     Unit    `json:"transport_unit"`
}

// EPDSource wraps an embedded declaration the way the interchange
// format tags its source variants.
type EPDSource struct {
	EPD EPD `json:"epd"`
}

// EPD is the embedded environmental product declaration of a part.
type EPD struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	DeclaredUnit         Unit         `json:"declared_unit"`
	Version              string       `json:"version"`
	PublishedDate        Date         `json:"published_date"`
	ValidUntil           Date         `json:"valid_until"`
	FormatVersion        string       `json:"format_version"`
	Source               string       `json:"source"`
	ReferenceServiceLife *float64     `json:"reference_service_life"`
	Standard             string       `json:"standard"`
	Comment              string       `json:"comment"`
	Location             string       `json:"location"`
	Subtype              string       `json:"subtype"`
	Conversions          []Conversion `json:"conversions"`
	GWP                  Indicators   `json:"gwp"`
}

// Conversion converts the declared unit into another unit.
type Conversion struct {
	To    Unit    `json:"to"`
	Value float64 `json:"value"`
}

// Indicators carries one value per life-cycle phase.
type Indicators struct {
	A1A3 float64 `json:"a1a3"`
	C3   float64 `json:"c3"`
	C4   float64 `json:"c4"`
	D    float64 `json:"d"`
}
