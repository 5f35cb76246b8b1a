package domain

// Project is the external project service's view of a project.
type Project struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Stages  []Stage `json:"stages"`
}

// Stage is one life-cycle stage recorded on a project.
type Stage struct {
	Phase string `json:"phase"`
}

// HasPhase reports whether the project records the given stage phase.
func (p Project) HasPhase(phase string) bool {
	for _, s := range p.Stages {
		if s.Phase == phase {
			return true
		}
	}
	return false
}

// ProjectMember is a member of a project as reported by the project
// service.
type ProjectMember struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

// Assembly is an externally-cataloged multi-material construction
// specification attached to elements via AssemblyID.
type Assembly struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	LifeTime         float64         `json:"lifeTime"`
	Unit             string          `json:"unit"`
	ConversionFactor float64         `json:"conversionFactor"`
	Layers           []AssemblyLayer `json:"layers"`
}

// AssemblyLayer is one material layer of an assembly.
type AssemblyLayer struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	ConversionFactor     float64 `json:"conversionFactor"`
	ReferenceServiceLife float64 `json:"referenceServiceLife"`
	Unit                 string  `json:"unit"`
	TransportType        string  `json:"transportType"`
	TransportDistance    float64 `json:"transportDistance"`
	TransportUnit        string  `json:"transportUnit"`
	EPD                  EPD     `json:"epd"`
}

// EPD is externally sourced environmental-impact data for a layer.
type EPD struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	DeclaredUnit         string       `json:"declaredUnit"`
	Version              string       `json:"version"`
	ValidUntil           string       `json:"validUntil"`
	PublishedDate        string       `json:"publishedDate"`
	Source               string       `json:"source"`
	Location             string       `json:"location"`
	Subtype              string       `json:"subtype"`
	ReferenceServiceLife *float64     `json:"referenceServiceLife"`
	Comment              string       `json:"comment"`
	Conversions          []Conversion `json:"conversions"`
	GWP                  Indicators   `json:"gwp"`
}

// Conversion converts the declared unit of an EPD into another unit.
type Conversion struct {
	To    string  `json:"to"`
	Value float64 `json:"value"`
}

// Indicators holds one decomposed environmental indicator value per
// life-cycle phase.
type Indicators struct {
	A1A3 float64 `json:"a1a3"`
	C3   float64 `json:"c3"`
	C4   float64 `json:"c4"`
	D    float64 `json:"d"`
}

// Phase returns the indicator value for a lowercase phase key; unknown
// phases are zero.
func (i Indicators) Phase(phase string) float64 {
	switch phase {
	case "a1a3":
		return i.A1A3
	case "c3":
		return i.C3
	case "c4":
		return i.C4
	case "d":
		return i.D
	}
	return 0
}
