package lcabyg

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// Entity is an LCAByg node or edge ready for serialization.
type Entity interface {
	// Encode returns the entity in its wire form.
	Encode() map[string]any
}

// Node is the closed set of LCAByg node variants.
type Node interface {
	Entity
	NodeID() string
	// gendkCategoryID is the resolved GenDK parent used when the node
	// is linked without an explicit parent. Unexported to seal the set.
	gendkCategoryID() string
}

const nodeSource = "User"

// localizedName repeats a name for the languages LCAByg expects.
func localizedName(name string) map[string]any {
	return map[string]any{
		"Danish":  name,
		"English": name,
		"German":  name,
	}
}

// graphUnit maps a domain unit to the unit vocabulary of the graph
// format. No unit and pieces both collapse to "Pcs"; units the format
// cannot express are a validation failure.
func graphUnit(u domain.Unit) (string, error) {
	switch u {
	case domain.UnitNone, domain.UnitPcs:
		return "Pcs", nil
	case domain.UnitM:
		return "M", nil
	case domain.UnitM2:
		return "M2", nil
	case domain.UnitM3:
		return "M3", nil
	case domain.UnitKG:
		return "KG", nil
	}
	return "", domain.ValidationError{
		Message: fmt.Sprintf("expected unit to be one of M, M2, M3, KG or Pcs but got %q", u),
	}
}

// ElementNode is the graph representation of a domain category. The
// terminology inversion is deliberate: a schema category becomes an
// LCAByg "Element".
type ElementNode struct {
	id         string
	name       string
	comment    string
	categoryID string
}

// NewElementNode builds the node for a schema category, resolving its
// GenDK category through the registry.
func NewElementNode(category domain.SchemaCategory, resolvers *Resolvers) *ElementNode {
	taxonomy := ""
	if category.ReportingSchema != nil {
		taxonomy = category.ReportingSchema.Name
	}
	return &ElementNode{
		id:         category.ID,
		name:       category.ClassificationName(),
		comment:    category.Description,
		categoryID: resolvers.Resolve(taxonomy, category.ClassificationName()),
	}
}

func (n *ElementNode) NodeID() string          { return n.id }
func (n *ElementNode) gendkCategoryID() string { return n.categoryID }

func (n *ElementNode) Encode() map[string]any {
	return map[string]any{
		"Node": map[string]any{
			"Element": map[string]any{
				"id":      n.id,
				"name":    localizedName(n.name),
				"active":  true,
				"comment": n.comment,
				"enabled": true,
				"source":  nodeSource,
			},
		},
	}
}

// ConstructionNode is the graph representation of a domain element.
type ConstructionNode struct {
	id         string
	name       string
	comment    string
	unit       string
	amount     float64
	categoryID string
}

// NewConstructionNode builds the node for a schema element. The element
// must carry a unit the graph format can express.
func NewConstructionNode(element domain.SchemaElement, resolvers *Resolvers) (*ConstructionNode, error) {
	unit, err := graphUnit(element.Unit)
	if err != nil {
		return nil, err
	}
	taxonomy := ""
	classification := ""
	if element.SchemaCategory != nil {
		classification = element.SchemaCategory.ClassificationName()
		if element.SchemaCategory.ReportingSchema != nil {
			taxonomy = element.SchemaCategory.ReportingSchema.Name
		}
	}
	return &ConstructionNode{
		id:         element.ID,
		name:       element.Name,
		comment:    element.Description,
		unit:       unit,
		amount:     element.Quantity,
		categoryID: resolvers.Resolve(taxonomy, classification),
	}, nil
}

func (n *ConstructionNode) NodeID() string          { return n.id }
func (n *ConstructionNode) gendkCategoryID() string { return n.categoryID }

func (n *ConstructionNode) Encode() map[string]any {
	return map[string]any{
		"Node": map[string]any{
			"Construction": map[string]any{
				"id":      n.id,
				"name":    localizedName(n.name),
				"comment": n.comment,
				"layer":   1,
				"locked":  true,
				"source":  nodeSource,
				"unit":    n.unit,
			},
		},
	}
}

// ProductNode is the graph representation of one assembly layer.
type ProductNode struct {
	id       string
	name     string
	comment  string
	lifeSpan float64
	amount   float64
	unit     string
}

func NewProductNode(layer domain.AssemblyLayer) *ProductNode {
	return &ProductNode{
		id:       layer.ID,
		name:     layer.Name,
		comment:  layer.Description,
		lifeSpan: layer.ReferenceServiceLife,
		amount:   layer.ConversionFactor,
		unit:     strings.ToUpper(layer.EPD.DeclaredUnit),
	}
}

func (n *ProductNode) NodeID() string          { return n.id }
func (n *ProductNode) gendkCategoryID() string { return "" }

func (n *ProductNode) Encode() map[string]any {
	return map[string]any{
		"Node": map[string]any{
			"Product": map[string]any{
				"id":                      n.id,
				"name":                    localizedName(n.name),
				"source":                  nodeSource,
				"comment":                 n.comment,
				"uncertainty_factor":      1.0,
				"uncertainty_factor_dgnb": 1.3,
			},
		},
	}
}

// StageNode decomposes one life-cycle phase of a layer's EPD. Only the
// global warming potential is populated from source data; all other
// indicators are zero. The node id is freshly minted on construction.
type StageNode struct {
	id         string
	name       string
	comment    string
	stage      string
	unit       string
	validTo    string
	dataType   string
	gwp        float64
	massFactor *float64
}

func NewStageNode(layer domain.AssemblyLayer, phase string) *StageNode {
	epd := layer.EPD
	return &StageNode{
		id:         uuid.NewString(),
		name:       epd.Name,
		comment:    epd.Comment,
		stage:      phase,
		unit:       strings.ToUpper(epd.DeclaredUnit),
		validTo:    epd.ValidUntil,
		dataType:   epd.Subtype,
		gwp:        epd.GWP.Phase(indicatorKey(phase)),
		massFactor: massFactor(epd),
	}
}

// indicatorKey maps a stage phase to its indicator lookup key; the
// "A1to3" phase reads the aggregated a1a3 value.
func indicatorKey(phase string) string {
	if phase == "A1to3" {
		return "a1a3"
	}
	return strings.ToLower(phase)
}

// massFactor finds the conversion into kilograms, or nil when the EPD
// declares none.
func massFactor(epd domain.EPD) *float64 {
	for _, conv := range epd.Conversions {
		if conv.To == "kg" {
			v := conv.Value
			return &v
		}
	}
	return nil
}

func (n *StageNode) NodeID() string          { return n.id }
func (n *StageNode) gendkCategoryID() string { return stageCategoryID }

func (n *StageNode) Encode() map[string]any {
	var mass any
	if n.massFactor != nil {
		mass = *n.massFactor
	}
	return map[string]any{
		"Node": map[string]any{
			"Stage": map[string]any{
				"id":               n.id,
				"name":             localizedName(n.name),
				"comment":          n.comment,
				"source":           nodeSource,
				"locked":           true,
				"valid_to":         n.validTo,
				"stage":            n.stage,
				"stage_unit":       n.unit,
				"indicator_unit":   n.unit,
				"stage_factor":     1.0,
				"mass_factor":      mass,
				"indicator_factor": 1.0,
				"external_source":  nodeSource,
				"external_id":      "",
				"external_url":     "",
				"external_version": "",
				"data_type":        n.dataType,
				"indicators": map[string]any{
					"GWP":  n.gwp,
					"ODP":  0.0,
					"POCP": 0.0,
					"AP":   0.0,
					"EP":   0.0,
					"ADPE": 0.0,
					"ADPF": 0.0,
					"PENR": 0.0,
					"PER":  0.0,
					"SENR": 0.0,
					"SER":  0.0,
				},
			},
		},
	}
}
