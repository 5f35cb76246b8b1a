package lcabyg

import (
	"fmt"

	"github.com/google/uuid"
)

// Edge links two nodes of the interchange graph. Every edge gets a
// freshly minted id; the variant determines its metadata shape.
type Edge struct {
	id       string
	name     string
	parentID string
	childID  string
	meta     func(id string) any
}

func (e *Edge) Encode() map[string]any {
	return map[string]any{
		"Edge": []any{
			map[string]any{e.name: e.meta(e.id)},
			e.parentID,
			e.childID,
		},
	}
}

// Name is the edge variant name, "<ParentType>To<ChildType>".
func (e *Edge) Name() string { return e.name }

// ParentID is the id of the parent end of the edge.
func (e *Edge) ParentID() string { return e.parentID }

// ChildID is the id of the child end of the edge.
func (e *Edge) ChildID() string { return e.childID }

// NewEdge builds the edge variant for a child node. With a nil parent
// the child is linked to its resolved GenDK category instead, producing
// the corresponding "CategoryTo..." variant.
func NewEdge(child Node, parent Node) (*Edge, error) {
	edge := &Edge{id: uuid.NewString(), childID: child.NodeID()}

	if parent == nil {
		edge.parentID = child.gendkCategoryID()
		switch c := child.(type) {
		case *ElementNode:
			edge.name = "CategoryToElement"
			edge.meta = func(id string) any {
				return map[string]any{"enabled": true, "id": id}
			}
		case *ConstructionNode:
			edge.name = "CategoryToConstruction"
			edge.meta = func(id string) any {
				return map[string]any{"id": id, "layers": []any{1}}
			}
		case *StageNode:
			edge.name = "CategoryToStage"
			edge.meta = func(id string) any { return id }
		default:
			return nil, fmt.Errorf("no category edge for node type %T", c)
		}
		return edge, nil
	}

	edge.parentID = parent.NodeID()
	switch c := child.(type) {
	case *ConstructionNode:
		if _, ok := parent.(*ElementNode); !ok {
			return nil, fmt.Errorf("construction node expects an element parent, got %T", parent)
		}
		edge.name = "ElementToConstruction"
		amount := c.amount
		edge.meta = func(id string) any {
			return map[string]any{"amount": amount, "enabled": true, "id": id}
		}
	case *ProductNode:
		if _, ok := parent.(*ConstructionNode); !ok {
			return nil, fmt.Errorf("product node expects a construction parent, got %T", parent)
		}
		edge.name = "ConstructionToProduct"
		amount, unit, lifeSpan := c.amount, c.unit, c.lifeSpan
		edge.meta = func(id string) any {
			return map[string]any{
				"id":                 id,
				"amount":             amount,
				"unit":               unit,
				"lifespan":           int(lifeSpan),
				"demolition":         false,
				"delayed_start":      0,
				"enabled":            true,
				"expected_scenarios": []any{},
			}
		}
	case *StageNode:
		if _, ok := parent.(*ProductNode); !ok {
			return nil, fmt.Errorf("stage node expects a product parent, got %T", parent)
		}
		edge.name = "ProductToStage"
		edge.meta = func(id string) any {
			return map[string]any{"id": id, "excluded_scenarios": []any{}, "enabled": true}
		}
	default:
		return nil, fmt.Errorf("no edge for node type %T", c)
	}
	return edge, nil
}
