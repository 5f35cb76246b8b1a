package lcabyg

import "github.com/lcacollect/reporting-backend/internal/domain"

// stagePhases are the life-cycle phases decomposed per assembly layer.
var stagePhases = []string{"A1to3", "C3", "C4", "D"}

// Aggregate walks a snapshot's category tree and re-encodes it as a
// flat list of nodes and edges. Edges to GenDK categories are inferred
// through the resolver registry. Categories without elements are
// skipped entirely and do not appear in the output.
func Aggregate(categories []domain.SchemaCategory, assemblies []domain.Assembly, resolvers *Resolvers) ([]Entity, error) {
	var entities []Entity

	appendEdge := func(child Node, parent Node) error {
		edge, err := NewEdge(child, parent)
		if err != nil {
			return err
		}
		entities = append(entities, edge)
		return nil
	}

	for _, category := range categories {
		if len(category.Elements) == 0 {
			continue
		}
		categoryNode := NewElementNode(category, resolvers)
		entities = append(entities, categoryNode)
		if err := appendEdge(categoryNode, nil); err != nil {
			return nil, err
		}

		for _, element := range category.Elements {
			elementNode, err := NewConstructionNode(element, resolvers)
			if err != nil {
				return nil, err
			}
			entities = append(entities, elementNode)
			if err := appendEdge(elementNode, categoryNode); err != nil {
				return nil, err
			}
			if err := appendEdge(elementNode, nil); err != nil {
				return nil, err
			}

			if element.AssemblyID == nil {
				continue
			}
			assembly, ok := findAssembly(assemblies, *element.AssemblyID)
			if !ok {
				continue
			}
			for _, layer := range assembly.Layers {
				layerNode := NewProductNode(layer)
				entities = append(entities, layerNode)
				if err := appendEdge(layerNode, elementNode); err != nil {
					return nil, err
				}
				for _, phase := range stagePhases {
					stageNode := NewStageNode(layer, phase)
					entities = append(entities, stageNode)
					if err := appendEdge(stageNode, layerNode); err != nil {
						return nil, err
					}
					if err := appendEdge(stageNode, nil); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return entities, nil
}

func findAssembly(assemblies []domain.Assembly, id string) (domain.Assembly, bool) {
	for _, a := range assemblies {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Assembly{}, false
}
