package lcax

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// classificationSystems maps reporting-schema names onto the
// classification systems the interchange format knows. Schemas outside
// this list export without a classification block.
var classificationSystems = map[string]string{
	"BR23 - BIMTypeCode": "BIMTypeCode",
}

// NewDocument assembles an interchange document from a snapshot and the
// externally fetched project and assembly data.
func NewDocument(
	project domain.Project,
	schema domain.ReportingSchema,
	categories []domain.SchemaCategory,
	assemblies []domain.Assembly,
	now time.Time,
) (*Document, error) {
	var system *string
	if name, ok := classificationSystems[schema.Name]; ok {
		system = &name
	}

	stages := lifeCycleStages(project)
	hasTransport := false
	for _, stage := range stages {
		if stage == "a4" {
			hasTransport = true
		}
	}

	parts, err := emissionParts(categories, assemblies, system, hasTransport)
	if err != nil {
		return nil, err
	}

	location := project.Country
	if location == "" {
		location = "DK"
	}

	return &Document{
		ID:                   project.ID,
		Name:                 project.Name,
		Description:          "LCAcollect Project",
		Comment:              "Exported " + now.Format("2006-01-02 15:04:05"),
		ClassificationSystem: system,
		EmissionParts:        parts,
		FormatVersion:        formatVersion,
		ImpactCategories:     []string{"gwp"},
		LCIAMethod:           "EN15978",
		LifeCycleStages:      stages,
		LifeSpan:             50,
		Location:             location,
	}, nil
}

// lifeCycleStages normalizes the project's stage phases. The production
// phases A1, A2 and A3 collapse into a single "a1a3" entry; everything
// else passes through lowercased.
func lifeCycleStages(project domain.Project) []string {
	var stages []string
	seenProduction := false
	for _, stage := range project.Stages {
		switch stage.Phase {
		case "A1", "A2", "A3":
			if !seenProduction {
				stages = append(stages, "a1a3")
				seenProduction = true
			}
		default:
			stages = append(stages, strings.ToLower(stage.Phase))
		}
	}
	return stages
}

func emissionParts(
	categories []domain.SchemaCategory,
	assemblies []domain.Assembly,
	system *string,
	hasTransport bool,
) (map[string]Assembly, error) {
	out := map[string]Assembly{}

	for _, category := range categories {
		for _, element := range category.Elements {
			var classification []Classification
			if system != nil {
				code, name, found := strings.Cut(category.ClassificationName(), " | ")
				if !found {
					return nil, errors.Errorf(
						"category %s has no classification pair in %q", category.ID, category.ClassificationName())
				}
				classification = []Classification{{System: *system, Code: code, Name: name}}
			}

			parts, err := layerParts(element, assemblies, hasTransport)
			if err != nil {
				return nil, err
			}

			out[element.ID] = Assembly{
				ID:             element.ID,
				Name:           element.Name,
				Description:    element.Description,
				Classification: classification,
				Parts:          parts,
				Quantity:       element.Quantity,
				Unit:           ConvertUnit(string(element.Unit)),
			}
		}
	}

	return out, nil
}

func layerParts(element domain.SchemaElement, assemblies []domain.Assembly, hasTransport bool) (map[string]any, error) {
	parts := map[string]any{}
	if element.AssemblyID == nil {
		return parts, nil
	}

	for _, assembly := range assemblies {
		if assembly.ID != *element.AssemblyID {
			continue
		}
		for _, layer := range assembly.Layers {
			epd, err := embeddedEPD(layer.EPD)
			if err != nil {
				return nil, errors.Wrapf(err, "layer %s", layer.ID)
			}
			part := Part{
				ID:                   layer.ID,
				Name:                 layer.Name,
				PartQuantity:         layer.ConversionFactor,
				PartUnit:             ConvertUnit(layer.Unit),
				ReferenceServiceLife: layer.ReferenceServiceLife,
				EPDSource:            EPDSource{EPD: epd},
			}
			if hasTransport {
				parts[layer.ID] = TransportPart{
					Part:              part,
					TransportType:     layer.TransportType,
					TransportDistance: layer.TransportDistance,
					TransportUnit:     ConvertUnit(layer.TransportUnit),
				}
			} else {
				parts[layer.ID] = part
			}
		}
	}

	return parts, nil
}

func embeddedEPD(epd domain.EPD) (EPD, error) {
	published, err := ParseDate(epd.PublishedDate)
	if err != nil {
		return EPD{}, errors.Wrap(err, "parse published date")
	}
	validUntil, err := ParseDate(epd.ValidUntil)
	if err != nil {
		return EPD{}, errors.Wrap(err, "parse valid until")
	}

	conversions := make([]Conversion, 0, len(epd.Conversions))
	for _, conv := range epd.Conversions {
		conversions = append(conversions, Conversion{To: ConvertUnit(conv.To), Value: conv.Value})
	}

	return EPD{
		ID:                   epd.ID,
		Name:                 epd.Name,
		DeclaredUnit:         ConvertUnit(epd.DeclaredUnit),
		Version:              epd.Version,
		PublishedDate:        published,
		ValidUntil:           validUntil,
		FormatVersion:        formatVersion,
		Source:               epd.Source,
		ReferenceServiceLife: epd.ReferenceServiceLife,
		Standard:             "EN15804A1",
		Comment:              epd.Comment,
		Location:             epd.Location,
		Subtype:              epd.Subtype,
		Conversions:          conversions,
		GWP: Indicators{
			A1A3: epd.GWP.A1A3,
			C3:   epd.GWP.C3,
			C4:   epd.GWP.C4,
			D:    epd.GWP.D,
		},
	}, nil
}
