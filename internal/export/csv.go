package export

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// csvSeparator matches what the downstream spreadsheet tooling expects.
const csvSeparator = ";"

var csvHeader = []string{"class", "name", "source", "quantity", "unit", "description", "result"}

// ToCSV renders a snapshot's elements as a semicolon-separated table.
// One row per element; rows keep the element order of each category and
// the category order of the input.
func ToCSV(categories []domain.SchemaCategory) (string, error) {
	lines := []string{strings.Join(csvHeader, csvSeparator)}

	for _, category := range categories {
		class := category.ClassificationName()
		if category.TypeCodeElement != nil {
			class = category.TypeCodeElement.Name
		}
		for _, element := range category.Elements {
			source := "Typed in"
			if element.Source != nil {
				source = element.Source.Name
			}
			result, err := formatResult(element.Result)
			if err != nil {
				return "", errors.Wrapf(err, "encode result of element %s", element.ID)
			}
			lines = append(lines, strings.Join([]string{
				quote(class),
				quote(element.Name),
				quote(source),
				formatQuantity(element.Quantity),
				quote(string(element.Unit)),
				quote(element.Description),
				result,
			}, csvSeparator))
		}
	}

	return strings.Join(lines, "\n"), nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatQuantity keeps quantities recognizable as decimals, so whole
// numbers still render with a trailing ".0".
func formatQuantity(q float64) string {
	s := strconv.FormatFloat(q, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func formatResult(result map[string]any) (string, error) {
	if len(result) == 0 {
		return "", nil
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return "", err
	}
	return quote(string(raw)), nil
}
