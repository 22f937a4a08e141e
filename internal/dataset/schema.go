// internal/dataset/schema.go
package dataset

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	apperrors "fundscope/internal/common/errors"
)

// documentSchema validates the shape of the input document before decoding.
// Milestone dates are validated as strings only; unparseable dates are a
// data-quality condition handled at parse time, not a schema failure.
const documentSchema = `{
  "type": "object",
  "required": ["milestone_types", "status_milestones", "companies"],
  "properties": {
    "milestone_types": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["label", "color"],
        "properties": {
          "label": {"type": "string"},
          "color": {"type": "string"}
        }
      }
    },
    "status_milestones": {
      "type": "array",
      "items": {"type": "string"}
    },
    "companies": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "type", "industry"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "ticker": {"type": "string"},
          "type": {"type": "string", "enum": ["private", "public"]},
          "industry": {"type": "string"},
          "revenue": {"type": "number"},
          "gross_profit": {"type": "number"},
          "net_profit": {"type": "number"},
          "valuation": {"type": "number"},
          "milestones": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["type", "date"],
              "properties": {
                "type": {"type": "string"},
                "date": {"type": "string"},
                "amount": {"type": "number"},
                "valuation": {"type": "number"},
                "advisors": {"type": "string"},
                "investors": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

func validateDocument(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return apperrors.NewDataLoadFailedError(err.Error())
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return apperrors.NewSchemaValidationFailedError(strings.Join(details, "; "))
	}

	return nil
}
