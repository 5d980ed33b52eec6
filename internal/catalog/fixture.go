// internal/catalog/fixture.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"shopping-assistant/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// Fixture is an external catalog dataset loaded from JSON.
type Fixture struct {
	Products       []models.Product       `json:"products"`
	ReturnPolicies []models.ReturnPolicy  `json:"return_policies"`
	PromoCodes     map[string]float64     `json:"promo_codes"`
}

const fixtureSchema = `{
  "type": "object",
  "required": ["products", "return_policies", "promo_codes"],
  "properties": {
    "products": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "price", "color", "size", "store", "stock", "description"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "price": {"type": "number", "minimum": 0},
          "color": {"type": "string"},
          "size": {"type": "string"},
          "store": {"type": "string"},
          "stock": {"type": "integer", "minimum": 0},
          "description": {"type": "string"}
        }
      }
    },
    "return_policies": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["store", "daysAllowed", "freeReturns", "conditions"],
        "properties": {
          "store": {"type": "string"},
          "daysAllowed": {"type": "integer", "minimum": 0},
          "freeReturns": {"type": "boolean"},
          "conditions": {"type": "string"}
        }
      }
    },
    "promo_codes": {
      "type": "object",
      "additionalProperties": {"type": "number", "minimum": 0, "maximum": 1}
    }
  }
}`

// LoadFixture reads and schema-validates a catalog fixture file. An
// invalid fixture is a startup error, never a silently empty catalog.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(data)
}

// ParseFixture validates and decodes fixture JSON.
func ParseFixture(data []byte) (*Fixture, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(fixtureSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate fixture: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid fixture: %v", msgs)
	}

	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}
