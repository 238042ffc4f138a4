// Package schema holds the JSON Schema documents for the request bodies of
// all resource kinds. The same schema object is embedded into hypermedia
// controls and used to validate inbound bodies, so the two cannot drift
// apart.
package schema

import (
	"errors"
	"fmt"
	"regexp"
)

// DatePattern is the pattern advertised for date fields.
//
// It is deliberately lax: "2018-19-39" matches. Dates are parsed strictly
// after validation, so such values still fail with a 400.
const DatePattern = "^[0-9]{4}-[01][0-9]-[0-3][0-9]$"

// ErrValidation is wrapped by all errors returned by Validate.
var ErrValidation = errors.New("the request body does not match the schema")

// Property describes a single object property.
type Property struct {
	Description string `json:"description"`
	Type        string `json:"type"`
	Pattern     string `json:"pattern,omitempty"`
}

// Schema is a JSON-Schema-compatible description of a request body.
type Schema struct {
	Type       string              `json:"type"`
	Required   []string            `json:"required"`
	Properties map[string]Property `json:"properties"`
}

// User returns the schema for user bodies.
func User() Schema {
	return Schema{
		Type:     "object",
		Required: []string{"user_name", "user_email", "password"},
		Properties: map[string]Property{
			"user_name": {
				Description: "Name of the user",
				Type:        "string",
			},
			"user_email": {
				Description: "Email address of the user",
				Type:        "string",
			},
			"password": {
				Description: "Password of the user",
				Type:        "string",
			},
		},
	}
}

// Budget returns the schema for budget bodies.
func Budget() Schema {
	return Schema{
		Type:     "object",
		Required: []string{"budget_name", "budget_amount", "start_date", "end_date"},
		Properties: map[string]Property{
			"budget_name": {
				Description: "Name of the budget",
				Type:        "string",
			},
			"budget_description": {
				Description: "Description of the budget",
				Type:        "string",
			},
			"budget_amount": {
				Description: "Amount of the budget",
				Type:        "number",
			},
			"currency_type": {
				Description: "Currency of the budget",
				Type:        "string",
			},
			"start_date": {
				Description: "First day of the budget",
				Type:        "string",
				Pattern:     DatePattern,
			},
			"end_date": {
				Description: "Last day of the budget",
				Type:        "string",
				Pattern:     DatePattern,
			},
		},
	}
}

// Expense returns the schema for expense bodies. Unlike budgets, the
// description is required here.
func Expense() Schema {
	return Schema{
		Type:     "object",
		Required: []string{"expense_name", "expense_description", "expense_amount", "expense_date"},
		Properties: map[string]Property{
			"expense_name": {
				Description: "Name of the expense",
				Type:        "string",
			},
			"expense_description": {
				Description: "Description of the expense",
				Type:        "string",
			},
			"expense_amount": {
				Description: "Amount of the expense",
				Type:        "number",
			},
			"expense_date": {
				Description: "Day of the expense",
				Type:        "string",
				Pattern:     DatePattern,
			},
		},
	}
}

// Validate checks the body against the schema: all required properties must
// be present, known properties must have the declared type and pattern
// constrained strings must match their pattern. Unknown properties are
// ignored.
func Validate(body map[string]any, s Schema) error {
	for _, name := range s.Required {
		if _, ok := body[name]; !ok {
			return fmt.Errorf("%w: required property %q is missing", ErrValidation, name)
		}
	}

	for name, value := range body {
		property, ok := s.Properties[name]
		if !ok {
			continue
		}

		switch property.Type {
		case "string":
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("%w: property %q must be a string", ErrValidation, name)
			}

			if property.Pattern != "" {
				matched, err := regexp.MatchString(property.Pattern, str)
				if err != nil || !matched {
					return fmt.Errorf("%w: property %q does not match the pattern %q", ErrValidation, name, property.Pattern)
				}
			}

		case "number":
			if _, ok := value.(float64); !ok {
				return fmt.Errorf("%w: property %q must be a number", ErrValidation, name)
			}
		}
	}

	return nil
}
