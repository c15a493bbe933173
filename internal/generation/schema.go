package generation

import "github.com/phrazzld/scry-study/internal/domain"

// SchemaType is the primitive type of a Schema node.
type SchemaType string

// Schema node types used by the study-material schemas.
const (
	TypeString SchemaType = "STRING"
	TypeArray  SchemaType = "ARRAY"
	TypeObject SchemaType = "OBJECT"
)

// Schema is a provider-neutral description of the JSON shape a structured
// reply must have. Client implementations translate it into their
// provider's own schema type.
type Schema struct {
	Type        SchemaType
	Description string

	// Items describes array elements when Type is TypeArray.
	Items    *Schema
	MinItems *int64
	MaxItems *int64

	// Properties describes object fields when Type is TypeObject.
	// PropertyOrdering fixes the order in which the model emits them.
	Properties       map[string]*Schema
	PropertyOrdering []string
	Required         []string
}

func int64Ptr(v int64) *int64 {
	return &v
}

// flashcardSchema describes an array of {term, definition} objects.
func flashcardSchema() *Schema {
	return &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"term": {
					Type:        TypeString,
					Description: "The key pathological term.",
				},
				"definition": {
					Type:        TypeString,
					Description: "A concise definition of the term.",
				},
			},
			PropertyOrdering: []string{"term", "definition"},
			Required:         []string{"term", "definition"},
		},
	}
}

// quizSchema describes an array of multiple-choice question objects.
func quizSchema() *Schema {
	return &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"question": {
					Type:        TypeString,
					Description: "The quiz question.",
				},
				"options": {
					Type:        TypeArray,
					Description: "An array of 4 possible answers.",
					Items:       &Schema{Type: TypeString},
					MinItems:    int64Ptr(4),
					MaxItems:    int64Ptr(4),
				},
				"correctAnswer": {
					Type:        TypeString,
					Description: "The correct answer from the options.",
				},
				"explanation": {
					Type:        TypeString,
					Description: "A brief explanation for why the answer is correct.",
				},
			},
			PropertyOrdering: []string{"question", "options", "correctAnswer", "explanation"},
			Required:         []string{"question", "options", "correctAnswer", "explanation"},
		},
	}
}

// SchemaFor returns a fresh copy of the response schema for mode, or nil
// for modes that expect free-form text.
func SchemaFor(mode domain.StudyMode) *Schema {
	p, ok := pipelines[mode]
	if !ok || p.schema == nil {
		return nil
	}
	return p.schema()
}
