package gemini

import (
	"github.com/phrazzld/scry-study/internal/generation"
	"google.golang.org/genai"
)

// schemaTypes maps provider-neutral schema types to genai types.
var schemaTypes = map[generation.SchemaType]genai.Type{
	generation.TypeString: genai.TypeString,
	generation.TypeArray:  genai.TypeArray,
	generation.TypeObject: genai.TypeObject,
}

// toGenAISchema converts a generation.Schema tree into a *genai.Schema.
func toGenAISchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:             schemaTypes[s.Type],
		Description:      s.Description,
		Items:            toGenAISchema(s.Items),
		MinItems:         s.MinItems,
		MaxItems:         s.MaxItems,
		Required:         s.Required,
		PropertyOrdering: s.PropertyOrdering,
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenAISchema(prop)
		}
	}

	return out
}
