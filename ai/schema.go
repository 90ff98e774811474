package ai

// titleToolName names the structured output every provider is steered
// toward: the json_schema response format for OpenAI and the forced tool
// call for Claude.
const titleToolName = "document_title"

// titleDescription documents the single schema field for the model.
const titleDescription = "The generated document title"

// titleSchema is the JSON schema the providers constrain their output to.
var titleSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"title": map[string]any{
			"type":        "string",
			"maxLength":   MaxTitleLength,
			"description": titleDescription,
		},
	},
	"required":             []string{"title"},
	"additionalProperties": false,
}
