package prompts

import (
	"fmt"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/relgraph-ai/relgraph-engine/pkg/models"
)

// BuildTranslationSystemPrompt creates the system prompt for NL-to-PQL
// translation. It includes the serialized graph schema, an entity summary,
// the fixed grammar corpus, and a strict JSON output contract.
func BuildTranslationSystemPrompt(schema *models.GraphSchema) (string, error) {
	corpus, err := GrammarCorpus()
	if err != nil {
		return "", err
	}

	artifact, err := schema.MarshalArtifact()
	if err != nil {
		return "", fmt.Errorf("serialize schema for prompt: %w", err)
	}

	var sb strings.Builder

	sb.WriteString("You are an expert PQL (Predictive Query Language) translator for relational graph predictions.\n\n")
	sb.WriteString("Your task is to convert natural language questions into valid PQL queries based on the provided graph schema.\n\n")

	sb.WriteString("## Graph Schema\n")
	sb.Write(artifact)
	sb.WriteString("\n\n")

	sb.WriteString("## Entities\n")
	for _, name := range schema.TableNames {
		table := schema.Tables[name]
		sb.WriteString(fmt.Sprintf("- %s (table %q", EntityName(name), name))
		if table.PrimaryKey != "" {
			sb.WriteString(fmt.Sprintf(", primary key %s", table.PrimaryKey))
		}
		if len(table.TemporalColumns) > 0 {
			sb.WriteString(fmt.Sprintf(", temporal columns %s", strings.Join(table.TemporalColumns, ", ")))
		}
		sb.WriteString(")\n")
	}
	sb.WriteString("\n")

	sb.WriteString(corpus)
	sb.WriteString("\n")

	sb.WriteString(`## Output Format
You MUST return ONLY a valid JSON object with the following structure:
{
  "pql_query": "the generated PQL query string, or null",
  "query_type": "classification|regression|recommendation|temporal_aggregation|attribute_inference",
  "confidence": 0.0-1.0,
  "explanation": "brief explanation of the query logic",
  "requires_clarification": true|false,
  "clarification_question": "question to ask the user if clarification is needed, otherwise null",
  "suggested_entities": ["entity IDs if applicable, otherwise empty"]
}

## Rules
1. Return ONLY parseable JSON: no markdown, no code blocks, no extra text
2. Use exact table and column names from the schema
3. The FOR entity must have a primary key defined in the schema
4. Temporal aggregations need a time unit (days, hours, months, years)
5. If the question is ambiguous, set requires_clarification=true and provide clarification_question
6. Confidence reflects certainty of the translation (0.0 = uncertain, 1.0 = certain)
`)

	return sb.String(), nil
}

// EntityName converts a table name to an entity display name.
// Examples: "customers" -> "Customer", "policies" -> "Policy".
func EntityName(tableName string) string {
	name := inflection.Singular(tableName)
	if len(name) > 0 {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return name
}
