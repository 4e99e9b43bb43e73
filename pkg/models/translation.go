package models

import (
	"encoding/json"

	"github.com/relgraph-ai/relgraph-engine/pkg/jsonutil"
)

// Query types reported by the translator.
const (
	QueryTypeClassification      = "classification"
	QueryTypeRegression          = "regression"
	QueryTypeRecommendation      = "recommendation"
	QueryTypeTemporalAggregation = "temporal_aggregation"
	QueryTypeAttributeInference  = "attribute_inference"
	QueryTypeError               = "error"
)

// TranslationResult is the outcome of translating one user utterance into
// a PQL query. It is created per utterance and discarded after the
// translate/validate/execute round trip; every failure path on that trip
// terminates in a well-formed value of this shape.
type TranslationResult struct {
	PQLQuery              *string  `json:"pql_query"`
	QueryType             string   `json:"query_type"`
	Confidence            float64  `json:"confidence"`
	Explanation           string   `json:"explanation"`
	RequiresClarification bool     `json:"requires_clarification"`
	ClarificationQuestion *string  `json:"clarification_question"`
	SuggestedEntities     []string `json:"suggested_entities"`
}

// UnmarshalJSON parses a TranslationResult tolerantly. Reasoning services
// sometimes return confidence as a string, entity IDs as numbers, or
// booleans where strings are expected, so every scalar field goes through
// flexible coercion instead of failing the whole parse.
func (r *TranslationResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		PQLQuery              json.RawMessage   `json:"pql_query"`
		QueryType             json.RawMessage   `json:"query_type"`
		Confidence            json.RawMessage   `json:"confidence"`
		Explanation           json.RawMessage   `json:"explanation"`
		RequiresClarification json.RawMessage   `json:"requires_clarification"`
		ClarificationQuestion json.RawMessage   `json:"clarification_question"`
		SuggestedEntities     []json.RawMessage `json:"suggested_entities"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if q := jsonutil.FlexibleStringValue(raw.PQLQuery); q != "" {
		r.PQLQuery = &q
	}
	r.QueryType = jsonutil.FlexibleStringValue(raw.QueryType)
	r.Confidence = jsonutil.FlexibleFloatValue(raw.Confidence)
	r.Explanation = jsonutil.FlexibleStringValue(raw.Explanation)
	r.RequiresClarification = jsonutil.FlexibleBoolValue(raw.RequiresClarification)
	if q := jsonutil.FlexibleStringValue(raw.ClarificationQuestion); q != "" {
		r.ClarificationQuestion = &q
	}
	r.SuggestedEntities = make([]string, 0, len(raw.SuggestedEntities))
	for _, entity := range raw.SuggestedEntities {
		if v := jsonutil.FlexibleStringValue(entity); v != "" {
			r.SuggestedEntities = append(r.SuggestedEntities, v)
		}
	}
	return nil
}
