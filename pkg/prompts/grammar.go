// Package prompts builds the prompts sent to the reasoning service,
// including the fixed PQL grammar/example corpus.
package prompts

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed pql_grammar.yaml
var grammarYAML []byte

// grammarSpec is the parsed shape of pql_grammar.yaml.
type grammarSpec struct {
	Patterns []struct {
		Name    string `yaml:"name"`
		Syntax  string `yaml:"syntax"`
		Example string `yaml:"example"`
	} `yaml:"patterns"`
	TimeUnits []string `yaml:"time_units"`
	Examples  []struct {
		Question string `yaml:"question"`
		PQL      string `yaml:"pql"`
	} `yaml:"examples"`
	Notes []string `yaml:"notes"`
}

var (
	grammarOnce   sync.Once
	grammarCorpus string
	grammarErr    error
)

// GrammarCorpus renders the fixed PQL grammar and example corpus included
// in every translation prompt. The corpus is embedded at build time, so a
// parse failure is a programming error and is returned for the caller to
// treat as fatal.
func GrammarCorpus() (string, error) {
	grammarOnce.Do(func() {
		var spec grammarSpec
		if err := yaml.Unmarshal(grammarYAML, &spec); err != nil {
			grammarErr = fmt.Errorf("parse embedded PQL grammar: %w", err)
			return
		}
		grammarCorpus = renderGrammar(&spec)
	})
	return grammarCorpus, grammarErr
}

func renderGrammar(spec *grammarSpec) string {
	var sb strings.Builder

	sb.WriteString("# PQL (Predictive Query Language) Knowledge Base\n\n")

	sb.WriteString("## Core Syntax Patterns\n\n")
	for i, p := range spec.Patterns {
		sb.WriteString(fmt.Sprintf("%d. **%s**\n", i+1, p.Name))
		sb.WriteString(fmt.Sprintf("   %s\n", p.Syntax))
		sb.WriteString(fmt.Sprintf("   Example: %s\n\n", p.Example))
	}

	sb.WriteString("## Time Units\n")
	for _, unit := range spec.TimeUnits {
		sb.WriteString(fmt.Sprintf("- %s\n", unit))
	}
	sb.WriteString("\n")

	sb.WriteString("## Example Translations\n\n")
	for i, ex := range spec.Examples {
		sb.WriteString(fmt.Sprintf("%d. %q\n   -> %s\n", i+1, ex.Question, ex.PQL))
	}
	sb.WriteString("\n")

	sb.WriteString("## Important Notes\n")
	for _, note := range spec.Notes {
		sb.WriteString(fmt.Sprintf("- %s\n", note))
	}

	return sb.String()
}
