package ai

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed prompts.yaml
var promptsYAML []byte

type prompts struct {
	QASystem        string `yaml:"qa_system"`
	QAContextHeader string `yaml:"qa_context_header"`
}

var loadedPrompts = mustLoadPrompts()

func mustLoadPrompts() prompts {
	var p prompts
	if err := yaml.Unmarshal(promptsYAML, &p); err != nil {
		panic("failed to unmarshal embedded prompts.yaml: " + err.Error())
	}
	return p
}

// buildQAUserContent formats the question together with the retrieved
// registration records into a single user message.
func buildQAUserContent(question string, documents []string) string {
	var sb strings.Builder

	sb.WriteString(loadedPrompts.QAContextHeader)
	sb.WriteString("\n")
	if len(documents) == 0 {
		sb.WriteString("(no registrations yet)\n")
	}
	for i, doc := range documents {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, doc))
	}

	sb.WriteString("\nQuestion: ")
	sb.WriteString(question)
	return sb.String()
}
