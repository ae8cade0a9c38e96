package gateway

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ReadAnswersFile loads answers from a YAML or JSON mapping of question id
// to answer. Every entry is normalized through the catalog, so the file
// may use either canonical tokens or option labels.
func ReadAnswersFile(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	return ParseAnswers(data)
}

// ParseAnswers decodes a YAML (or JSON) answers document.
func ParseAnswers(data []byte) (Answers, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}

	answers := make(Answers, len(raw))
	for key, v := range raw {
		switch v.(type) {
		case map[string]any, []any, nil:
			return nil, fmt.Errorf("answer for %q must be a scalar", key)
		}

		id := QuestionID(key)
		value, err := Normalize(id, fmt.Sprint(v))
		if err != nil {
			return nil, err
		}
		answers[id] = value
	}
	return answers, nil
}
