package agent

import (
	"encoding/json"
	"strings"

	"github.com/lixenwraith/space-invaders/input"
)

// ParseResponse extracts a decision from free-form model output. It reads the
// outermost JSON object when present and falls back to keyword heuristics.
// Never fails.
func ParseResponse(text string) Decision {
	if d, ok := parseJSON(text); ok {
		return d
	}
	return Heuristic(text)
}

func parseJSON(text string) (Decision, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return Decision{}, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return Decision{}, false
	}
	fields := make(map[string]json.RawMessage, len(raw))
	for k, v := range raw {
		fields[strings.ToLower(k)] = v
	}

	var actionStr string
	if v, ok := fields["action"]; !ok || json.Unmarshal(v, &actionStr) != nil {
		return Decision{}, false
	}
	// Unknown names resolve to Wait
	action, _ := input.ParseAction(actionStr)

	reasoning := "No reasoning provided"
	if v, ok := fields["reasoning"]; ok {
		var s string
		if json.Unmarshal(v, &s) == nil && s != "" {
			reasoning = s
		}
	}

	confidence := DefaultConfidence
	if v, ok := fields["confidence"]; ok {
		var f float64
		if json.Unmarshal(v, &f) == nil {
			confidence = clamp01(f)
		}
	}

	return Decision{Action: action, Reasoning: reasoning, Confidence: confidence}, true
}

// Heuristic picks an action from keywords in the response
func Heuristic(text string) Decision {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "left"):
		return Decision{Action: input.ActionMoveLeft, Reasoning: "Heuristic: Response suggests moving left", Confidence: 0.6}
	case strings.Contains(lower, "right"):
		return Decision{Action: input.ActionMoveRight, Reasoning: "Heuristic: Response suggests moving right", Confidence: 0.6}
	case strings.Contains(lower, "shoot"), strings.Contains(lower, "fire"):
		return Decision{Action: input.ActionShoot, Reasoning: "Heuristic: Response suggests shooting", Confidence: 0.7}
	}
	return Decision{Action: input.ActionWait, Reasoning: "Heuristic: Default to waiting", Confidence: HeuristicConfidence}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
