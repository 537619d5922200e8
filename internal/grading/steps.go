package grading

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidStepAnswers means a decomposition answer is neither a JSON
// object keyed by step number nor a JSON array in step order.
var ErrInvalidStepAnswers = errors.New("step answers must be a JSON object keyed by step number or a JSON array")

// ParseStepAnswers decodes per-step answers. `{"1":"...","2":"..."}` and
// `["...","..."]` are both accepted; array entries are numbered from 1.
func ParseStepAnswers(raw string) (map[int]string, error) {
	raw = strings.TrimSpace(raw)
	out := map[int]string{}

	switch {
	case strings.HasPrefix(raw, "{"):
		var byKey map[string]string
		if err := json.Unmarshal([]byte(raw), &byKey); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStepAnswers, err)
		}
		for k, v := range byKey {
			n, err := strconv.Atoi(strings.TrimSpace(k))
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: bad step number %q", ErrInvalidStepAnswers, k)
			}
			out[n] = v
		}
	case strings.HasPrefix(raw, "["):
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidStepAnswers, err)
		}
		for i, v := range list {
			out[i+1] = v
		}
	case raw == "":
		// Every step is graded as empty.
	default:
		return nil, ErrInvalidStepAnswers
	}
	return out, nil
}
