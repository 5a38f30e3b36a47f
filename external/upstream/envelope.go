package upstream

import (
	"strings"

	"github.com/riskibarqy/cricket-live/internal/platform/payload"
)

// Strategy pulls the match array out of one envelope shape. ok is false when
// the shape does not apply to the document.
type Strategy struct {
	Name    string
	Extract func(doc any) (items []any, ok bool)
}

// Path matches an array found at the given object path; no keys means the
// document itself must be an array.
func Path(keys ...string) Strategy {
	name := strings.Join(keys, ".")
	if name == "" {
		name = "root"
	}
	return Strategy{
		Name: name,
		Extract: func(doc any) ([]any, bool) {
			raw, ok := payload.Lookup(doc, keys...)
			if !ok {
				return nil, false
			}
			items, ok := raw.([]any)
			return items, ok
		},
	}
}

// GenericStrategies are the envelopes seen across providers, in priority order.
var GenericStrategies = []Strategy{
	Path(),
	Path("matches"),
	Path("data"),
	Path("response", "matches"),
	Path("results", "matches"),
	Path("result", "matches"),
}

// ExtractMatches returns the array from the first strategy that applies,
// along with that strategy's name. An empty name means nothing matched.
func ExtractMatches(doc any, strategies []Strategy) ([]any, string) {
	if doc == nil {
		return nil, ""
	}
	for _, strategy := range strategies {
		if items, ok := strategy.Extract(doc); ok {
			return items, strategy.Name
		}
	}
	return nil, ""
}
