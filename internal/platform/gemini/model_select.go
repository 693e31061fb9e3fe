package gemini

import "strings"

// preferredFragments lists model-name fragments in priority order. The
// selector returns the first candidate containing the highest-priority
// fragment that matches anywhere in the list, so fragment priority
// dominates candidate order.
var preferredFragments = []string{
	"gemini-pro",
	"gemini-1.0-pro",
	"gemini-1.0",
	"gemini",
	"text-bison",
	"chat-bison",
}

// disqualifiedFragments marks embedding/vector-only models that cannot
// serve text generation.
var disqualifiedFragments = []string{
	"embed",
	"embedding",
	"vector",
}

// PickModel deterministically selects one model identifier from the
// provider-reported candidate list. It prefers known generative model name
// fragments, falls back to the first candidate that is not an
// embedding-only model, and finally to the first candidate unconditionally.
// Returns the empty string only when names is empty.
//
// PickModel is a pure function: no I/O, no side effects.
func PickModel(names []string) string {
	for _, fragment := range preferredFragments {
		for _, name := range names {
			if strings.Contains(name, fragment) {
				return name
			}
		}
	}

	for _, name := range names {
		lower := strings.ToLower(name)
		disqualified := false
		for _, fragment := range disqualifiedFragments {
			if strings.Contains(lower, fragment) {
				disqualified = true
				break
			}
		}
		if !disqualified {
			return name
		}
	}

	if len(names) > 0 {
		return names[0]
	}

	return ""
}
