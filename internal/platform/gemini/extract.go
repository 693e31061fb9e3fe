package gemini

import "strings"

// extractContent pulls the textual content out of a provider response.
// Strategies are tried in order: the direct text field, then the joined
// output fragments (structured fragment content, else the raw string).
// Returns the empty string when nothing extractable remains after trimming.
func extractContent(resp *Response) string {
	if resp == nil {
		return ""
	}

	if text := strings.TrimSpace(resp.Text); text != "" {
		return text
	}

	parts := make([]string, 0, len(resp.Fragments))
	for _, fragment := range resp.Fragments {
		switch {
		case fragment.Content != "":
			parts = append(parts, fragment.Content)
		case fragment.Raw != "":
			parts = append(parts, fragment.Raw)
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// stripFences removes Markdown code-fence wrapping from model output.
// If the content contains a ```json fence, the interior of the first such
// block is returned; otherwise the interior of the first plain ``` block;
// otherwise the content is returned unchanged. A block left unclosed runs
// to the end of the content. Idempotent on fence-free input.
func stripFences(content string) string {
	if _, after, found := strings.Cut(content, "```json"); found {
		inner, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(inner)
	}

	if _, after, found := strings.Cut(content, "```"); found {
		inner, _, _ := strings.Cut(after, "```")
		return strings.TrimSpace(inner)
	}

	return content
}
