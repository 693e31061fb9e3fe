package gemini

// promptData represents the data passed to the prompt template
type promptData struct {
	Topic string
	Level string
	Count int
}

// Response holds the extractable content of a provider reply. Providers
// return generated text either as a single text field or as an ordered
// list of output fragments; the extractor tries Text first and falls back
// to joining Fragments.
type Response struct {
	// Text is the direct text representation, when the provider supplies one.
	Text string

	// Fragments holds ordered output fragments for replies without a
	// usable direct text field.
	Fragments []Fragment
}

// Fragment is a single piece of provider output. Exactly one field is set:
// Content for structured fragments, Raw for plain string fragments.
type Fragment struct {
	Content string
	Raw     string
}
