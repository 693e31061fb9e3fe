// Package gemini implements the generation.Generator interface on top of
// Google's Gemini API. It owns model discovery and selection, prompt
// construction, and the normalization of free-form model output into a
// fixed-size deck of flashcards.
package gemini
