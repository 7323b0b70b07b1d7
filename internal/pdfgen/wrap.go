package pdfgen

import "strings"

// Wrap greedily packs the words of text into lines measuring at most
// maxWidth. A single word wider than maxWidth is hard-split rune by rune so
// that no character is ever dropped or drawn past the limit. The result
// always contains at least one line: wrapping the empty string yields one
// empty line.
//
// The measure function must return the rendered width of a string at the
// font the caller intends to draw with.
func Wrap(measure func(string) float64, text string, maxWidth float64) []string {
	lines := []string{}

	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(measure, paragraph, maxWidth)...)
	}

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func wrapParagraph(measure func(string) float64, paragraph string, maxWidth float64) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}

	lines := []string{}
	current := ""

	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range words {
		if measure(word) > maxWidth {
			// Overlong word: emit what we have, then hard-split the word
			flush()
			lines = append(lines, splitWord(measure, word, maxWidth)...)
			// Continue packing onto the last fragment
			current = lines[len(lines)-1]
			lines = lines[:len(lines)-1]
			continue
		}

		if current == "" {
			current = word
			continue
		}

		candidate := current + " " + word
		if measure(candidate) <= maxWidth {
			current = candidate
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	flush()

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

// splitWord breaks a single overlong word into fragments each measuring at
// most maxWidth. Every fragment carries at least one rune so the split
// always terminates even when one rune alone exceeds the limit.
func splitWord(measure func(string) float64, word string, maxWidth float64) []string {
	fragments := []string{}
	current := ""

	for _, r := range word {
		candidate := current + string(r)
		if current != "" && measure(candidate) > maxWidth {
			fragments = append(fragments, current)
			current = string(r)
			continue
		}
		current = candidate
	}
	if current != "" {
		fragments = append(fragments, current)
	}

	if len(fragments) == 0 {
		fragments = []string{""}
	}
	return fragments
}
