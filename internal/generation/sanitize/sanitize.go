// Package sanitize strips non-code artifacts from raw model output. The
// generation model is asked for code only, but the output is stochastic
// text; this pass is the second line of defense behind the prompt rules.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	thinkingBlock = regexp.MustCompile(`(?is)<thinking>.*?</thinking>`)
	thinkingOpen  = regexp.MustCompile(`(?i)<thinking>`)
	thinkingClose = regexp.MustCompile(`(?i)</thinking>`)
	fenceLine     = regexp.MustCompile("^```[\\w.+-]*\\s*$")
)

// Clean turns a raw completion into compilable source text. Applying it
// twice yields the same result as applying it once.
func Clean(raw string) string {
	out := raw
	for {
		next := cleanOnce(out)
		if next == out {
			return next
		}
		out = next
	}
}

// cleanOnce makes a single stripping pass. A pass can uncover artifacts the
// same pass already scanned past (a second stray closing tag in a preamble,
// a tag reassembled by removing a block inside it), so Clean runs it to a
// fixed point. Every step only removes text, so the loop terminates.
func cleanOnce(raw string) string {
	out := thinkingBlock.ReplaceAllString(raw, "")

	// A closing tag with no opening tag before it means the model emitted
	// reasoning as preamble; everything up to and including the tag goes.
	closeLoc := thinkingClose.FindStringIndex(out)
	if closeLoc != nil {
		openLoc := thinkingOpen.FindStringIndex(out)
		if openLoc == nil || closeLoc[0] < openLoc[0] {
			out = out[closeLoc[1]:]
		}
	}

	out = thinkingOpen.ReplaceAllString(out, "")

	out = stripFences(out)

	return strings.TrimSpace(out)
}

// stripFences drops markdown code-fence delimiter lines wrapping the output.
func stripFences(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")

	for len(lines) > 0 && fenceLine.MatchString(strings.TrimSpace(lines[0])) {
		lines = lines[1:]
	}
	for len(lines) > 0 && fenceLine.MatchString(strings.TrimSpace(lines[len(lines)-1])) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}
