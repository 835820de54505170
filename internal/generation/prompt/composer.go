package prompt

import "strings"

// SystemInstructions declares the assistant's role for every generation
// call. The code-only rule appears here and again at the end of the user
// turn: stating it twice measurably cuts down on leaked prose, and the
// sanitizer catches whatever still slips through.
const SystemInstructions = "You are an expert frontend engineer who converts UI designs into " +
	"production-quality React components. You respond with code only: no " +
	"explanations, no markdown fences, no commentary of any kind."

// baseInstructions are the fixed conversion rules sent with every request.
const baseInstructions = `Convert the attached design into a single React component.

Requirements:
- Write a TypeScript React component exported as the default export.
- Style exclusively with Tailwind CSS utility classes.
- Use icons from lucide-react only; never inline raw SVG paths for icons.
- You may import the following UI primitives from "@/components/ui": button, card, input, label, badge, progress, slider.
- Make interactive elements keyboard accessible and label them for screen readers.
- Match the colors in the design exactly: prefer the precise hex values you can extract from the image over Tailwind's default palette.
- Reproduce spacing, typography and layout as faithfully as the image allows.

Output the component code only. Do not wrap it in markdown fences and do not add any explanation before or after the code.`

// Compose merges optional caller instructions with the fixed base
// instructions. Caller intent comes first so it takes precedence; the base
// rules stay in place as fallback completeness.
func Compose(userInstructions string) string {
	userInstructions = strings.TrimSpace(userInstructions)
	if userInstructions == "" {
		return baseInstructions
	}
	return userInstructions + "\n\n" + baseInstructions
}
