package sanitize

import "testing"

func TestClean_RemovesThinkingBlock(t *testing.T) {
	got := Clean("<thinking>ignore me</thinking>const x=1;")
	want := "const x=1;"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestClean_RemovesMultilineThinkingBlocks(t *testing.T) {
	in := "<thinking>\nfirst\nthoughts\n</thinking>\nconst a=1;\n<THINKING>more</THINKING>\nconst b=2;"
	got := Clean(in)
	want := "const a=1;\n\nconst b=2;"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestClean_DropsPreambleBeforeUnmatchedClosingTag(t *testing.T) {
	got := Clean("Let me look at this design.</thinking>export default function C(){}")
	want := "export default function C(){}"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestClean_DropsRepeatedStrayClosingTags(t *testing.T) {
	got := Clean("first thought</thinking>second thought</thinking>const x=1;")
	want := "const x=1;"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestClean_DropsBareOpeningTag(t *testing.T) {
	got := Clean("<thinking>const x=1;")
	want := "const x=1;"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestClean_StripsFences(t *testing.T) {
	got := Clean("```tsx\nconst x=1;\n```")
	want := "const x=1;"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestClean_KeepsInteriorFences(t *testing.T) {
	// A fence line in the middle of the code is not a wrapping delimiter.
	in := "const doc = `\n```\n`;\nconst x=1;"
	got := Clean(in)
	if got != in {
		t.Errorf("Clean() = %q, want input unchanged", got)
	}
}

func TestClean_TrimsWhitespace(t *testing.T) {
	got := Clean("\n\n  const x=1;  \n\n")
	want := "const x=1;"
	if got != want {
		t.Errorf("Clean() = %q, want %q", got, want)
	}
}

func TestClean_Idempotent(t *testing.T) {
	cases := []string{
		"<thinking>a</thinking>const x=1;",
		"prose</thinking>```tsx\nconst x=1;\n```",
		"```\nexport default function C(){return null}\n```",
		"<thinking>unclosed\nconst x=1;",
		"plain code with no artifacts",
		"",
		"<thinking></thinking>",
		"a</thinking>b</thinking>const x=1;",
		"<thin<thinking>x</thinking>king>y</thinking>z",
		"```\n```tsx\nconst x=1;",
	}
	for _, c := range cases {
		once := Clean(c)
		twice := Clean(once)
		if once != twice {
			t.Errorf("Clean not idempotent for %q: once=%q twice=%q", c, once, twice)
		}
	}
}
