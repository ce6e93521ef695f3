package ssml

import "testing"

func TestEscape(t *testing.T) {
	got := Escape(`Tom & Jerry say "1 < 2 > 0" and 'hi'`)
	want := "Tom &amp; Jerry say &quot;1 &lt; 2 &gt; 0&quot; and &#x27;hi&#x27;"

	if got != want {
		t.Errorf("Escape() = %q, want %q", got, want)
	}
}

func TestEscapeDouble(t *testing.T) {
	// Escaping is not idempotent: pre-escaped input is escaped again.
	got := Escape(Escape("&"))

	if got != "&amp;amp;" {
		t.Errorf("Escape(Escape(%q)) = %q, want %q", "&", got, "&amp;amp;")
	}
}

func TestHeadingBreak(t *testing.T) {
	cases := map[int]string{
		1: "300ms",
		2: "200ms",
		3: "100ms",
		4: "0ms",
		5: "0ms",
		6: "0ms",
		9: "0ms",
	}

	for level, want := range cases {
		if got := HeadingBreak(level); got != want {
			t.Errorf("HeadingBreak(%d) = %q, want %q", level, got, want)
		}
	}
}
