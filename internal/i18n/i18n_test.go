package i18n

import "testing"

func TestTFallsBackToDefault(t *testing.T) {
	Init("en")
	if got := T("does.not.exist", "fallback"); got != "fallback" {
		t.Fatalf("T = %q, want fallback", got)
	}
}

func TestTLocalizes(t *testing.T) {
	Init("de")
	if got := T("tui.files.title", "Sequence Files"); got != "Sequenzdateien" {
		t.Fatalf("T = %q, want Sequenzdateien", got)
	}

	Init("en")
	if got := T("tui.files.title", "Sequence Files"); got != "Sequence Files" {
		t.Fatalf("T = %q, want Sequence Files", got)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	Init("zz")
	if got := T("tui.files.title", "Sequence Files"); got != "Sequence Files" {
		t.Fatalf("T = %q, want English fallback", got)
	}
}

func TestTf(t *testing.T) {
	Init("en")
	if got := Tf("tui.filter.prompt", "Filter (min-max): %s", "100-5"); got != "Filter (min-max): 100-5" {
		t.Fatalf("Tf = %q", got)
	}
}
