package batch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLinePlain(t *testing.T) {
	got := ParseLine("a, b ,c")
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseLine mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLineQuotedComma(t *testing.T) {
	got := ParseLine(`name,"Doe, Jane",42`)
	want := []string{"name", "Doe, Jane", "42"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseLine mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLineEscapedQuote(t *testing.T) {
	got := ParseLine(`"say ""hi""",x`)
	want := []string{`say "hi"`, "x"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ParseLine mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLineEmpty(t *testing.T) {
	if got := ParseLine(""); len(got) != 1 || got[0] != "" {
		t.Fatalf("ParseLine(\"\") = %#v, want one empty cell", got)
	}
}

func TestSplitLinesCRLF(t *testing.T) {
	got := splitLines("a\r\nb\nc")
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("splitLines mismatch (-want +got):\n%s", diff)
	}
}
