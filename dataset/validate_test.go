package dataset

import (
	"strings"
	"testing"
)

const validHeader = "hr,o2sat,temp,sbp,dbp,resp,wbc,bun,creatinine,glucose,lactate,ph"

func TestValidateCleanDataset(t *testing.T) {
	csv := validHeader + "\n70,95,37,120,80,16,7,20,1,100,2,7.35\n"

	got := Validate(csv)
	if !got.IsValid {
		t.Fatalf("expected valid, got errors %v", got.Errors)
	}
	if got.RecordCount != 1 {
		t.Fatalf("recordCount = %d, want 1", got.RecordCount)
	}
	if len(got.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", got.Warnings)
	}
}

func TestValidateHeaderOnly(t *testing.T) {
	got := Validate(validHeader)
	if got.IsValid {
		t.Fatal("header-only dataset should be invalid")
	}
	if got.RecordCount != 0 {
		t.Fatalf("recordCount = %d, want 0", got.RecordCount)
	}
}

func TestValidateMissingColumns(t *testing.T) {
	got := Validate("hr,temp\n70,37\n")
	if got.IsValid {
		t.Fatal("expected invalid for missing required columns")
	}
	found := false
	for _, e := range got.Errors {
		if strings.Contains(e, "Missing required columns") && strings.Contains(e, "lactate") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected missing-columns error, got %v", got.Errors)
	}
}

// Required columns match by substring: hr_avg satisfies hr, serum_lactate
// satisfies lactate, and so on.
func TestValidateAliasedHeadersSatisfyRequirements(t *testing.T) {
	header := "hr_avg,o2sat_pct,temp_c,sbp_mmhg,dbp_mmhg,resp_rate," +
		"wbc_count,bun_level,serum_creatinine,blood_glucose,serum_lactate,blood_ph"
	got := Validate(header + "\n70,95,37,120,80,16,7,20,1,100,2,7.35\n")
	if !got.IsValid {
		t.Fatalf("expected valid, got errors %v", got.Errors)
	}
}

func TestValidateWarningsCappedAtFive(t *testing.T) {
	var b strings.Builder
	b.WriteString(validHeader + "\n")
	for i := 0; i < 8; i++ {
		b.WriteString("bad,95,37,120,80,16,7,20,1,100,2,7.35\n")
	}
	b.WriteString("70,95,37,120,80,16,7,20,1,100,2,7.35\n")

	got := Validate(b.String())
	if len(got.Warnings) != 5 {
		t.Fatalf("warnings = %d, want cap of 5", len(got.Warnings))
	}
	if got.RecordCount != 1 {
		t.Fatalf("recordCount = %d, want 1", got.RecordCount)
	}
}

func TestValidateColumnCountMismatch(t *testing.T) {
	got := Validate(validHeader + "\n70,95\n70,95,37,120,80,16,7,20,1,100,2,7.35\n")
	if got.RecordCount != 1 {
		t.Fatalf("recordCount = %d, want 1", got.RecordCount)
	}
	found := false
	for _, w := range got.Warnings {
		if strings.Contains(w, "Column count mismatch") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected mismatch warning, got %v", got.Warnings)
	}
}
