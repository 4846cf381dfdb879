package ensemble

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"sepsentry/vitals"
)

func TestScoreAllDefaults(t *testing.T) {
	got := Score(vitals.Features{})

	want := Prediction{
		LogisticRegression:     LabelNoSepsis,
		LogisticConfidence:     10,
		DecisionTree:           LabelNoSepsis,
		DecisionTreeConfidence: 100,
		RandomForest:           LabelNoSepsis,
		RandomForestConfidence: 100,
		FinalPrediction:        LabelNoSepsis,
		EnsembleConfidence:     100,
		RiskScore:              0,
		SIRSScore:              0,
		EnsembleVote:           0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Score(defaults) mismatch (-want +got):\n%s", diff)
	}
}

// Severe septic-shock picture. The decision tree lands on its first branch
// (SIRS>=2 with elevated lactate) and reports Borderline, so only the
// logistic and forest models vote positive; two votes still make the final
// call Sepsis Detected.
func TestScoreSevereRow(t *testing.T) {
	f := vitals.Features{
		"sbp":     70,
		"o2sat":   85,
		"lactate": 5,
		"resp":    28,
		"wbc":     18,
		"temp":    39.5,
	}
	got := Score(f)

	want := Prediction{
		LogisticRegression:     LabelSepsisLikely,
		LogisticConfidence:     60,
		DecisionTree:           LabelBorderline,
		DecisionTreeConfidence: 75,
		RandomForest:           LabelSepsisLikely,
		RandomForestConfidence: 90,
		FinalPrediction:        LabelSepsisDetected,
		EnsembleConfidence:     82.5,
		RiskScore:              15,
		SIRSScore:              3,
		EnsembleVote:           2,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Score(severe) mismatch (-want +got):\n%s", diff)
	}
}

func TestScoreIdempotent(t *testing.T) {
	f := vitals.Features{"hr": 135, "lactate": 3.1, "ph": 7.28}
	first := Score(f)
	second := Score(f)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated scoring diverged (-first +second):\n%s", diff)
	}
}

func TestRiskMonotonicInLactate(t *testing.T) {
	prev := -1.0
	for _, lactate := range []float64{2.0, 2.5, 4.0, 4.1} {
		o := Resolve(vitals.Features{"lactate": lactate})
		if o.Risk < prev {
			t.Fatalf("risk decreased at lactate %v: %v -> %v", lactate, prev, o.Risk)
		}
		prev = o.Risk
	}
}

func TestSIRSCriteria(t *testing.T) {
	tests := []struct {
		name string
		f    vitals.Features
		want int
	}{
		{"defaults", vitals.Features{}, 0},
		{"fever", vitals.Features{"temp": 38.5}, 1},
		{"hypothermia", vitals.Features{"temp": 35.5}, 1},
		{"tachycardia", vitals.Features{"hr": 95}, 1},
		{"tachypnea", vitals.Features{"resp": 24}, 1},
		{"leukocytosis", vitals.Features{"wbc": 13}, 1},
		{"leukopenia", vitals.Features{"wbc": 3.5}, 1},
		{"all four", vitals.Features{"temp": 39, "hr": 120, "resp": 30, "wbc": 18}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.f).SIRS; got != tt.want {
				t.Fatalf("SIRS = %d, want %d", got, tt.want)
			}
		})
	}
}

// Borderline-by-risk branch: no model votes positive, SIRS stays low, but
// the accumulated risk (2.5 acidosis + 1.5 BUN + 0.5 glucose + 1 creatinine)
// crosses 5 and the confidence formula divides by 1.5.
func TestEnsembleBorderlineConfidenceRounding(t *testing.T) {
	f := vitals.Features{
		"ph":         7.2,
		"bun":        31,
		"glucose":    260,
		"creatinine": 1.6,
	}
	got := Score(f)

	if got.RiskScore != 5.5 {
		t.Fatalf("risk = %v, want 5.5", got.RiskScore)
	}
	if got.FinalPrediction != LabelBorderline {
		t.Fatalf("final = %q, want Borderline", got.FinalPrediction)
	}
	// 50 + 5.5/1.5 = 53.666..., rounded to one decimal.
	if got.EnsembleConfidence != 53.7 {
		t.Fatalf("ensemble confidence = %v, want 53.7", got.EnsembleConfidence)
	}
	if got.EnsembleVote != 0 {
		t.Fatalf("vote = %d, want 0", got.EnsembleVote)
	}
}

func TestModelNames(t *testing.T) {
	want := []string{"logistic_regression", "decision_tree", "random_forest"}
	for i, m := range Models {
		if m.Name() != want[i] {
			t.Errorf("Models[%d].Name() = %q, want %q", i, m.Name(), want[i])
		}
	}
}
