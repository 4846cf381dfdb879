// Package ensemble scores a feature record with three independent heuristic
// models and combines them by majority vote.
package ensemble

import (
	"math"

	"sepsentry/vitals"
)

// Classification labels emitted by the sub-models and the ensemble.
const (
	LabelNoSepsis       = "No Sepsis"
	LabelBorderline     = "Borderline"
	LabelSepsisLikely   = "Sepsis Likely"
	LabelSepsisDetected = "Sepsis Detected"
)

// Observation is one row's resolved clinical picture: every vital filled in
// with its baseline when unmeasured, plus the SIRS count and composite risk
// score computed once and shared by all three models.
type Observation struct {
	HR         float64
	Temp       float64
	Resp       float64
	SBP        float64
	DBP        float64
	O2Sat      float64
	WBC        float64
	Lactate    float64
	Creatinine float64
	Glucose    float64
	BUN        float64
	PH         float64
	MAP        float64

	SIRS int
	Risk float64
}

// Resolve fills defaults and computes the shared scores.
func Resolve(f vitals.Features) Observation {
	o := Observation{
		HR:         f.Get("hr", vitals.DefaultHR),
		Temp:       f.Get("temp", vitals.DefaultTemp),
		Resp:       f.Get("resp", vitals.DefaultResp),
		SBP:        f.Get("sbp", vitals.DefaultSBP),
		DBP:        f.Get("dbp", vitals.DefaultDBP),
		O2Sat:      f.Get("o2sat", vitals.DefaultO2Sat),
		WBC:        f.Get("wbc", vitals.DefaultWBC),
		Lactate:    f.Get("lactate", vitals.DefaultLactate),
		Creatinine: f.Get("creatinine", vitals.DefaultCreatinine),
		Glucose:    f.Get("glucose", vitals.DefaultGlucose),
		BUN:        f.Get("bun", vitals.DefaultBUN),
		PH:         f.Get("ph", vitals.DefaultPH),
	}
	o.MAP = f.MAP(o.SBP, o.DBP)
	o.SIRS = sirsScore(o)
	o.Risk = riskScore(o)
	return o
}

// sirsScore counts systemic-inflammatory-response criteria met (0-4).
func sirsScore(o Observation) int {
	score := 0
	if o.Temp > 38 || o.Temp < 36 {
		score++
	}
	if o.HR > 90 {
		score++
	}
	if o.Resp > 20 {
		score++
	}
	if o.WBC > 12 || o.WBC < 4 {
		score++
	}
	return score
}

// riskScore is the composite severity metric. The tier boundaries and
// weights are load-bearing: every downstream label and confidence is a
// function of this number, so they must not drift.
func riskScore(o Observation) float64 {
	risk := 0.0

	// Hemodynamic compromise (most critical)
	switch {
	case o.SBP < 90:
		risk += 4
	case o.SBP < 100:
		risk += 2
	case o.SBP < 110:
		risk += 1
	}
	switch {
	case o.MAP < 65:
		risk += 3
	case o.MAP < 70:
		risk += 1.5
	}

	// Respiratory / oxygenation
	switch {
	case o.O2Sat < 90:
		risk += 4
	case o.O2Sat < 92:
		risk += 2
	case o.O2Sat < 94:
		risk += 1
	}
	switch {
	case o.Resp > 24:
		risk += 2
	case o.Resp > 20:
		risk += 1
	}

	// Temperature abnormality
	switch {
	case o.Temp > 39.5 || o.Temp < 35:
		risk += 2
	case o.Temp > 38.5 || o.Temp < 36:
		risk += 1
	}

	// Metabolic / organ dysfunction
	switch {
	case o.Lactate > 4:
		risk += 3
	case o.Lactate > 2.5:
		risk += 1.5
	case o.Lactate > 2:
		risk += 1
	}
	switch {
	case o.Creatinine > 2.5:
		risk += 2.5
	case o.Creatinine > 2:
		risk += 1.5
	case o.Creatinine > 1.5:
		risk += 1
	}
	switch {
	case o.BUN > 30:
		risk += 1.5
	case o.BUN > 25:
		risk += 0.5
	}

	// Acid-base balance
	switch {
	case o.PH < 7.25:
		risk += 2.5
	case o.PH < 7.3:
		risk += 1.5
	case o.PH < 7.35:
		risk += 0.5
	}

	// Glucose control
	switch {
	case o.Glucose > 300 || o.Glucose < 70:
		risk += 1.5
	case o.Glucose > 250 || o.Glucose < 80:
		risk += 0.5
	}

	// WBC abnormality beyond the SIRS contribution
	switch {
	case o.WBC > 15 || o.WBC < 3:
		risk += 1
	case o.WBC > 12 || o.WBC < 4:
		risk += 0.5
	}

	// Heart rate extremes; tachycardia and bradycardia scored independently
	switch {
	case o.HR > 140:
		risk += 2
	case o.HR > 120:
		risk += 1
	}
	switch {
	case o.HR < 40:
		risk += 2
	case o.HR < 50:
		risk += 1
	}

	return risk
}

// Prediction is the immutable per-row scoring output.
type Prediction struct {
	LogisticRegression     string  `json:"logistic_regression"`
	LogisticConfidence     float64 `json:"logistic_confidence"`
	DecisionTree           string  `json:"decision_tree"`
	DecisionTreeConfidence float64 `json:"decision_tree_confidence"`
	RandomForest           string  `json:"random_forest"`
	RandomForestConfidence float64 `json:"random_forest_confidence"`
	FinalPrediction        string  `json:"final_prediction"`
	EnsembleConfidence     float64 `json:"ensemble_confidence"`
	RiskScore              float64 `json:"risk_score"`
	SIRSScore              int     `json:"sirs_score"`
	EnsembleVote           int     `json:"ensemble_vote"`
}

// Score resolves the feature record and runs the full three-model ensemble.
// Pure function: identical input yields identical output.
func Score(f vitals.Features) Prediction {
	o := Resolve(f)

	verdicts := make([]Verdict, len(Models))
	vote := 0
	for i, m := range Models {
		verdicts[i] = m.Classify(o)
		if m.Positive(o) {
			vote++
		}
	}

	final := LabelNoSepsis
	confidence := 0.0
	switch {
	case vote >= 2:
		final = LabelSepsisDetected
		confidence = math.Min(100, 75+o.Risk/2)
	case vote == 1 && o.Risk >= 4:
		final = LabelBorderline
		confidence = math.Min(100, 55+o.Risk)
	case o.SIRS >= 3 || o.Risk >= 5:
		final = LabelBorderline
		confidence = math.Min(100, 50+o.Risk/1.5)
	default:
		confidence = math.Max(30, 100-o.Risk*5)
	}

	return Prediction{
		LogisticRegression:     verdicts[0].Label,
		LogisticConfidence:     round1(verdicts[0].Confidence),
		DecisionTree:           verdicts[1].Label,
		DecisionTreeConfidence: round1(verdicts[1].Confidence),
		RandomForest:           verdicts[2].Label,
		RandomForestConfidence: round1(verdicts[2].Confidence),
		FinalPrediction:        final,
		EnsembleConfidence:     round1(confidence),
		RiskScore:              round2(o.Risk),
		SIRSScore:              o.SIRS,
		EnsembleVote:           vote,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
