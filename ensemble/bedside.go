package ensemble

import (
	"strconv"

	"sepsentry/vitals"
)

// The bedside scorer is the simplified six-parameter assessment behind the
// single-record endpoint. It predates the batch ensemble and uses its own
// coarser SIRS-like weights; the two scorers intentionally do not agree
// numerically and are kept separate for response compatibility.

// BedsideInput accepts each vital as either a JSON number or a numeric
// string, since the upload form posts strings.
type BedsideInput struct {
	Temperature     any `json:"temperature"`
	HeartRate       any `json:"heart_rate"`
	SystolicBP      any `json:"systolic_bp"`
	DiastolicBP     any `json:"diastolic_bp"`
	RespiratoryRate any `json:"respiratory_rate"`
	WBCCount        any `json:"wbc_count"`
}

// BedsideVitals echoes the resolved values back to the caller.
type BedsideVitals struct {
	Temperature float64 `json:"temperature"`
	HR          float64 `json:"hr"`
	SBP         float64 `json:"sbp"`
	DBP         float64 `json:"dbp"`
	RR          float64 `json:"rr"`
	WBC         float64 `json:"wbc"`
}

type BedsideResult struct {
	LogisticRegression string        `json:"LogisticRegression"`
	DecisionTree       string        `json:"DecisionTree"`
	RandomForest       string        `json:"RandomForest"`
	FinalModel         string        `json:"FinalModel"`
	FinalPrediction    string        `json:"FinalPrediction"`
	RiskScore          string        `json:"RiskScore"`
	Vitals             BedsideVitals `json:"Vitals"`
}

// coerce parses a loosely-typed vital. Unparseable and zero values both
// fall back to the baseline, mirroring the original form handling where an
// empty field and an explicit zero were indistinguishable.
func coerce(raw any, fallback float64) float64 {
	switch v := raw.(type) {
	case float64:
		if v != 0 {
			return v
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil && f != 0 {
			return f
		}
	}
	return fallback
}

// BedsideScore runs the simplified assessment.
func BedsideScore(in BedsideInput) BedsideResult {
	v := BedsideVitals{
		Temperature: coerce(in.Temperature, vitals.DefaultTemp),
		HR:          coerce(in.HeartRate, vitals.DefaultHR),
		SBP:         coerce(in.SystolicBP, vitals.DefaultSBP),
		DBP:         coerce(in.DiastolicBP, vitals.DefaultDBP),
		RR:          coerce(in.RespiratoryRate, vitals.DefaultResp),
		WBC:         coerce(in.WBCCount, vitals.DefaultWBC),
	}

	risk := 0.0
	if v.Temperature > 38 || v.Temperature < 36 {
		risk += 2
	}
	if v.HR > 90 {
		risk += 2
	}
	if v.RR > 20 {
		risk += 2
	}
	if v.WBC > 12 || v.WBC < 4 {
		risk += 2
	}
	if v.SBP < 90 || v.SBP > 160 {
		risk += 1.5
	}
	if v.DBP < 60 || v.DBP > 100 {
		risk += 1.5
	}

	logistic := LabelNoSepsis
	if risk > 4 {
		logistic = LabelSepsisLikely
	}
	tree := LabelNoSepsis
	if risk > 5 {
		tree = LabelSepsisLikely
	}
	forest := "Low Risk"
	if risk > 4.5 {
		forest = "Sepsis Risk"
	}

	vote := 0
	if logistic == LabelSepsisLikely {
		vote++
	}
	if tree == LabelSepsisLikely {
		vote++
	}
	if forest == "Sepsis Risk" {
		vote++
	}

	final := LabelNoSepsis
	if vote >= 2 {
		final = LabelSepsisDetected
	}

	return BedsideResult{
		LogisticRegression: logistic,
		DecisionTree:       tree,
		RandomForest:       forest,
		FinalModel:         "Ensemble (Voting)",
		FinalPrediction:    final,
		RiskScore:          strconv.FormatFloat(risk, 'f', 1, 64),
		Vitals:             v,
	}
}
