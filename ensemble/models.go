package ensemble

import "math"

// Verdict is one sub-model's labeled classification of an observation.
type Verdict struct {
	Label      string
	Confidence float64
}

// Model is the common shape of the three sub-models. Positive reports the
// model's binary vote for the ensemble, which is deliberately stricter than
// its label (a "Borderline" verdict is not a positive vote).
type Model interface {
	Name() string
	Classify(o Observation) Verdict
	Positive(o Observation) bool
}

// Models is the fixed ensemble, in vote order.
var Models = [3]Model{logisticModel{}, treeModel{}, forestModel{}}

const logisticThreshold = 0.3

// logisticModel scales the composite risk score into a pseudo-probability.
type logisticModel struct{}

func (logisticModel) Name() string { return "logistic_regression" }

func (logisticModel) Classify(o Observation) Verdict {
	score := o.Risk / 25
	label := LabelNoSepsis
	if score >= logisticThreshold {
		label = LabelSepsisLikely
	}
	return Verdict{
		Label:      label,
		Confidence: math.Min(100, math.Max(10, score*100)),
	}
}

func (logisticModel) Positive(o Observation) bool {
	return o.Risk/25 >= logisticThreshold
}

// treeModel walks a fixed sequence of mutually-exclusive branches. Branch
// order is part of the contract: the SIRS+lactate borderline branches are
// checked before the shock branch.
type treeModel struct{}

func (treeModel) Name() string { return "decision_tree" }

func (treeModel) Classify(o Observation) Verdict {
	switch {
	case o.SIRS >= 2 && (o.Lactate > 2 || o.Creatinine > 1.5):
		return Verdict{LabelBorderline, math.Min(75, 50+o.Risk*3)}
	case o.SIRS >= 3 && (o.Lactate > 2.5 || o.SBP < 105):
		return Verdict{LabelBorderline, math.Min(80, 55+o.Risk*2.5)}
	case o.SBP < 90 || (o.O2Sat < 92 && o.Resp > 22) || o.Lactate > 4 || (o.SIRS == 4 && o.Risk >= 5):
		return Verdict{LabelSepsisLikely, math.Min(90, 65+o.Risk*2)}
	case o.Risk >= 4:
		return Verdict{LabelBorderline, math.Min(70, 45+o.Risk*2)}
	default:
		return Verdict{LabelNoSepsis, math.Max(20, 100-o.Risk*10)}
	}
}

func (m treeModel) Positive(o Observation) bool {
	return m.Classify(o).Label == LabelSepsisLikely
}

// forestModel counts five independent condition votes.
type forestModel struct{}

func (forestModel) Name() string { return "random_forest" }

func (forestModel) votes(o Observation) int {
	votes := 0
	if o.SBP < 100 || o.MAP < 70 {
		votes++
	}
	if o.SIRS >= 2 {
		votes++
	}
	if o.Lactate > 2 {
		votes++
	}
	if o.O2Sat < 93 || o.Resp > 22 {
		votes++
	}
	if o.Creatinine > 1.5 || o.BUN > 25 || o.Lactate > 2.5 {
		votes++
	}
	return votes
}

func (m forestModel) Classify(o Observation) Verdict {
	votes := m.votes(o)
	var v Verdict
	switch {
	case votes >= 4:
		v = Verdict{LabelSepsisLikely, 80 + float64(votes)*2}
	case votes == 3:
		v = Verdict{LabelBorderline, 65 + float64(votes)*3}
	case votes == 2:
		v = Verdict{LabelBorderline, 50 + float64(votes)*5}
	case votes == 1:
		v = Verdict{LabelBorderline, 35 + float64(votes)*5}
	default:
		v = Verdict{LabelNoSepsis, math.Max(20, 100-o.Risk*8)}
	}
	v.Confidence = math.Min(100, v.Confidence)
	return v
}

func (m forestModel) Positive(o Observation) bool {
	return m.votes(o) >= 4
}
