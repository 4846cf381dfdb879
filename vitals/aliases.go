// Package vitals maps raw CSV columns onto the canonical vital-sign and
// lab-value vocabulary used by the scoring engine.
package vitals

import (
	"math"
	"strconv"
	"strings"
)

type aliasEntry struct {
	key     string
	aliases []string
}

// aliasTable is scanned in order; the first alias set containing a header
// claims it. Order matters: "sao2" appears under both o2sat and sao2, and
// o2sat is declared first. Never mutated after init.
var aliasTable = []aliasEntry{
	{"hr", []string{"hr", "heart_rate", "heartrate", "heart rate"}},
	{"o2sat", []string{"o2sat", "oxygen_saturation", "oxsat", "sao2"}},
	{"temp", []string{"temp", "temperature", "body_temp"}},
	{"sbp", []string{"sbp", "systolic", "systolic_bp", "systolic_pressure"}},
	{"map", []string{"map", "mean_ap", "mean_arterial_pressure"}},
	{"dbp", []string{"dbp", "diastolic", "diastolic_bp", "diastolic_pressure"}},
	{"resp", []string{"resp", "respiratory_rate", "respiration_rate", "rr"}},
	{"etco2", []string{"etco2", "end_tidal_co2"}},
	{"baseexcess", []string{"baseexcess", "base_excess", "be"}},
	{"hco3", []string{"hco3", "bicarbonate"}},
	{"fio2", []string{"fio2", "fraction_inspired_oxygen"}},
	{"ph", []string{"ph", "blood_ph"}},
	{"paco2", []string{"paco2", "arterial_co2"}},
	{"sao2", []string{"sao2", "o2sat"}},
	{"ast", []string{"ast", "aspartate_aminotransferase"}},
	{"bun", []string{"bun", "blood_urea_nitrogen", "urea"}},
	{"alkalinephos", []string{"alkalinephos", "alkaline_phosphatase", "alk_phos"}},
	{"calcium", []string{"calcium", "serum_calcium"}},
	{"chloride", []string{"chloride", "serum_chloride"}},
	{"creatinine", []string{"creatinine", "serum_creatinine"}},
	{"glucose", []string{"glucose", "blood_glucose"}},
	{"lactate", []string{"lactate", "serum_lactate"}},
	{"magnesium", []string{"magnesium", "serum_magnesium"}},
	{"phosphate", []string{"phosphate", "serum_phosphate"}},
	{"potassium", []string{"potassium", "serum_potassium"}},
	{"wbc", []string{"wbc", "white_blood_cell", "white_blood_cells", "leukocyte"}},
	{"platelet", []string{"platelet", "platelets", "plt"}},
	{"hgb", []string{"hgb", "hemoglobin"}},
	{"hct", []string{"hct", "hematocrit"}},
	{"ptt", []string{"ptt", "partial_thromboplastin_time"}},
	{"fibrinogen", []string{"fibrinogen"}},
	{"bilirubin_direct", []string{"bilirubin_direct", "direct_bilirubin"}},
	{"bilirubin_total", []string{"bilirubin_total", "total_bilirubin"}},
	{"troponini", []string{"troponini", "troponin"}},
}

// Canonical resolves a raw column header to its canonical feature key.
func Canonical(header string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(header))
	for _, entry := range aliasTable {
		for _, alias := range entry.aliases {
			if alias == normalized {
				return entry.key, true
			}
		}
	}
	return "", false
}

// ParseNumber parses a cell as a finite number. Anything else is dropped
// by the caller rather than coerced to zero.
func ParseNumber(cell string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// MapRow builds a sparse feature record from one CSV row. Headers that
// match no alias are ignored; cells that fail to parse leave the feature
// absent. When two headers resolve to the same key the later one wins,
// matching the upstream scorer this table was lifted from.
func MapRow(headers, row []string) Features {
	features := Features{}
	for i, header := range headers {
		key, ok := Canonical(header)
		if !ok {
			continue
		}
		if i >= len(row) {
			continue
		}
		if v, ok := ParseNumber(row[i]); ok {
			features[key] = v
		}
	}
	return features
}
