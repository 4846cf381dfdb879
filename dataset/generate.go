// Package dataset generates synthetic vital-sign CSV files for exercising
// the batch scorer, and validates uploaded datasets before scoring.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
)

// Profile selects which clinical picture a generated row resembles.
type Profile int

const (
	Septic Profile = iota
	Borderline
	Normal
)

// header matches the column set of the published demo datasets.
var header = []string{
	"ID", "HR", "O2Sat", "Temp", "SBP", "MAP", "DBP", "Resp", "EtCO2",
	"BaseExcess", "HCO3", "FiO2", "KCal", "Glucose", "Magnesium",
	"Phosphate", "Potassium", "Bilirubin_total", "Calcium", "Chloride",
	"Creatinine", "DiasBP", "Platelets_initial", "PO2", "RespRate",
	"SaO2", "Sodium", "Urine", "WBC",
}

// Header returns the generated CSV column names in order.
func Header() []string {
	out := make([]string, len(header))
	copy(out, header)
	return out
}

// band is a uniform range [base, base+span) for one column.
type band struct{ base, span float64 }

// One band per non-ID column, in header order.
var profileBands = map[Profile][]band{
	Septic: {
		{110, 30}, {88, 8}, {35, 3}, {80, 20}, {50, 15}, {35, 15},
		{24, 10}, {20, 12}, {-3, 4}, {8, 8}, {0.21, 0.5}, {1000, 500},
		{70, 40}, {3.5, 1.5}, {0.3, 0.8}, {4.3, 1}, {1.2, 1}, {6, 1.5},
		{88, 8}, {1.8, 1}, {35, 15}, {150, 100}, {60, 25}, {24, 12},
		{80, 15}, {120, 20}, {200, 400}, {17, 5},
	},
	Borderline: {
		{95, 25}, {92, 6}, {35.5, 2.5}, {95, 25}, {60, 18}, {45, 18},
		{19, 10}, {28, 12}, {-1, 3}, {16, 10}, {0.21, 0.3}, {1350, 450},
		{90, 50}, {2.2, 0.8}, {0.7, 0.6}, {4, 0.8}, {0.9, 0.6}, {7.5, 1},
		{94, 10}, {1.2, 0.6}, {45, 18}, {200, 80}, {75, 30}, {19, 12},
		{91, 7}, {130, 12}, {700, 500}, {12, 5},
	},
	Normal: {
		{70, 20}, {95, 4}, {36.5, 1.5}, {110, 20}, {70, 15}, {55, 15},
		{14, 6}, {35, 8}, {2, 2}, {23, 4}, {0.21, 0}, {1700, 400},
		{110, 30}, {1.8, 0.5}, {1.1, 0.4}, {3.6, 0.6}, {0.6, 0.4},
		{8.5, 0.8}, {100, 6}, {0.8, 0.3}, {55, 15}, {240, 50}, {90, 15},
		{14, 8}, {96, 3}, {138, 4}, {1200, 300}, {8, 3},
	},
}

// Generator produces reproducible synthetic rows from a seed.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Row generates one data row for the given profile, ID included.
func (g *Generator) Row(id int, p Profile) []string {
	bands := profileBands[p]
	cells := make([]string, 0, len(bands)+1)
	cells = append(cells, fmt.Sprintf("%.1f", float64(id)))
	for _, b := range bands {
		cells = append(cells, fmt.Sprintf("%.1f", b.base+g.rng.Float64()*b.span))
	}
	return cells
}

// WriteCSV writes n rows in the published mix: 70% septic, 10% borderline,
// 20% normal, as contiguous blocks.
func (g *Generator) WriteCSV(w io.Writer, n int) error {
	septic := n * 7 / 10
	borderline := n / 10

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, strings.Join(header, ",")); err != nil {
		return err
	}

	for id := 1; id <= n; id++ {
		profile := Normal
		switch {
		case id <= septic:
			profile = Septic
		case id <= septic+borderline:
			profile = Borderline
		}
		if _, err := fmt.Fprintln(bw, strings.Join(g.Row(id, profile), ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}
