// Package batch scores every row of an uploaded CSV document with the
// three-model ensemble, in bounded-memory chunks, skipping rows that
// cannot be processed.
package batch

import (
	"errors"
	"log"
	"strings"

	"sepsentry/ensemble"
	"sepsentry/vitals"
)

// DefaultChunkSize bounds how many rows are scored between progress logs.
// Chunking never changes output values, only logging cadence.
const DefaultChunkSize = 25000

// Fail-fast input-shape errors; everything else is per-row skip-and-continue.
var (
	ErrNoData      = errors.New("CSV must have headers and at least one data row")
	ErrNoValidRows = errors.New("no valid rows could be processed from the CSV")
)

// Row is one scored row: the raw input columns keyed by their normalized
// header names (numbers where parseable, original strings otherwise, nil
// for empty cells) merged with the ensemble outputs and the 1-based
// row_number of the source data line.
type Row map[string]any

// Summary holds the mutually-exclusive final-label counts.
type Summary struct {
	Total          int `json:"total"`
	SepsisDetected int `json:"sepsisDetected"`
	Borderline     int `json:"borderline"`
	NoSepsis       int `json:"noSepsis"`
}

// Result is the full batch response. TotalRows counts every data line in
// the document; Count only the rows that survived scoring.
type Result struct {
	Predictions []Row   `json:"predictions"`
	Count       int     `json:"count"`
	TotalRows   int     `json:"total_rows"`
	Summary     Summary `json:"summaryStats"`
}

// Run scores an entire CSV document. A chunkSize <= 0 selects the default.
func Run(content string, chunkSize int) (*Result, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	lines := splitLines(strings.TrimSpace(content))
	if len(lines) < 2 {
		return nil, ErrNoData
	}

	headers := ParseLine(lines[0])
	keys := make([]string, len(headers))
	for i, h := range headers {
		keys[i] = strings.ToLower(strings.TrimSpace(h))
	}

	totalRows := len(lines) - 1
	result := &Result{TotalRows: totalRows}
	log.Printf("batch: scoring %d rows", totalRows)

	for chunkStart := 1; chunkStart < len(lines); chunkStart += chunkSize {
		chunkEnd := min(chunkStart+chunkSize, len(lines))

		for i := chunkStart; i < chunkEnd; i++ {
			line := strings.TrimSpace(lines[i])
			if line == "" {
				continue
			}

			row, label, ok := scoreRow(headers, keys, line, i)
			if !ok {
				continue
			}

			result.Predictions = append(result.Predictions, row)
			switch label {
			case ensemble.LabelSepsisDetected:
				result.Summary.SepsisDetected++
			case ensemble.LabelBorderline:
				result.Summary.Borderline++
			default:
				result.Summary.NoSepsis++
			}
		}

		log.Printf("batch: processed %d/%d rows (%.1f%%)",
			chunkEnd-1, totalRows, float64(chunkEnd)/float64(len(lines))*100)
	}

	if len(result.Predictions) == 0 {
		return nil, ErrNoValidRows
	}

	result.Count = len(result.Predictions)
	result.Summary.Total = result.Count
	return result, nil
}

// scoreRow maps, scores and assembles a single row. A panic anywhere in
// row processing skips that row only; a bad row never aborts the batch.
func scoreRow(headers, keys []string, line string, rowNum int) (row Row, label string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("batch: row %d skipped: %v", rowNum, r)
			row, label, ok = nil, "", false
		}
	}()

	cells := ParseLine(line)
	if len(cells) == 0 {
		return nil, "", false
	}

	features := vitals.MapRow(headers, cells)
	pred := ensemble.Score(features)

	row = Row{"row_number": rowNum}
	for i, key := range keys {
		if i >= len(cells) {
			continue
		}
		row[key] = coerceCell(cells[i])
	}

	row["logistic_regression"] = pred.LogisticRegression
	row["logistic_confidence"] = pred.LogisticConfidence
	row["decision_tree"] = pred.DecisionTree
	row["decision_tree_confidence"] = pred.DecisionTreeConfidence
	row["random_forest"] = pred.RandomForest
	row["random_forest_confidence"] = pred.RandomForestConfidence
	row["final_prediction"] = pred.FinalPrediction
	row["ensemble_confidence"] = pred.EnsembleConfidence
	row["risk_score"] = pred.RiskScore
	row["sirs_score"] = pred.SIRSScore
	row["ensemble_vote"] = pred.EnsembleVote

	return row, pred.FinalPrediction, true
}

// coerceCell passes a raw cell through as a number when parseable, the
// original string when not, and nil when empty.
func coerceCell(cell string) any {
	if cell == "" {
		return nil
	}
	if v, ok := vitals.ParseNumber(cell); ok {
		return v
	}
	return cell
}
