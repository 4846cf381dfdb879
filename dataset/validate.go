package dataset

import (
	"fmt"
	"strings"

	"sepsentry/vitals"
)

// Validation is a diagnostic pre-flight report for an uploaded dataset.
// Warnings are advisory and capped at five; they never affect scoring.
type Validation struct {
	IsValid     bool     `json:"isValid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	RecordCount int      `json:"recordCount"`
}

// requiredColumns are matched by substring against the normalized headers,
// so "serum_lactate" satisfies "lactate" and "blood_ph" satisfies "ph".
var requiredColumns = []string{
	"hr", "o2sat", "temp", "sbp", "dbp", "resp",
	"wbc", "bun", "creatinine", "glucose", "lactate", "ph",
}

const maxWarnings = 5

// Validate checks dataset shape and scans every row for non-numeric cells.
func Validate(csv string) Validation {
	var errs, warnings []string

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	if len(lines) < 2 {
		errs = append(errs, "CSV must have headers and at least one data row")
		return Validation{IsValid: false, Errors: errs, Warnings: warnings}
	}

	headers := strings.Split(lines[0], ",")
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var missing []string
	for _, col := range requiredColumns {
		found := false
		for _, h := range headers {
			if strings.Contains(h, col) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		errs = append(errs, "Missing required columns: "+strings.Join(missing, ", "))
	}

	validRecords := 0
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		values := strings.Split(line, ",")
		for j, v := range values {
			values[j] = strings.TrimSpace(v)
		}

		if len(values) != len(headers) {
			warnings = append(warnings, fmt.Sprintf("Row %d: Column count mismatch", i))
			continue
		}

		rowValid := true
		for j, v := range values {
			if v == "" {
				continue
			}
			if _, ok := vitals.ParseNumber(v); !ok {
				warnings = append(warnings, fmt.Sprintf("Row %d: Non-numeric value %q in column %s", i, v, headers[j]))
				rowValid = false
			}
		}
		if rowValid {
			validRecords++
		}
	}

	if validRecords == 0 {
		errs = append(errs, "No valid records found in dataset")
	}

	if len(warnings) > maxWarnings {
		warnings = warnings[:maxWarnings]
	}

	return Validation{
		IsValid:     len(errs) == 0,
		Errors:      errs,
		Warnings:    warnings,
		RecordCount: validRecords,
	}
}
