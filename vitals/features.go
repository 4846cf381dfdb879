package vitals

// Features is a sparse record of canonical feature key to measured value.
// Absent keys fall back to the clinically-normal baselines below.
type Features map[string]float64

// Baseline values assumed when a field is missing from the input.
const (
	DefaultHR         = 70.0
	DefaultTemp       = 37.0
	DefaultResp       = 16.0
	DefaultSBP        = 120.0
	DefaultDBP        = 80.0
	DefaultO2Sat      = 95.0
	DefaultWBC        = 7.0
	DefaultLactate    = 2.0
	DefaultCreatinine = 1.0
	DefaultGlucose    = 100.0
	DefaultBUN        = 20.0
	DefaultPH         = 7.35
)

// Get returns the value for key, or fallback when absent.
func (f Features) Get(key string, fallback float64) float64 {
	if v, ok := f[key]; ok {
		return v
	}
	return fallback
}

// MAP returns the mean arterial pressure, deriving it from the systolic
// and diastolic pressures when not measured directly.
func (f Features) MAP(sbp, dbp float64) float64 {
	if v, ok := f["map"]; ok {
		return v
	}
	return (sbp + 2*dbp) / 3
}
