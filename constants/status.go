package constants

// ParseStatus summarizes how much of a resume was recovered. It is
// informational only: a structured record is returned for every status.
type ParseStatus string

const (
	StatusSuccess ParseStatus = "SUCCESS"
	StatusPartial ParseStatus = "PARTIAL"
	StatusFailed  ParseStatus = "FAILED"
)

// Aggregate-confidence thresholds for the overall parse status.
const (
	SuccessThreshold = 0.75
	PartialThreshold = 0.40
)
