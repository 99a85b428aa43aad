package verify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/claimlens/claimlens/internal/jsonx"
	"github.com/claimlens/claimlens/internal/model"
)

// defaultExplanation is used when the model output carries no explanation
const defaultExplanation = "Could not determine verdict"

// Verdict is the structured adjudication output parsed from model text
type Verdict struct {
	Status      model.VerificationStatus
	Explanation string
	CorrectInfo string
	Confidence  float64
}

// ParseVerdict extracts a structured verdict from raw reasoning-engine
// output. Formatting noise (markdown fences, surrounding prose) is tolerated
// via the layered recovery in jsonx. An unrecognized or missing status fails
// closed to False; a missing confidence defaults to 0.5. A present but
// non-numeric confidence is a parse error, which the caller classifies as a
// claim-level failure.
func ParseVerdict(raw string) (Verdict, error) {
	obj := jsonx.Object(raw)

	status := parseStatus(jsonx.String(obj, "status", ""))

	confidence, err := parseConfidence(obj["confidence"])
	if err != nil {
		return Verdict{}, err
	}

	return Verdict{
		Status:      status,
		Explanation: jsonx.String(obj, "explanation", defaultExplanation),
		CorrectInfo: jsonx.String(obj, "correct_info", ""),
		Confidence:  confidence,
	}, nil
}

// parseStatus maps a model status string onto the enum, failing closed:
// anything unrecognized means the claim was not verified.
func parseStatus(s string) model.VerificationStatus {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERIFIED":
		return model.StatusVerified
	case "INACCURATE":
		return model.StatusInaccurate
	default:
		return model.StatusFalse
	}
}

// parseConfidence coerces the confidence field to a float in [0,1].
// Absent → 0.5. Numeric strings are accepted; anything else is an error.
func parseConfidence(v any) (float64, error) {
	switch val := v.(type) {
	case nil:
		return 0.5, nil
	case float64:
		return clamp01(val), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, fmt.Errorf("parse verdict: non-numeric confidence %q", val)
		}
		return clamp01(f), nil
	default:
		return 0, fmt.Errorf("parse verdict: non-numeric confidence %v", v)
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
