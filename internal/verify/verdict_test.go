package verify

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/claimlens/claimlens/internal/model"
)

func TestParseVerdict_FencedJSON(t *testing.T) {
	raw := "```json\n{\"status\":\"VERIFIED\",\"explanation\":\"ok\",\"confidence\":0.9}\n```"

	verdict, err := ParseVerdict(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if verdict.Status != model.StatusVerified {
		t.Errorf("Expected Verified, got %s", verdict.Status)
	}
	if verdict.Explanation != "ok" {
		t.Errorf("Expected explanation 'ok', got %q", verdict.Explanation)
	}
	if verdict.Confidence != 0.9 {
		t.Errorf("Expected confidence 0.9, got %f", verdict.Confidence)
	}
	if verdict.CorrectInfo != "" {
		t.Errorf("Expected empty correct_info, got %q", verdict.CorrectInfo)
	}
}

func TestParseVerdict_GarbageFallsClosed(t *testing.T) {
	verdict, err := ParseVerdict("garbage no json here")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if verdict.Status != model.StatusFalse {
		t.Errorf("Expected False, got %s", verdict.Status)
	}
	if verdict.Explanation != "Could not determine verdict" {
		t.Errorf("Unexpected explanation: %q", verdict.Explanation)
	}
	if verdict.Confidence != 0.5 {
		t.Errorf("Expected confidence 0.5, got %f", verdict.Confidence)
	}
}

func TestParseVerdict_EmbeddedObject(t *testing.T) {
	raw := `prefix text {"status":"inaccurate","confidence":0.4} suffix`

	verdict, err := ParseVerdict(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if verdict.Status != model.StatusInaccurate {
		t.Errorf("Expected Inaccurate, got %s", verdict.Status)
	}
	if verdict.Confidence != 0.4 {
		t.Errorf("Expected confidence 0.4, got %f", verdict.Confidence)
	}
}

func TestParseVerdict_StatusCaseInsensitive(t *testing.T) {
	tests := []struct {
		raw  string
		want model.VerificationStatus
	}{
		{`{"status":"verified"}`, model.StatusVerified},
		{`{"status":" VERIFIED "}`, model.StatusVerified},
		{`{"status":"Inaccurate"}`, model.StatusInaccurate},
		{`{"status":"FALSE"}`, model.StatusFalse},
		{`{"status":"maybe"}`, model.StatusFalse},
		{`{}`, model.StatusFalse},
	}

	for _, tt := range tests {
		verdict, err := ParseVerdict(tt.raw)
		if err != nil {
			t.Fatalf("ParseVerdict(%q): unexpected error %v", tt.raw, err)
		}
		if verdict.Status != tt.want {
			t.Errorf("ParseVerdict(%q): expected %s, got %s", tt.raw, tt.want, verdict.Status)
		}
	}
}

func TestParseVerdict_NeverProducesPending(t *testing.T) {
	raw := `{"status":"PENDING","explanation":"model tried to defer"}`

	verdict, err := ParseVerdict(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Pending is reserved for pipeline failure; an unrecognized model
	// status fails closed to False.
	if verdict.Status != model.StatusFalse {
		t.Errorf("Expected False, got %s", verdict.Status)
	}
}

func TestParseVerdict_NonNumericConfidence(t *testing.T) {
	_, err := ParseVerdict(`{"status":"VERIFIED","confidence":"high"}`)
	if err == nil {
		t.Fatal("Expected error for non-numeric confidence")
	}
	if !strings.Contains(err.Error(), "confidence") {
		t.Errorf("Expected confidence in error, got %v", err)
	}
}

func TestParseVerdict_NumericStringConfidence(t *testing.T) {
	verdict, err := ParseVerdict(`{"status":"VERIFIED","confidence":"0.8"}`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.Confidence != 0.8 {
		t.Errorf("Expected confidence 0.8, got %f", verdict.Confidence)
	}
}

func TestParseVerdict_ConfidenceClamped(t *testing.T) {
	verdict, err := ParseVerdict(`{"status":"VERIFIED","confidence":1.7}`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.Confidence != 1.0 {
		t.Errorf("Expected confidence clamped to 1.0, got %f", verdict.Confidence)
	}

	verdict, err = ParseVerdict(`{"status":"VERIFIED","confidence":-0.2}`)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.Confidence != 0.0 {
		t.Errorf("Expected confidence clamped to 0.0, got %f", verdict.Confidence)
	}
}

func TestParseVerdict_CorrectInfoPassthrough(t *testing.T) {
	raw := `{"status":"INACCURATE","explanation":"outdated","correct_info":"GDP was $27.4T in 2023","confidence":0.85}`

	verdict, err := ParseVerdict(raw)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if verdict.CorrectInfo != "GDP was $27.4T in 2023" {
		t.Errorf("Unexpected correct_info: %q", verdict.CorrectInfo)
	}
}

func TestParseVerdict_Idempotent(t *testing.T) {
	// Re-parsing the serialized default-fallback verdict yields the same
	// structured verdict.
	first, err := ParseVerdict("total garbage")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	serialized, err := json.Marshal(map[string]any{
		"status":      strings.ToUpper(string(first.Status)),
		"explanation": first.Explanation,
		"confidence":  first.Confidence,
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	second, err := ParseVerdict(string(serialized))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if second != first {
		t.Errorf("Expected idempotent parse, got %+v then %+v", first, second)
	}
}
