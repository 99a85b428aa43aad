package jsonx

import "testing"

func TestStripFences_LanguageTag(t *testing.T) {
	raw := "```json\n{\"a\": 1}\n```"
	if got := StripFences(raw); got != `{"a": 1}` {
		t.Errorf("Expected fences stripped, got %q", got)
	}
}

func TestStripFences_NoTag(t *testing.T) {
	raw := "```\n{\"a\": 1}\n```"
	if got := StripFences(raw); got != `{"a": 1}` {
		t.Errorf("Expected fences stripped, got %q", got)
	}
}

func TestStripFences_UnclosedFence(t *testing.T) {
	raw := "```\n{\"a\": 1}"
	if got := StripFences(raw); got != `{"a": 1}` {
		t.Errorf("Expected opening fence dropped, got %q", got)
	}
}

func TestStripFences_Passthrough(t *testing.T) {
	raw := `  {"a": 1}  `
	if got := StripFences(raw); got != `{"a": 1}` {
		t.Errorf("Expected trimmed passthrough, got %q", got)
	}
}

func TestObject_Direct(t *testing.T) {
	obj := Object(`{"status": "VERIFIED"}`)
	if obj["status"] != "VERIFIED" {
		t.Errorf("Expected direct parse, got %v", obj)
	}
}

func TestObject_EmbeddedInProse(t *testing.T) {
	obj := Object(`Sure! Here is the verdict: {"status": "FALSE"} Let me know if you need more.`)
	if obj["status"] != "FALSE" {
		t.Errorf("Expected span extraction, got %v", obj)
	}
}

func TestObject_TotalFailure(t *testing.T) {
	obj := Object("no json at all")
	if obj == nil {
		t.Fatal("Expected empty object, got nil")
	}
	if len(obj) != 0 {
		t.Errorf("Expected empty object, got %v", obj)
	}
}

func TestArray_Direct(t *testing.T) {
	entries := Array(`[{"claim": "a"}, {"claim": "b"}]`)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0]["claim"] != "a" || entries[1]["claim"] != "b" {
		t.Errorf("Unexpected entries: %v", entries)
	}
}

func TestArray_Fenced(t *testing.T) {
	raw := "```json\n[{\"claim\": \"GDP grew 3%\"}]\n```"
	entries := Array(raw)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
}

func TestArray_EmbeddedInProse(t *testing.T) {
	raw := `I found these claims: [{"claim": "x"}] as requested.`
	entries := Array(raw)
	if len(entries) != 1 || entries[0]["claim"] != "x" {
		t.Errorf("Expected span extraction, got %v", entries)
	}
}

func TestArray_SkipsNonObjectEntries(t *testing.T) {
	entries := Array(`[{"claim": "a"}, "stray string", 42]`)
	if len(entries) != 1 {
		t.Errorf("Expected non-object entries skipped, got %d", len(entries))
	}
}

func TestArray_TotalFailure(t *testing.T) {
	entries := Array("nothing useful")
	if entries == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty slice, got %v", entries)
	}
}

func TestString_Defaults(t *testing.T) {
	obj := map[string]any{"present": "value", "wrongtype": 7}

	if got := String(obj, "present", "d"); got != "value" {
		t.Errorf("Expected value, got %q", got)
	}
	if got := String(obj, "missing", "d"); got != "d" {
		t.Errorf("Expected default for missing key, got %q", got)
	}
	if got := String(obj, "wrongtype", "d"); got != "d" {
		t.Errorf("Expected default for non-string, got %q", got)
	}
}
