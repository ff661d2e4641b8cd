package httputil

import (
	"encoding/json"
	"testing"
)

func TestOptionalStringUnmarshal(t *testing.T) {
	type payload struct {
		Field OptionalString `json:"field"`
	}

	tests := []struct {
		name        string
		json        string
		wantPresent bool
		wantNil     bool
		wantValue   string
	}{
		{"absent field", `{}`, false, true, ""},
		{"null field", `{"field": null}`, true, true, ""},
		{"empty string", `{"field": ""}`, true, false, ""},
		{"value", `{"field": "folder-1"}`, true, false, "folder-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			if err := json.Unmarshal([]byte(tt.json), &p); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}

			if p.Field.Present != tt.wantPresent {
				t.Errorf("Present = %v, want %v", p.Field.Present, tt.wantPresent)
			}
			if (p.Field.Value == nil) != tt.wantNil {
				t.Errorf("Value nil = %v, want %v", p.Field.Value == nil, tt.wantNil)
			}
			if !tt.wantNil && *p.Field.Value != tt.wantValue {
				t.Errorf("Value = %q, want %q", *p.Field.Value, tt.wantValue)
			}
		})
	}
}

func TestOptionalStringRejectsNonString(t *testing.T) {
	var o OptionalString
	if err := json.Unmarshal([]byte(`42`), &o); err == nil {
		t.Error("expected error for non-string value")
	}
}
