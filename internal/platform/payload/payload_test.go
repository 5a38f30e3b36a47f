package payload

import "testing"

func TestLookup_NestedObjects(t *testing.T) {
	t.Parallel()

	doc := map[string]any{
		"response": map[string]any{
			"matches": []any{map[string]any{"id": "1"}},
		},
		"empty": nil,
	}

	if got := Slice(doc, "response", "matches"); len(got) != 1 {
		t.Fatalf("expected one match, got %d", len(got))
	}
	if _, ok := Lookup(doc, "empty"); ok {
		t.Fatalf("expected nil value to be treated as missing")
	}
	if got := Map(doc, "response", "matches"); got != nil {
		t.Fatalf("expected nil map for array value, got %v", got)
	}
	if got := Slice([]any{1}, "x"); got != nil {
		t.Fatalf("expected nil for non-object root")
	}
}

func TestString_Scalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "trimmed string", in: "  India  ", want: "India"},
		{name: "integral float", in: float64(120), want: "120"},
		{name: "fractional float", in: 15.2, want: "15.2"},
		{name: "large id", in: float64(98765432), want: "98765432"},
		{name: "int", in: 3, want: "3"},
		{name: "bool", in: true, want: "true"},
		{name: "nil", in: nil, want: ""},
		{name: "object", in: map[string]any{"a": 1}, want: ""},
		{name: "array", in: []any{"a"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Fatalf("String(%v)=%q want=%q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOrderedByNumericSuffix(t *testing.T) {
	t.Parallel()

	src := map[string]any{
		"bat_10": map[string]any{"name": "ten"},
		"bat_2":  map[string]any{"name": "two"},
		"bat_1":  map[string]any{"name": "one"},
		"extra":  map[string]any{"name": "extra"},
		"skip":   "not an object",
	}

	got := OrderedByNumericSuffix(src)
	want := []string{"one", "two", "ten", "extra"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got=%d want=%d", len(got), len(want))
	}
	for i, name := range want {
		if got[i]["name"] != name {
			t.Fatalf("position %d: got=%v want=%s", i, got[i]["name"], name)
		}
	}
}

func TestBoolOnlyAcceptsBooleans(t *testing.T) {
	t.Parallel()

	src := map[string]any{"isLive": true, "matchStarted": "true"}
	if v, ok := Bool(src, "isLive"); !ok || !v {
		t.Fatalf("expected real bool to be read")
	}
	if _, ok := Bool(src, "matchStarted"); ok {
		t.Fatalf("expected string value to be rejected")
	}
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	for _, v := range []any{nil, false, "", float64(0), 0} {
		if Truthy(v) {
			t.Fatalf("expected %v to be falsy", v)
		}
	}
	for _, v := range []any{true, "no", float64(1), map[string]any{}} {
		if !Truthy(v) {
			t.Fatalf("expected %v to be truthy", v)
		}
	}
}
