package wire

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func TestGet(t *testing.T) {
	data := decode(t, `{"fantasy_content":{"league":{"name":"Test League","current_week":3}}}`)

	if got := Str(Get(data, "fantasy_content", "league", "name"), ""); got != "Test League" {
		t.Errorf("got %q", got)
	}
	if got := Get(data, "fantasy_content", "nope", "name"); got != nil {
		t.Errorf("expected nil for missing path, got %v", got)
	}
	if got := Get(data, "fantasy_content", "league", "name", "deeper"); got != nil {
		t.Errorf("expected nil when traversing through a leaf, got %v", got)
	}
	if got := Get(nil, "anything"); got != nil {
		t.Errorf("expected nil for nil input, got %v", got)
	}
}

// The API serializes collections three different ways. All three must
// normalize to the same ordered item sequence.
func TestItemsShapes(t *testing.T) {
	want := []any{
		map[string]any{"team_key": "a"},
		map[string]any{"team_key": "b"},
	}

	tests := []struct {
		name  string
		input string
		want  []any
	}{
		{
			name:  "list of wrapped items",
			input: `[{"team":{"team_key":"a"}},{"team":{"team_key":"b"}}]`,
			want:  want,
		},
		{
			name:  "numeric keyed dict with count",
			input: `{"0":{"team":{"team_key":"a"}},"1":{"team":{"team_key":"b"}},"count":2}`,
			want:  want,
		},
		{
			name:  "single wrapped item",
			input: `{"team":{"team_key":"a"}}`,
			want:  []any{map[string]any{"team_key": "a"}},
		},
		{
			name:  "single bare item",
			input: `{"team_key":"a"}`,
			want:  []any{map[string]any{"team_key": "a"}},
		},
		{
			name:  "list of bare items",
			input: `[{"team_key":"a"},{"team_key":"b"}]`,
			want:  want,
		},
		{
			name:  "empty list",
			input: `[]`,
			want:  []any{},
		},
		{
			name:  "empty indexed dict",
			input: `{"count":0}`,
			want:  []any{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Items(decode(t, tc.input), "team")
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestItemsNumericOrdering(t *testing.T) {
	// Keys must order by integer value, not lexically.
	input := decode(t, `{"10":{"p":"j"},"2":{"p":"b"},"1":{"p":"a"},"count":3}`)
	got := Items(input, "p")
	want := []any{"a", "b", "j"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestItemsNil(t *testing.T) {
	got := Items(nil, "team")
	if got == nil || len(got) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", got)
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]any
	}{
		{
			name:  "property list",
			input: `[{"team_key":"a"},{"name":"Foo"},{"waiver_priority":4}]`,
			want:  map[string]any{"team_key": "a", "name": "Foo", "waiver_priority": float64(4)},
		},
		{
			name:  "last write wins",
			input: `[{"name":"Old"},{"name":"New"}]`,
			want:  map[string]any{"name": "New"},
		},
		{
			name:  "plain object passes through",
			input: `{"team_key":"a"}`,
			want:  map[string]any{"team_key": "a"},
		},
		{
			name:  "non-map entries skipped",
			input: `[{"team_key":"a"},"stray",3]`,
			want:  map[string]any{"team_key": "a"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Flatten(decode(t, tc.input))
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestList(t *testing.T) {
	if got := List(nil); len(got) != 0 {
		t.Errorf("nil should yield empty slice, got %v", got)
	}
	if got := List([]any{1, 2}); !reflect.DeepEqual(got, []any{1, 2}) {
		t.Errorf("slice should pass through, got %v", got)
	}
	if got := List(map[string]any{"a": 1}); len(got) != 1 {
		t.Errorf("singleton should wrap, got %v", got)
	}
}

func TestCoercions(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		tests := []struct {
			in   any
			def  int
			want int
		}{
			{float64(7), -1, 7},
			{"12", -1, 12},
			{"1.0", -1, 1},
			{"", -1, -1},
			{"  ", -1, -1},
			{"abc", -1, -1},
			{false, -1, -1},
			{nil, -1, -1},
		}
		for _, tc := range tests {
			if got := Int(tc.in, tc.def); got != tc.want {
				t.Errorf("Int(%v): got %d, want %d", tc.in, got, tc.want)
			}
		}
	})

	t.Run("float", func(t *testing.T) {
		tests := []struct {
			in   any
			want float64
		}{
			{float64(99.5), 99.5},
			{"112.46", 112.46},
			{"", 0},
			{false, 0},
			{nil, 0},
		}
		for _, tc := range tests {
			if got := Float(tc.in, 0); got != tc.want {
				t.Errorf("Float(%v): got %v, want %v", tc.in, got, tc.want)
			}
		}
	})

	t.Run("str", func(t *testing.T) {
		tests := []struct {
			in   any
			want string
		}{
			{"hello", "hello"},
			{float64(431), "431"},
			{false, "absent"},
			{nil, "absent"},
		}
		for _, tc := range tests {
			if got := Str(tc.in, "absent"); got != tc.want {
				t.Errorf("Str(%v): got %q, want %q", tc.in, got, tc.want)
			}
		}
	})

	t.Run("bool", func(t *testing.T) {
		tests := []struct {
			in   any
			want bool
		}{
			{true, true},
			{"1", true},
			{"true", true},
			{"0", false},
			{float64(1), true},
			{float64(0), false},
			{nil, false},
		}
		for _, tc := range tests {
			if got := Bool(tc.in); got != tc.want {
				t.Errorf("Bool(%v): got %v", tc.in, got)
			}
		}
	})
}

func TestMalformedError(t *testing.T) {
	err := MalformedCtx("scoreboard", "nfl.l.431 week 3", "no matchups container")
	want := "malformed scoreboard response (nfl.l.431 week 3): no matchups container"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
	if !IsMalformed(err) {
		t.Error("IsMalformed should match a MalformedError")
	}
	if IsMalformed(nil) {
		t.Error("IsMalformed(nil) should be false")
	}
}
