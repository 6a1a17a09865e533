package convert

import "testing"

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
		ok   bool
	}{
		{name: "int", v: 1, want: 1, ok: true},
		{name: "int64", v: int64(-7), want: -7, ok: true},
		{name: "integral float", v: 4.0, want: 4, ok: true},
		{name: "fractional float", v: 1.5, want: 0, ok: false},
		{name: "string", v: " 12 ", want: 12, ok: true},
		{name: "bool", v: true, want: 0, ok: false},
		{name: "nil", v: nil, want: 0, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt(tt.v)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ToInt() = %v, %v, want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected float64
		success  bool
	}{
		{
			name:     "int conversion",
			input:    10,
			expected: 10.0,
			success:  true,
		},
		{
			name:     "float conversion",
			input:    3.14,
			expected: 3.14,
			success:  true,
		},
		{
			name:     "string conversion",
			input:    "2.718",
			expected: 2.718,
			success:  true,
		},
		{
			name:     "german string conversion",
			input:    "2,5",
			expected: 2.5,
			success:  true,
		},
		{
			name:     "invalid string conversion",
			input:    "not a number",
			expected: 0,
			success:  false,
		},
		{
			name:     "bool is no number",
			input:    true,
			expected: 0,
			success:  false,
		},
		{
			name:     "unsupported type conversion",
			input:    []int{1, 2, 3},
			expected: 0,
			success:  false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, success := ToFloat(test.input)
			if success != test.success {
				t.Errorf("expected success value of %v, but got %v", test.success, success)
			}
			if success && result != test.expected {
				t.Errorf("expected %v, but got %v", test.expected, result)
			}
		})
	}
}

func TestMustFloats(t *testing.T) {
	fs, ok := MustFloats([]any{1, 2.5, 3})
	if !ok || len(fs) != 3 || fs[1] != 2.5 {
		t.Errorf("unexpected result %v, %v", fs, ok)
	}
	if _, ok := MustFloats([]any{1, "x"}); ok {
		t.Errorf("expected failure on non-numeric value")
	}
}

func TestToLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{name: "int", input: 10, expected: "10"},
		{name: "float", input: 3.14, expected: "3.14"},
		{name: "integral float", input: 2.0, expected: "2.0"},
		{name: "string", input: "a b", expected: `"a b"`},
		{name: "bool", input: true, expected: "true"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := ToLiteral(test.input)
			if result != test.expected {
				t.Errorf("expected %q, but got %q", test.expected, result)
			}
		})
	}
}
