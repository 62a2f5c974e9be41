package series

import "testing"

func TestMean(t *testing.T) {
	cases := []struct {
		name     string
		values   []float32
		expected float32
	}{
		{"empty", nil, 0},
		{"single", []float32{7}, 7},
		{"simple", []float32{1, 2, 3, 4}, 2.5},
		{"negative", []float32{-2, 2}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Mean(tc.values); got != tc.expected {
				t.Errorf("Expected mean %f, got %f", tc.expected, got)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if StatusOK.String() != "ok" {
		t.Errorf("Expected \"ok\", got %q", StatusOK.String())
	}
	if StatusDegenerate.String() != "degenerate" {
		t.Errorf("Expected \"degenerate\", got %q", StatusDegenerate.String())
	}
	if Status(42).String() != "unknown" {
		t.Errorf("Expected \"unknown\", got %q", Status(42).String())
	}
}
