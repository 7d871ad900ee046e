package life

import "testing"

func TestConwayDecisionTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantSurvive := n == 2 || n == 3
		wantBirth := n == 3
		if got := Conway.Alive(true, n); got != wantSurvive {
			t.Errorf("live cell with %d neighbors: alive=%v, expected %v", n, got, wantSurvive)
		}
		if got := Conway.Alive(false, n); got != wantBirth {
			t.Errorf("dead cell with %d neighbors: alive=%v, expected %v", n, got, wantBirth)
		}
	}
}

func TestParseRule(t *testing.T) {
	cases := []struct {
		in      string
		want    Rule
		wantErr bool
	}{
		{in: "B3/S23", want: Conway},
		{in: "b36/s23", want: HighLife},
		{in: "S23/B3", want: Conway},
		{in: " B3/S23 ", want: Conway},
		{in: "B3/S", want: Rule{Birth: 1 << 3}},
		{in: "B3", wantErr: true},
		{in: "B3/S29", wantErr: true},
		{in: "X3/S23", wantErr: true},
		{in: "B3/B3", wantErr: true},
		{in: "B03/S23", wantErr: true},
		{in: "/S23", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseRule(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRule(%q) succeeded, expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRule(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRule(%q)=%v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestRuleString(t *testing.T) {
	if s := Conway.String(); s != "B3/S23" {
		t.Fatalf("Conway=%q", s)
	}
	if s := HighLife.String(); s != "B36/S23" {
		t.Fatalf("HighLife=%q", s)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"rule": "B36/S23", "seed": "7", "density": "0.5"})
	if c.Rule != HighLife || c.Seed != 7 || c.Density != 0.5 {
		t.Fatalf("unexpected config %+v", c)
	}
	c = FromMap(map[string]string{"rule": "bogus", "density": "3"})
	if c != DefaultConfig() {
		t.Fatalf("invalid values must keep defaults, got %+v", c)
	}
}
