package suite

import "testing"

func TestBuiltin(t *testing.T) {
	cases := Builtin()

	if len(cases) != 6 {
		t.Fatalf("expected 6 builtin cases, got %d", len(cases))
	}

	for _, c := range cases {
		if c.Name == "" {
			t.Error("builtin case has empty name")
		}
		if c.Source == "" {
			t.Errorf("case %q has empty source", c.Name)
		}
		if len(c.Expect) == 0 {
			t.Errorf("case %q has no expected labels", c.Name)
		}
	}
}

func TestBuiltin_MixedCasesExpectBothLabels(t *testing.T) {
	for _, c := range Builtin() {
		if len(c.Expect) < 2 {
			continue
		}
		var hasLine, hasBlock bool
		for _, label := range c.Expect {
			switch label {
			case "line_comment":
				hasLine = true
			case "block_comment":
				hasBlock = true
			}
		}
		if !hasLine || !hasBlock {
			t.Errorf("mixed case %q should expect both comment labels, got %v", c.Name, c.Expect)
		}
	}
}

func TestBuiltin_NamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Builtin() {
		if seen[c.Name] {
			t.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
	}
}
