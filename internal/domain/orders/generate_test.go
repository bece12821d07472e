package orders

import "testing"

func TestGenerate(t *testing.T) {
	inputs := Generate(25)
	if len(inputs) != 25 {
		t.Fatalf("Generate(25) = %d inputs", len(inputs))
	}

	seen := map[string]bool{}
	for i, in := range inputs {
		if seen[in.CustomerName] {
			t.Fatalf("duplicate customer name %q", in.CustomerName)
		}
		seen[in.CustomerName] = true

		if len(in.Items) != 3 {
			t.Fatalf("input %d has %d items, want 3", i, len(in.Items))
		}
		valid := 0
		for _, it := range in.Items {
			if it.Valid() {
				valid++
			}
		}
		if valid != 2 {
			t.Fatalf("input %d has %d valid items, want 2", i, valid)
		}
	}
}

func TestGenerateZero(t *testing.T) {
	if got := Generate(0); len(got) != 0 {
		t.Fatalf("Generate(0) = %d inputs", len(got))
	}
}
