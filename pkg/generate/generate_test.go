package generate

import (
	"slices"
	"testing"
)

func TestGeneratorBounds(t *testing.T) {
	opts := Options{Lines: 200, MaxID: 4, MinLength: 2, MaxLength: 6, Seed: 3}
	seqs := New(opts).All()

	if len(seqs) != 200 {
		t.Fatalf("generated %d sequences, want 200", len(seqs))
	}
	for _, s := range seqs {
		if len(s) < 2 || len(s) > 6 {
			t.Errorf("length %d outside [2, 6]", len(s))
		}
		for _, id := range s {
			if id < 1 || id > 4 {
				t.Errorf("id %d outside [1, 4]", id)
			}
		}
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	opts := Options{Lines: 20, MaxID: 9, MaxLength: 10, Seed: 11}
	a := New(opts).All()
	b := New(opts).All()

	if !slices.EqualFunc(a, b, slices.Equal[[]int]) {
		t.Error("same seed should produce the same sequences")
	}

	opts.Seed = 12
	c := New(opts).All()
	if slices.EqualFunc(a, c, slices.Equal[[]int]) {
		t.Error("different seeds should produce different sequences")
	}
}

func TestGeneratorDefaults(t *testing.T) {
	g := New(Options{})
	if n := len(g.All()); n != DefaultLines {
		t.Errorf("generated %d sequences, want %d", n, DefaultLines)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"valid", Options{Lines: 1, MaxID: 1, MaxLength: 1}, false},
		{"fixed length", Options{Lines: 1, MaxID: 5, MinLength: 3, MaxLength: 3}, false},
		{"negative lines", Options{Lines: -1, MaxID: 1, MaxLength: 1}, true},
		{"zero max id", Options{Lines: 1, MaxID: 0, MaxLength: 1}, true},
		{"inverted lengths", Options{Lines: 1, MaxID: 1, MinLength: 5, MaxLength: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
