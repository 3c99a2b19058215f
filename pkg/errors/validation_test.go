package errors

import (
	"testing"
)

func TestValidateShipID(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 42, false},
		{"max", MaxShipID, false},
		{"negative", -1, true},
		{"too large", MaxShipID + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShipID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShipID(%d) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateArrivals(t *testing.T) {
	if err := ValidateArrivals(nil, 10); err != nil {
		t.Errorf("empty sequence should pass: %v", err)
	}
	if err := ValidateArrivals([]int{3, 1, 2}, 3); err != nil {
		t.Errorf("valid sequence should pass: %v", err)
	}

	err := ValidateArrivals([]int{3, 1, 2}, 2)
	if !Is(err, ErrCodeInvalidInput) {
		t.Errorf("too long sequence: got %v, want INVALID_INPUT", err)
	}

	err = ValidateArrivals([]int{3, -1}, 0)
	if !Is(err, ErrCodeInvalidInput) {
		t.Errorf("negative id: got %v, want INVALID_INPUT", err)
	}
	if got := UserMessage(err); got != "container 2" {
		t.Errorf("UserMessage = %q, want %q", got, "container 2")
	}
}

func TestValidateStacks(t *testing.T) {
	if err := ValidateStacks([][]int{{3, 1}, {2}}); err != nil {
		t.Errorf("valid stacks should pass: %v", err)
	}
	if err := ValidateStacks([][]int{{3, 1}, {2, -5}}); err == nil {
		t.Error("negative id should fail")
	}
}
