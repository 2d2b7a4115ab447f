package utils

import "testing"

func TestValidateClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "20:00", "23:59"}
	for _, v := range valid {
		if !ValidateClockTime(v) {
			t.Errorf("expected %q to be valid", v)
		}
	}

	invalid := []string{"", "24:00", "12:60", "7:30", "12:5", "noon", "12:30:00"}
	for _, v := range invalid {
		if ValidateClockTime(v) {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}
