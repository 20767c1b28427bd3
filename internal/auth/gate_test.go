package auth

import "testing"

func TestPasswordGate_Authorize(t *testing.T) {
	tests := []struct {
		name     string
		password string
		secret   string
		want     bool
	}{
		{name: "matching password", password: "admin123", secret: "admin123", want: true},
		{name: "wrong password", password: "admin123", secret: "letmein", want: false},
		{name: "empty secret", password: "admin123", secret: "", want: false},
		{name: "empty configured password never authorizes", password: "", secret: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := NewPasswordGate(tt.password)
			if got := gate.Authorize(tt.secret); got != tt.want {
				t.Errorf("Authorize(%q) = %t, want %t", tt.secret, got, tt.want)
			}
		})
	}
}
