package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "domestic mobile with leading zero",
			raw:  "05321234567",
			want: "+905321234567",
		},
		{
			name: "domestic mobile without leading zero",
			raw:  "5321234567",
			want: "+905321234567",
		},
		{
			name: "country code already attached",
			raw:  "905321234567",
			want: "+905321234567",
		},
		{
			name: "international form with plus and spaces",
			raw:  "+90 532 123 45 67",
			want: "+905321234567",
		},
		{
			name: "dashes and parentheses",
			raw:  "0 (532) 123-45-67",
			want: "+905321234567",
		},
		{
			name: "digits embedded in freeform text",
			raw:  "tel: 532.123.45.67",
			want: "+905321234567",
		},
		{
			name: "foreign number kept best effort",
			raw:  "+44 20 7123 4567",
			want: "+442071234567",
		},
		{
			name: "too few digits",
			raw:  "12345",
			want: "",
		},
		{
			name: "no digits at all",
			raw:  "yok",
			want: "",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}

func TestNormalizePhone_Deterministic(t *testing.T) {
	inputs := []string{"05321234567", "garbage", "", "+90 532 123 45 67"}
	for _, in := range inputs {
		first := NormalizePhone(in)
		assert.Equal(t, first, NormalizePhone(in))
	}
}
