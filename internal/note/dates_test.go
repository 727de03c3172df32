package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasDate(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Let's meet Friday", false},
		{"Ship it next Tuesday", false},
		{"Deadline 2025-03-14", true},
		{"Deadline 2025/3/4", true},
		{"Deadline 2025.03.14", true},
		{"Due 03/14/2025", true},
		{"Kickoff in March", true},
		{"kickoff in sept", true},
		{"Call about the DEC report", true},
		{"Marching band practice", false},
		{"You may call mom", false},
		{"we march on regardless", false},
		{"Launch in May", true},
		{"due may 5th", true},
		{"the 3rd of march", true},
		{"Mar 14 review", true},
		{"room 12, floor 3", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDate(tt.text))
		})
	}
}

func TestStripUngroundedDates(t *testing.T) {
	tests := []struct {
		name   string
		md     string
		source string
		want   string
	}{
		{
			name:   "invented date removed",
			md:     "- [ ] Send deck (due: 2025-04-10)\n",
			source: "Send the deck in April",
			want:   "- [ ] Send deck\n",
		},
		{
			name:   "grounded date kept",
			md:     "- [ ] Send deck (due: 2025-04-10)\n",
			source: "Send the deck by 2025-04-10",
			want:   "- [ ] Send deck (due: 2025-04-10)\n",
		},
		{
			name:   "inline date in summary",
			md:     "Launch on 2030-01-01 confirmed\n",
			source: "Launch confirmed",
			want:   "Launch on confirmed\n",
		},
		{
			name:   "no dates untouched",
			md:     "### Summary\nNothing dated\n",
			source: "",
			want:   "### Summary\nNothing dated\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripUngroundedDates(tt.md, tt.source))
		})
	}
}
