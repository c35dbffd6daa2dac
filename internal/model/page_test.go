package model

import "testing"

// TestBoosterListFirstTitle tests the FirstTitle method.
func TestBoosterListFirstTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		list BoosterList
		want string
	}{
		{name: "empty list", list: BoosterList{}, want: ""},
		{
			name: "first row title",
			list: BoosterList{Rows: []BoosterRow{
				{Label: "Paris", URL: "/p/paris", Title: "Nos villes"},
				{Label: "Lyon", URL: "/p/lyon", Title: "ignored"},
			}},
			want: "Nos villes",
		},
		{
			name: "later titles are not used",
			list: BoosterList{Rows: []BoosterRow{
				{Label: "Paris", URL: "/p/paris"},
				{Label: "Lyon", URL: "/p/lyon", Title: "ignored"},
			}},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.list.FirstTitle(); got != tt.want {
				t.Errorf("FirstTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBoosterListLen(t *testing.T) {
	t.Parallel()

	list := BoosterList{Rows: make([]BoosterRow, 3)}
	if list.Len() != 3 {
		t.Errorf("Len() = %d, want 3", list.Len())
	}
	if (BoosterList{}).Len() != 0 {
		t.Error("empty list should have length 0")
	}
}
