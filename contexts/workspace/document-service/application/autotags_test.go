package application

import (
	"reflect"
	"testing"
)

func TestAutoTags(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		want     []string
	}{
		{
			name:     "nda agreement",
			filename: "NDA_Agreement_2024.pdf",
			want:     []string{"nda", "legal", "agreement", "2024", "pdf"},
		},
		{
			name:     "report maps to analytics",
			filename: "Q3-Report.xlsx",
			want:     []string{"q3", "report", "analytics", "xlsx"},
		},
		{
			name:     "duplicate tokens collapse",
			filename: "invoice invoice.pdf",
			want:     []string{"invoice", "finance", "pdf"},
		},
		{
			name:     "short tokens dropped",
			filename: "a_b_notes.txt",
			want:     []string{"notes", "txt"},
		},
		{
			name:     "no extension",
			filename: "meeting_minutes",
			want:     []string{"meeting", "minutes", "meetings"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AutoTags(tc.filename)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("AutoTags(%q) = %v, want %v", tc.filename, got, tc.want)
			}
		})
	}
}
