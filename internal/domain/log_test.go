package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactName(t *testing.T) {
	app := LogFile{Name: "app.log", Path: "logs/app.log"}
	threshold, _ := ThresholdAtLeast("8")

	tests := []struct {
		name      string
		criterion Criterion
		file      LogFile
		want      string
	}{
		{"include", Include("error"), app, "i-error-app.txt"},
		{"exclude", Exclude("info"), app, "e-info-app.txt"},
		{"threshold", threshold, app, "s-8-app.txt"},
		{"value kept verbatim", Include("Time Out"), app, "i-Time Out-app.txt"},
		{"only trailing extension removed", Include("x"), LogFile{Name: "a.log.log"}, "i-x-a.log.txt"},
		{"dotted base name", Include("x"), LogFile{Name: "web.2024.log"}, "i-x-web.2024.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArtifactName(tt.criterion, tt.file, ".log", ".txt"))
		})
	}
}

func TestMatchSet_Count(t *testing.T) {
	empty := MatchSet{}
	assert.Equal(t, 0, empty.Count())
	assert.True(t, empty.IsEmpty())

	set := MatchSet{Lines: []string{"a\n", "b\n"}}
	assert.Equal(t, 2, set.Count())
	assert.False(t, set.IsEmpty())
}
