package domain

import "strings"

// LogFile references one candidate input file
type LogFile struct {
	Name string // base name, used to derive artifact names
	Path string // path used for reading
}

// MatchSet holds the lines of one log file that satisfied one criterion,
// in file order and with their original line terminators.
type MatchSet struct {
	File      LogFile
	Criterion Criterion
	Lines     []string
}

// Count returns the number of matched lines
func (m MatchSet) Count() int {
	return len(m.Lines)
}

// IsEmpty returns true if no line matched
func (m MatchSet) IsEmpty() bool {
	return len(m.Lines) == 0
}

// ArtifactName derives the output file name for a criterion applied to a log
// file: <prefix><value>-<basename><outputExt>, for example i-error-app.txt.
func ArtifactName(c Criterion, file LogFile, logExt, outputExt string) string {
	base := strings.TrimSuffix(file.Name, logExt)
	return c.Kind.Prefix() + c.Value + "-" + base + outputExt
}
