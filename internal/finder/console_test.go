package finder

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsole_Messages(t *testing.T) {
	console, out := newTestConsole()

	console.BeginSearch()
	console.InvalidCriterion(errors.New("abc is not a valid threshold"))
	console.FileNotFound("logs", ".log")
	console.Completed(1234567 * time.Microsecond)
	console.Removed("i-error-app.txt")
	console.NothingRemoved()
	console.HistoryPurged("log-finder.log")

	output := out.String()
	assert.Contains(t, output, "--- Beginning search ---\n\n")
	assert.Contains(t, output, "abc is not a valid threshold\n")
	assert.Contains(t, output, "File Not Found")
	assert.Contains(t, output, "No .log file was found in the directory logs.")
	assert.Contains(t, output, "--- Search completed in 1.2346 seconds ---")
	assert.Contains(t, output, "i-error-app.txt file removed.")
	assert.Contains(t, output, "No text file found.")
	assert.Contains(t, output, "History file log-finder.log purged.")
}

func TestConsole_PlainOutputForBuffers(t *testing.T) {
	console, out := newTestConsole()

	console.Saved("i-error-app.txt", 3)

	assert.Equal(t, "File i-error-app.txt saved with 3 matches.\n", out.String())
}
