package finder

import (
	"fmt"
	"io"
	"time"

	"github.com/charliek/logfinder/internal/constants"
	"github.com/charmbracelet/lipgloss"
)

// Console writes the user facing status lines of a run. Colors are only
// emitted when out is a terminal.
type Console struct {
	out    io.Writer
	styles styles
}

// NewConsole creates a console writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// InsufficientArguments explains that no criterion was given
func (c *Console) InsufficientArguments() {
	fmt.Fprintf(c.out, "\n\t%s\n\n", c.styles.title.Render("Insufficient Arguments"))
	fmt.Fprintf(c.out, "Please, use `%s --help` for documentation.\n", constants.AppName)
}

// FileNotFound explains that the directory holds no log file
func (c *Console) FileNotFound(dir, ext string) {
	fmt.Fprintf(c.out, "\n\t%s\n\n", c.styles.title.Render("File Not Found"))
	fmt.Fprintf(c.out, "No %s file was found in the directory %s.\n", ext, dir)
	fmt.Fprintln(c.out, "Check that at least one log file is in the folder being searched.")
}

// InvalidCriterion reports a criterion dropped during validation
func (c *Console) InvalidCriterion(err error) {
	fmt.Fprintln(c.out, c.styles.errored.Render(err.Error()))
}

// BeginSearch marks the start of scanning
func (c *Console) BeginSearch() {
	fmt.Fprintf(c.out, "%s\n\n", c.styles.banner.Render("--- Beginning search ---"))
}

// Saved confirms an artifact was written
func (c *Console) Saved(name string, count int) {
	fmt.Fprintln(c.out, c.styles.saved.Render(fmt.Sprintf("File %s saved with %d matches.", name, count)))
}

// NotFound reports an include or threshold argument without any match
func (c *Console) NotFound(value, file string) {
	fmt.Fprintln(c.out, c.styles.missing.Render(fmt.Sprintf("The argument '%s' wasn't found in %s file.", value, file)))
}

// FoundEverywhere reports an exclude argument present on every line, which
// leaves nothing to save
func (c *Console) FoundEverywhere(value, file string) {
	fmt.Fprintln(c.out, c.styles.missing.Render(fmt.Sprintf("The argument '%s' was found all over the %s file.", value, file)))
}

// Completed prints the elapsed time of the run
func (c *Console) Completed(elapsed time.Duration) {
	fmt.Fprintf(c.out, "\n%s\n", c.styles.banner.Render(fmt.Sprintf("--- Search completed in %.4f seconds ---", elapsed.Seconds())))
}

// Removed confirms an artifact was deleted by cleanup
func (c *Console) Removed(name string) {
	fmt.Fprintln(c.out, c.styles.dim.Render(fmt.Sprintf("%s file removed.", name)))
}

// NothingRemoved reports that cleanup found no artifact
func (c *Console) NothingRemoved() {
	fmt.Fprintln(c.out, "No text file found.")
}

// HistoryPurged confirms the run history was emptied
func (c *Console) HistoryPurged(name string) {
	fmt.Fprintf(c.out, "History file %s purged.\n", name)
}
