package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// clearSequence moves the cursor home and erases the display
const clearSequence = "\033[H\033[2J"

// screenClearer returns a function clearing the terminal behind out. Outputs
// that are not terminals are never cleared.
func screenClearer(out io.Writer) func() {
	f, ok := out.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil
	}
	return func() {
		fmt.Fprint(f, clearSequence)
	}
}
