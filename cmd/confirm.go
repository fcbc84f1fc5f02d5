package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/twiced-technology-gmbh/flowdo/internal/clierr"
)

// confirm asks a yes/no question on stderr. Without a terminal on stdin it
// refuses instead of guessing.
func confirm(prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, clierr.New(clierr.ConfirmationReq,
			"cannot prompt for confirmation (not a terminal); use --yes")
	}
	fmt.Fprint(os.Stderr, prompt+" [y/N] ")
	return readYes(os.Stdin), nil
}

func readYes(r io.Reader) bool {
	answer, _ := bufio.NewReader(r).ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}
