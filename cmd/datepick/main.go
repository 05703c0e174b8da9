package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/datepick/internal/ui/components"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errCancelled) {
			os.Exit(1)
		}
		if term.IsTerminal(int(os.Stderr.Fd())) {
			fmt.Fprintln(os.Stderr, components.ErrorAlert(err.Error()).View())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(2)
	}
}
