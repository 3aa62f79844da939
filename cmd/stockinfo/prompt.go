package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/seenimoa/stockinfo/internal/provider"
)

const promptText = "Enter a stock symbol (e.g.,AAPL): "

// errNoSymbol is returned when input ends before a symbol was entered.
var errNoSymbol = errors.New("no symbol entered")

// promptLoop reads symbols from in and calls run for each until run
// succeeds or fails with something other than an unknown symbol.
func promptLoop(in io.Reader, out io.Writer, run func(symbol string) error) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, promptText)
		if !sc.Scan() {
			fmt.Fprintln(out)
			if err := sc.Err(); err != nil {
				return err
			}
			return errNoSymbol
		}
		symbol := strings.TrimSpace(sc.Text())
		if symbol == "" {
			continue
		}
		err := run(symbol)
		if provider.IsNotFound(err) {
			fmt.Fprintf(out, "%v, try another symbol.\n", err)
			continue
		}
		return err
	}
}
