package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenimoa/stockinfo/internal/provider"
)

func TestPromptLoopRunsEnteredSymbol(t *testing.T) {
	var out bytes.Buffer
	var got []string

	err := promptLoop(strings.NewReader("  AAPL \n"), &out, func(symbol string) error {
		got = append(got, symbol)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, got)
	assert.Equal(t, promptText, out.String())
}

func TestPromptLoopRepromptsOnUnknownSymbol(t *testing.T) {
	var out bytes.Buffer
	var got []string

	err := promptLoop(strings.NewReader("ZZZZ\n\nMSFT\n"), &out, func(symbol string) error {
		got = append(got, symbol)
		if symbol == "ZZZZ" {
			return &provider.NotFoundError{Symbol: symbol}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"ZZZZ", "MSFT"}, got)
	assert.Equal(t, 3, strings.Count(out.String(), promptText))
	assert.Contains(t, out.String(), `symbol "ZZZZ" not found, try another symbol.`)
}

func TestPromptLoopRepromptsOnMalformedSymbol(t *testing.T) {
	var out bytes.Buffer
	var got []string

	err := promptLoop(strings.NewReader("AAP L\nAAPL\n"), &out, func(symbol string) error {
		got = append(got, symbol)
		if symbol != "AAPL" {
			return &provider.NotFoundError{Symbol: symbol}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"AAP L", "AAPL"}, got)
	assert.Equal(t, 2, strings.Count(out.String(), promptText))
	assert.Contains(t, out.String(), `symbol "AAP L" not found, try another symbol.`)
}

func TestPromptLoopStopsOnOtherErrors(t *testing.T) {
	boom := &provider.UpstreamError{Provider: "yfinance", Op: "lookup", Err: errors.New("503")}
	calls := 0

	err := promptLoop(strings.NewReader("AAPL\nMSFT\n"), &bytes.Buffer{}, func(string) error {
		calls++
		return boom
	})

	require.Error(t, err)
	assert.True(t, provider.IsUpstream(err))
	assert.Equal(t, 1, calls)
}

func TestPromptLoopEndOfInput(t *testing.T) {
	err := promptLoop(strings.NewReader(""), &bytes.Buffer{}, func(string) error {
		t.Fatal("run should not be called")
		return nil
	})

	assert.ErrorIs(t, err, errNoSymbol)
}
