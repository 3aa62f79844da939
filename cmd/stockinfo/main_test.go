package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenimoa/stockinfo/internal/provider"
	"github.com/seenimoa/stockinfo/pkg/models"
)

type stubProvider struct {
	provider.BaseProvider
}

func newStubProvider(name string, caps ...provider.Capability) *stubProvider {
	return &stubProvider{BaseProvider: provider.NewBaseProvider(name, name+" provider", "https://example.com", caps...)}
}

func (s *stubProvider) Ping(context.Context) error { return nil }

func (s *stubProvider) Lookup(context.Context, string) (provider.InfoPayload, error) {
	return nil, nil
}

func (s *stubProvider) Chart(context.Context, string, provider.ChartQuery) (*provider.ChartData, error) {
	return nil, nil
}

func (s *stubProvider) Statement(context.Context, string, models.StatementKind, models.Frequency) (*provider.StatementData, error) {
	return nil, nil
}

func TestWriteProvidersMarksDefault(t *testing.T) {
	reg := provider.NewRegistry()
	require.NoError(t, reg.Register(newStubProvider("yfinance", provider.CapLookup, provider.CapNews)))
	require.NoError(t, reg.Register(newStubProvider("backup", provider.CapChart)))
	require.NoError(t, reg.SetDefault("backup"))
	var out bytes.Buffer

	writeProviders(&out, reg)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "* backup")
	assert.Contains(t, lines[0], "chart")
	assert.Contains(t, lines[1], "  yfinance")
	assert.Contains(t, lines[1], "lookup, news")
}
