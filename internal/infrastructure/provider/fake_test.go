package provider_test

import (
	"context"
	"testing"

	"quotation-service/internal/infrastructure/provider"

	"github.com/stretchr/testify/require"
)

func TestFake(t *testing.T) {
	f := provider.NewFake(100200.15).WithPrice("ETH", "BRL", 9000)
	require.Equal(t, provider.FakeName, f.Name())

	q, err := f.Get(context.Background(), "BTC", "BRL")
	require.NoError(t, err)
	require.Equal(t, 100200.15, q.Buy)
	require.Equal(t, q.Buy, q.Sell)
	require.Equal(t, "fake", q.ProviderName)

	q, err = f.Get(context.Background(), "ETH", "BRL")
	require.NoError(t, err)
	require.Equal(t, 9000.0, q.Buy)
}
