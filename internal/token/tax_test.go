package token_test

import (
	"taxtoken/internal/token"
	"taxtoken/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	require.Equal(t, domain.Normal, token.Classify(false, false))
	require.Equal(t, domain.Buy, token.Classify(true, false))
	require.Equal(t, domain.Sell, token.Classify(false, true))
	require.Equal(t, domain.Sell, token.Classify(true, true))
}

func TestComputeCuts(t *testing.T) {
	tests := []struct {
		name   string
		cls    domain.Classification
		amount domain.Amount
		exempt bool
		want   domain.Cuts
	}{
		{
			name:   "normal transfer is untaxed",
			cls:    domain.Normal,
			amount: domain.NewAmount(1000),
			want:   domain.Cuts{Net: domain.NewAmount(1000)},
		},
		{
			name:   "exempt sell is untaxed",
			cls:    domain.Sell,
			amount: domain.NewAmount(1000),
			exempt: true,
			want:   domain.Cuts{Net: domain.NewAmount(1000)},
		},
		{
			name:   "buy",
			cls:    domain.Buy,
			amount: domain.NewAmount(1000),
			want: domain.Cuts{
				Marketing: domain.NewAmount(10),
				Liquidity: domain.NewAmount(10),
				Stake:     domain.NewAmount(10),
				Net:       domain.NewAmount(970),
			},
		},
		{
			name:   "sell",
			cls:    domain.Sell,
			amount: domain.NewAmount(1000),
			want: domain.Cuts{
				Marketing: domain.NewAmount(20),
				Liquidity: domain.NewAmount(10),
				Stake:     domain.NewAmount(30),
				Net:       domain.NewAmount(940),
			},
		},
		{
			name:   "each cut floors on its own",
			cls:    domain.Sell,
			amount: domain.NewAmount(99),
			want: domain.Cuts{
				Marketing: domain.NewAmount(1),
				Liquidity: domain.Zero,
				Stake:     domain.NewAmount(2),
				Net:       domain.NewAmount(96),
			},
		},
		{
			name:   "zero amount",
			cls:    domain.Buy,
			amount: domain.Zero,
			want:   domain.Cuts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := token.ComputeCuts(tt.cls, tt.amount, tt.exempt, buyTiers, sellTiers)
			require.Equal(t, tt.want, got)

			sum := got.Net.Add(got.Marketing).Add(got.Liquidity).Add(got.Stake)
			require.Equal(t, tt.amount, sum)
		})
	}
}

func TestInDecayWindow(t *testing.T) {
	window := 72 * time.Hour

	require.False(t, token.InDecayWindow(time.Time{}, t0, window))
	require.True(t, token.InDecayWindow(t0, t0, window))
	require.True(t, token.InDecayWindow(t0, t0.Add(window-time.Nanosecond), window))
	require.False(t, token.InDecayWindow(t0, t0.Add(window), window))
	require.False(t, token.InDecayWindow(t0, t0.Add(time.Second), 0))
}
