package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrency_ParallelMintsGetDistinctIDs(t *testing.T) {
	w := newWorld(t)
	ctx := context.Background()
	const n = 20

	minters := make([]domain.Address, n)
	for i := range minters {
		minters[i] = domain.DeriveAddress("test", "minter", fmt.Sprint(i))
		require.NoError(t, w.roles.GrantRole(ctx, adminAddr, minters[i], domain.RoleMinter))
		w.credit(t, minters[i], 30)
	}

	ids := make(chan uint64, n)
	var wg sync.WaitGroup
	for _, m := range minters {
		wg.Add(1)
		go func(m domain.Address) {
			defer wg.Done()
			res, err := w.registry.Mint(ctx, ports.MintRequest{Caller: m, Owner: m, Valuation: 1000, Payment: 30})
			if err != nil {
				t.Error(err)
				return
			}
			ids <- res.Asset.ID
		}(m)
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, uint64(n*30), w.balance(t, collectorAddr))
}

func TestConcurrency_ParallelBuysConserveShares(t *testing.T) {
	w := newWorld(t)
	v, _ := createVault(t, w)
	ctx := context.Background()
	const buyers = 25

	addrs := make([]domain.Address, buyers)
	for i := range addrs {
		addrs[i] = domain.DeriveAddress("test", "buyer", fmt.Sprint(i))
		w.credit(t, addrs[i], 1000)
	}

	var wg sync.WaitGroup
	for _, b := range addrs {
		wg.Add(1)
		go func(b domain.Address) {
			defer wg.Done()
			// 50 shares at 10 cost 500 plus a 15 fee.
			if _, err := v.Buy(ctx, b, 50, 600); err != nil {
				t.Error(err)
			}
		}(b)
	}
	wg.Wait()

	var sold uint64
	for _, b := range addrs {
		bal, err := v.BalanceOf(ctx, b)
		require.NoError(t, err)
		sold += bal
		assert.Equal(t, uint64(1000-515), w.balance(t, b))
	}
	left, err := v.BalanceOf(ctx, aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), sold+left)
	assert.Equal(t, uint64(buyers*50), sold)
	assert.Zero(t, w.balance(t, v.Address()))
}
