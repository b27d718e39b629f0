package service

import (
	"context"
	"testing"

	"fractional-asset-registry/internal/core/domain"
	"fractional-asset-registry/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createVault fractionalizes a fresh asset of alice into 1000 shares at 10.
func createVault(t *testing.T, w *world) (ports.FractionalVault, *domain.Asset) {
	t.Helper()
	a := w.mint(t, aliceAddr, 100000)
	w.credit(t, aliceAddr, 100)
	res, err := w.factory.Create(context.Background(), ports.CreateVaultRequest{
		Caller:        aliceAddr,
		Name:          "Warehouse 7 Shares",
		Symbol:        "WH7",
		AssetContract: registryAddr,
		AssetID:       a.ID,
		TotalShares:   1000,
		UnitPrice:     10,
		Payment:       100,
	})
	require.NoError(t, err)
	v, err := w.factory.Vault(context.Background(), res.Vault.ID)
	require.NoError(t, err)
	w.sink.reset()
	return v, a
}

func TestVault_Buy(t *testing.T) {
	w := newWorld(t)
	v, _ := createVault(t, w)
	ctx := context.Background()
	collectorBefore := w.balance(t, collectorAddr)
	w.credit(t, bobAddr, 1100)

	_, err := v.Buy(ctx, bobAddr, 100, 1000)
	assertAppError(t, err, "FUNDS_001")

	receipt, err := v.Buy(ctx, bobAddr, 100, 1050)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), receipt.Price)
	assert.Equal(t, uint64(30), receipt.Fee)
	assert.Equal(t, uint64(20), receipt.Refund)

	assert.Equal(t, uint64(70), w.balance(t, bobAddr))
	assert.Equal(t, uint64(1000), w.balance(t, aliceAddr))
	assert.Equal(t, collectorBefore+30, w.balance(t, collectorAddr))
	assert.Zero(t, w.balance(t, v.Address()))

	bobShares, err := v.BalanceOf(ctx, bobAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), bobShares)
	aliceShares, err := v.BalanceOf(ctx, aliceAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(900), aliceShares)
	assert.Equal(t, []domain.EventType{domain.EventSharesBought}, w.sink.types())
}

func TestVault_Buy_Rejections(t *testing.T) {
	w := newWorld(t)
	v, a := createVault(t, w)
	ctx := context.Background()
	w.credit(t, aliceAddr, 100000)
	w.credit(t, bobAddr, 100000)

	_, err := v.Buy(ctx, aliceAddr, 1, 100)
	assertAppError(t, err, "AUTH_005")

	_, err = v.Buy(ctx, bobAddr, 0, 100)
	assertAppError(t, err, "INV_001")

	_, err = v.Buy(ctx, bobAddr, 1001, 100000)
	assertAppError(t, err, "INV_006")

	require.NoError(t, w.policy.SetAssetRestriction(ctx, policyAddr, a.ID, true))
	_, err = v.Buy(ctx, bobAddr, 1, 100)
	assertAppError(t, err, "POL_001")
	require.NoError(t, w.policy.SetAssetRestriction(ctx, policyAddr, a.ID, false))

	assertAppError(t, v.Pause(ctx, bobAddr), "AUTH_001")
	require.NoError(t, v.Pause(ctx, operatorAddr))
	_, err = v.Buy(ctx, bobAddr, 1, 100)
	assertAppError(t, err, "STATE_006")
	require.NoError(t, v.Unpause(ctx, adminAddr))

	_, err = v.Buy(ctx, bobAddr, 1, 100)
	require.NoError(t, err)
}

func TestVault_RoundTripLosesTwoFees(t *testing.T) {
	w := newWorld(t)
	v, _ := createVault(t, w)
	ctx := context.Background()
	w.credit(t, bobAddr, 1030)

	_, err := v.Buy(ctx, bobAddr, 100, 1030)
	require.NoError(t, err)

	_, err = v.Sell(ctx, bobAddr, 100)
	assertAppError(t, err, "INV_007")

	require.NoError(t, v.DepositLiquidity(ctx, aliceAddr, 1000))
	receipt, err := v.Sell(ctx, bobAddr, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(970), receipt.Proceeds)
	assert.Equal(t, uint64(30), receipt.Fee)

	assert.Equal(t, uint64(1030-2*30), w.balance(t, bobAddr))

	info, err := v.Info(ctx)
	require.NoError(t, err)
	assert.Zero(t, info.Liquidity)
	assert.Equal(t, uint64(900), info.CirculatingShares)
	assert.Equal(t, uint64(1000), info.TotalShares)
}

func TestVault_Liquidity(t *testing.T) {
	w := newWorld(t)
	v, _ := createVault(t, w)
	ctx := context.Background()
	w.credit(t, bobAddr, 500)

	assertAppError(t, v.DepositLiquidity(ctx, bobAddr, 0), "INV_001")
	assertAppError(t, v.DepositLiquidity(ctx, bobAddr, 501), "FUNDS_002")
	require.NoError(t, v.DepositLiquidity(ctx, bobAddr, 500))
	assert.Equal(t, uint64(500), w.balance(t, v.Address()))

	assertAppError(t, v.WithdrawLiquidity(ctx, bobAddr, 100), "AUTH_001")
	assertAppError(t, v.WithdrawLiquidity(ctx, aliceAddr, 501), "INV_007")
	require.NoError(t, v.WithdrawLiquidity(ctx, aliceAddr, 200))
	require.NoError(t, v.WithdrawLiquidity(ctx, adminAddr, 300))

	info, err := v.Info(ctx)
	require.NoError(t, err)
	assert.Zero(t, info.Liquidity)
	assert.Zero(t, w.balance(t, v.Address()))
	assert.Equal(t, uint64(300), w.balance(t, adminAddr))
}

func TestVault_Redeem(t *testing.T) {
	w := newWorld(t)
	v, a := createVault(t, w)
	ctx := context.Background()
	w.credit(t, bobAddr, 100)

	assertAppError(t, v.Redeem(ctx, aliceAddr), "STATE_005")
	assertAppError(t, v.EnableRedemption(ctx, bobAddr, 5000), "AUTH_001")
	require.NoError(t, v.EnableRedemption(ctx, aliceAddr, 5000))
	assertAppError(t, v.EnableRedemption(ctx, operatorAddr, 6000), "STATE_004")

	_, err := v.Buy(ctx, bobAddr, 1, 100)
	require.NoError(t, err)
	assertAppError(t, v.Redeem(ctx, aliceAddr), "STATE_013")

	require.NoError(t, v.DepositLiquidity(ctx, aliceAddr, 10))
	_, err = v.Sell(ctx, bobAddr, 1)
	require.NoError(t, err)

	require.NoError(t, v.Redeem(ctx, aliceAddr))

	info, err := v.Info(ctx)
	require.NoError(t, err)
	assert.True(t, info.Redeemed)
	assert.Zero(t, info.CirculatingShares)

	owner, err := w.registry.OwnerOf(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, aliceAddr, owner)

	_, err = v.Buy(ctx, bobAddr, 1, 100)
	assertAppError(t, err, "STATE_014")
	assertAppError(t, v.Redeem(ctx, aliceAddr), "STATE_014")
}

func TestVault_RedeemRequiresHolding(t *testing.T) {
	w := newWorld(t)
	v, _ := createVault(t, w)
	ctx := context.Background()
	require.NoError(t, v.EnableRedemption(ctx, aliceAddr, 0))

	assertAppError(t, v.Redeem(ctx, bobAddr), "STATE_013")
}

func TestVault_ReentrantHookIsRejected(t *testing.T) {
	t.Run("propagated error rolls the sell back", func(t *testing.T) {
		w := newWorld(t)
		v, _ := createVault(t, w)
		ctx := context.Background()
		w.credit(t, bobAddr, 1030)
		_, err := v.Buy(ctx, bobAddr, 100, 1030)
		require.NoError(t, err)
		require.NoError(t, v.DepositLiquidity(ctx, aliceAddr, 1000))
		w.sink.reset()

		infoBefore, err := v.Info(ctx)
		require.NoError(t, err)
		bobBefore := w.balance(t, bobAddr)
		collectorBefore := w.balance(t, collectorAddr)
		vaultBefore := w.balance(t, v.Address())

		calls := 0
		var hookErr error
		w.funds.OnReceive(bobAddr, func(ctx context.Context, _ domain.Address, _ uint64) error {
			calls++
			_, hookErr = v.Sell(ctx, bobAddr, 1)
			return hookErr
		})

		_, err = v.Sell(ctx, bobAddr, 100)
		assertAppError(t, err, "STATE_008")
		assertAppError(t, hookErr, "STATE_008")
		assert.Equal(t, 1, calls)

		info, err := v.Info(ctx)
		require.NoError(t, err)
		assert.Equal(t, infoBefore.Liquidity, info.Liquidity)
		assert.Equal(t, infoBefore.CirculatingShares, info.CirculatingShares)
		assert.Equal(t, bobBefore, w.balance(t, bobAddr))
		assert.Equal(t, collectorBefore, w.balance(t, collectorAddr))
		assert.Equal(t, vaultBefore, w.balance(t, v.Address()))
		bobShares, err := v.BalanceOf(ctx, bobAddr)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), bobShares)
		assert.Empty(t, w.sink.types())
	})

	t.Run("swallowed error leaves the outer buy intact", func(t *testing.T) {
		w := newWorld(t)
		v, _ := createVault(t, w)
		ctx := context.Background()
		w.credit(t, bobAddr, 1030)
		w.credit(t, carolAddr, 1030)

		var hookErr error
		w.funds.OnReceive(aliceAddr, func(ctx context.Context, _ domain.Address, _ uint64) error {
			_, hookErr = v.Buy(ctx, carolAddr, 100, 1030)
			return nil
		})

		_, err := v.Buy(ctx, bobAddr, 100, 1030)
		require.NoError(t, err)
		assertAppError(t, hookErr, "STATE_008")

		carolShares, err := v.BalanceOf(ctx, carolAddr)
		require.NoError(t, err)
		assert.Zero(t, carolShares)
		assert.Equal(t, uint64(1030), w.balance(t, carolAddr))
		aliceShares, err := v.BalanceOf(ctx, aliceAddr)
		require.NoError(t, err)
		assert.Equal(t, uint64(900), aliceShares)

		info, err := v.Info(ctx)
		require.NoError(t, err)
		assert.Zero(t, info.Liquidity)
		assert.Equal(t, uint64(1000), info.CirculatingShares)
		assert.Equal(t, []domain.EventType{domain.EventSharesBought}, w.sink.types())
	})
}

func TestVault_RedeemNeedsTheLastShare(t *testing.T) {
	w := newWorld(t)
	v, a := createVault(t, w)
	ctx := context.Background()
	w.credit(t, bobAddr, 20000)
	require.NoError(t, v.EnableRedemption(ctx, aliceAddr, 0))

	_, err := v.Buy(ctx, bobAddr, 999, 20000)
	require.NoError(t, err)
	bobShares, err := v.BalanceOf(ctx, bobAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(999), bobShares)

	assertAppError(t, v.Redeem(ctx, bobAddr), "STATE_013")
	owner, err := w.registry.OwnerOf(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, v.Address(), owner)

	_, err = v.Buy(ctx, bobAddr, 1, 100)
	require.NoError(t, err)
	require.NoError(t, v.Redeem(ctx, bobAddr))

	owner, err = w.registry.OwnerOf(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, bobAddr, owner)

	info, err := v.Info(ctx)
	require.NoError(t, err)
	assert.True(t, info.Redeemed)
	assert.Zero(t, info.CirculatingShares)
}
