package main

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/launchforge/launchpad-go/amm"
	"github.com/launchforge/launchpad-go/chain"
	"github.com/launchforge/launchpad-go/farm"
	"github.com/launchforge/launchpad-go/issuance"
	"github.com/launchforge/launchpad-go/platform"
)

const day = 24 * 60 * 60

func runScenario(cfg *scenarioConfig, log *zap.Logger) error {
	rt := chain.NewRuntime(log)
	rt.SetNow(1_700_000_000)

	pools := amm.NewRegistry(rt, nil)
	farms := farm.NewRegistry(rt)

	owner := chain.AddressFromSeed("sim:owner")
	admin := chain.AddressFromSeed("sim:admin")
	sink := chain.AddressFromSeed("sim:feesink")
	template := chain.AddressFromSeed("sim:template")

	p, err := platform.New(rt, platform.Config{
		Owner:    owner,
		Admin:    admin,
		FeeSink:  sink,
		FeeBps:   cfg.FeeBps,
		Template: template,
	}, pools, farms, log)
	if err != nil {
		return err
	}

	params := issuance.SetupParams{
		Name:       cfg.Name,
		Symbol:     cfg.Symbol,
		Cap:        cfg.Cap,
		RoyaltyBps: cfg.RoyaltyBps,
		Owner:      owner,
	}
	for _, c := range cfg.Categories {
		params.Categories = append(params.Categories, issuance.Category{Price: c.Price, Supply: c.Supply})
	}
	if cfg.RefundDelaySeconds > 0 {
		params.Refund = issuance.RefundConfig{MintEnd: rt.Now() + cfg.RefundDelaySeconds}
	}
	if cfg.VestingAmount > 0 {
		params.Vesting = issuance.VestingConfig{
			Receiver: owner,
			Duration: cfg.VestingDurationDays * day,
			Amount:   cfg.VestingAmount,
		}
	}
	if cfg.LiquidityAmount > 0 {
		params.Liquidity = issuance.LiquidityConfig{Amount: cfg.LiquidityAmount, Price: cfg.LiquidityPrice}
	}
	if cfg.FarmAmount > 0 {
		params.Farm = issuance.FarmConfig{Amount: cfg.FarmAmount, Duration: cfg.FarmDurationDays * day}
	}

	in, err := p.Deploy(chain.Tx{Caller: owner}, params, platform.NewSalt())
	if err != nil {
		return fmt.Errorf("deploy: %w", err)
	}

	// Mint the cap out round-robin across the configured minters.
	minters := make([]chain.Address, cfg.Minters)
	for i := range minters {
		minters[i] = chain.AddressFromSeed(fmt.Sprintf("sim:minter:%d", i))
		if err := rt.Fund(minters[i], 1<<60); err != nil {
			return err
		}
	}
	for ci, cat := range in.Categories() {
		remaining := cat.Supply
		for mi := 0; remaining > 0 && in.TotalMinted() < in.Cap(); mi++ {
			batch := remaining/uint64(cfg.Minters) + 1
			if left := in.Cap() - in.TotalMinted(); batch > left {
				batch = left
			}
			if batch > remaining {
				batch = remaining
			}
			price, fee, err := in.MintCost(batch, ci)
			if err != nil {
				return err
			}
			value := new(big.Int).Add(price, fee).Uint64()
			minter := minters[mi%cfg.Minters]
			if _, err := in.Mint(chain.Tx{Caller: minter, Value: value}, batch, ci, nil); err != nil {
				return fmt.Errorf("mint: %w", err)
			}
			remaining -= batch
		}
	}

	if in.LiquidityConfig().Enabled() {
		if err := in.LockLiquidity(chain.Tx{Caller: owner}, in.LiquidityConfig().Amount, nil); err != nil {
			return fmt.Errorf("lock liquidity: %w", err)
		}
	}
	if in.FarmConfig().Enabled() {
		if err := in.SeedYieldFarm(chain.Tx{Caller: owner}, in.FarmConfig().Amount, nil); err != nil {
			return fmt.Errorf("seed farm: %w", err)
		}
	}
	if in.VestingConfig().Enabled() {
		// Unlocking is measured from the refund deadline when one exists.
		start := rt.Now()
		if rc := in.RefundConfig(); rc.Enabled() && rc.MintEnd > start {
			start = rc.MintEnd
		}
		rt.SetNow(start + in.VestingConfig().Duration + 1)
		if _, err := in.Vest(chain.Tx{Caller: owner}, in.VestingConfig().Amount); err != nil {
			return fmt.Errorf("vest: %w", err)
		}
	}
	paid, err := in.Withdraw(chain.Tx{Caller: owner})
	if err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}

	raised := decimal.NewFromBigInt(in.TotalRaised().BigInt(), 0)
	fmt.Printf("phase:            %s\n", in.Phase())
	fmt.Printf("units minted:     %d / %d\n", in.TotalMinted(), in.Cap())
	fmt.Printf("value raised:     %s\n", raised.String())
	fmt.Printf("liquidity locked: %d units\n", in.LockedLiquiditySupply())
	fmt.Printf("farm seeded:      %d units\n", in.SeededFarmSupply())
	fmt.Printf("vested claimed:   %d units\n", in.TotalVestClaimed())
	fmt.Printf("owner settlement: %d\n", paid)
	fmt.Printf("fee sink balance: %d\n", rt.Balance(sink))
	return nil
}
