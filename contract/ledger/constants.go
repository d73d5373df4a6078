package ledger

import "ucic_contracts/state"

const (
	// Symbol is the ticker of the utility token.
	Symbol = "UC"
	// Decimals fixes the display scaling; all amounts are integer base units.
	Decimals = 8
	// Unit is one whole token in base units.
	Unit uint64 = 100_000_000
	// InitialSupply is minted to the treasury at genesis.
	InitialSupply uint64 = 1000 * Unit
)

// TreasuryAddress holds the undistributed supply and funds reward payouts.
const TreasuryAddress = state.Address("system:ucic.treasury")
