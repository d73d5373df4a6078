package dao

import "ucic_contracts/contract/ledger"

// Composite score weights, summing to 100. A submission carries five
// category scores of 0..100 each; the weighted result is 0..100.
const (
	WeightCodeQuality   = 25
	WeightDocumentation = 20
	WeightTesting       = 20
	WeightInnovation    = 20
	WeightCommunity     = 15
)

// Cumulative point thresholds per tier. Tiers never move down.
const (
	ThresholdRecognized uint64 = 0
	ThresholdSilver     uint64 = 100
	ThresholdGold       uint64 = 250
	ThresholdPlatinum   uint64 = 500
	ThresholdFounder    uint64 = 1000
)

// VotingWindowSeconds keeps proposals open for seven days.
const VotingWindowSeconds int64 = 168 * 3600

// QuorumPercent is the share of total contributor voting power that must
// participate before a proposal can pass.
const QuorumPercent uint64 = 10

// MonthlyPool is paid out of the treasury each reward cycle.
const MonthlyPool = 30 * ledger.Unit

// RewardIntervalSeconds spaces reward cycles roughly a month apart.
const RewardIntervalSeconds int64 = 30 * 24 * 3600

// Tier shares of the monthly pool in percent, summing to 100. Each share is
// split evenly among the contributors holding that tier.
var tierPoolShare = map[Tier]uint64{
	TierFounder:    40,
	TierPlatinum:   25,
	TierGold:       20,
	TierSilver:     10,
	TierRecognized: 5,
}

// moduleBonusCatalog maps completed platform modules to one-time point
// bonuses per contributor.
var moduleBonusCatalog = map[uint64]uint64{
	1: 50,
	2: 75,
	3: 100,
	4: 50,
}
