package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ucic_contracts/contract/ledger"
	"ucic_contracts/state"
)

const t0 int64 = 1_700_000_000

// perfect maxes every category, yielding a composite of 100.
var perfect = ScoreSet{CodeQuality: 100, Documentation: 100, Testing: 100, Innovation: 100, Community: 100}

func newTestEngine(t *testing.T) (*Engine, *ledger.Ledger) {
	t.Helper()
	l := ledger.New(state.NewMemoryStore(), nil, t0)
	e := New(state.NewMemoryStore(), l, nil)
	return e, l
}

// pump registers the address if needed and submits perfect scores until the
// contributor holds at least points.
func pump(t *testing.T, e *Engine, addr state.Address, points uint64) {
	t.Helper()
	if !e.IsContributor(addr) {
		require.True(t, e.RegisterContributor(addr, t0))
	}
	for e.GetContributor(addr).TotalPoints < points {
		require.True(t, e.SubmitCompositeScore(addr, perfect, t0))
	}
}

func TestRegisterContributor(t *testing.T) {
	e, _ := newTestEngine(t)

	assert.True(t, e.RegisterContributor("hive:alice", t0))
	assert.True(t, e.IsContributor("hive:alice"))
	assert.Equal(t, 1, e.ContributorCount())

	c := e.GetContributor("hive:alice")
	require.NotNil(t, c)
	assert.Equal(t, TierRecognized, c.Tier)
	assert.Equal(t, t0, c.JoinedAt)

	assert.False(t, e.RegisterContributor("hive:alice", t0+1), "double registration")
	assert.False(t, e.RegisterContributor("", t0), "empty address")
	assert.False(t, e.IsContributor("hive:nobody"))
}

func TestCompositeWeighting(t *testing.T) {
	e, _ := newTestEngine(t)

	scores := ScoreSet{CodeQuality: 92, Documentation: 90, Testing: 95, Innovation: 88, Community: 90}
	assert.Equal(t, uint64(91), e.CompositeScore(scores))
	assert.Equal(t, uint64(100), perfect.Composite())
	assert.Equal(t, uint64(0), ScoreSet{}.Composite())

	// all categories equal collapses to that value
	flat := ScoreSet{CodeQuality: 70, Documentation: 70, Testing: 70, Innovation: 70, Community: 70}
	assert.Equal(t, uint64(70), flat.Composite())
}

func TestSubmitScoreAccumulates(t *testing.T) {
	e, _ := newTestEngine(t)
	require.True(t, e.RegisterContributor("hive:alice", t0))

	scores := ScoreSet{CodeQuality: 92, Documentation: 90, Testing: 95, Innovation: 88, Community: 90}
	require.True(t, e.SubmitCompositeScore("hive:alice", scores, t0+10))

	c := e.GetContributor("hive:alice")
	assert.Equal(t, uint64(91), c.TotalPoints)
	assert.Equal(t, uint64(1), c.ScoreCount)
	assert.Equal(t, t0+10, c.LastScoredAt)

	require.True(t, e.SubmitCompositeScore("hive:alice", scores, t0+20))
	assert.Equal(t, uint64(182), e.GetContributor("hive:alice").TotalPoints)
}

func TestSubmitScoreGuards(t *testing.T) {
	e, _ := newTestEngine(t)
	require.True(t, e.RegisterContributor("hive:alice", t0))

	over := ScoreSet{CodeQuality: 101}
	assert.False(t, e.SubmitCompositeScore("hive:alice", over, t0), "score above 100")
	assert.False(t, e.SubmitCompositeScore("hive:nobody", perfect, t0), "unregistered")
	assert.Equal(t, uint64(0), e.GetContributor("hive:alice").TotalPoints)
}

func TestTierBoundaries(t *testing.T) {
	assert.Equal(t, TierRecognized, TierForPoints(0))
	assert.Equal(t, TierRecognized, TierForPoints(99))
	assert.Equal(t, TierSilver, TierForPoints(100))
	assert.Equal(t, TierSilver, TierForPoints(249))
	assert.Equal(t, TierGold, TierForPoints(250))
	assert.Equal(t, TierGold, TierForPoints(499))
	assert.Equal(t, TierPlatinum, TierForPoints(500))
	assert.Equal(t, TierPlatinum, TierForPoints(999))
	assert.Equal(t, TierFounder, TierForPoints(1000))
	assert.Equal(t, TierFounder, TierForPoints(5000))
}

func TestTierPromotionIsMonotonic(t *testing.T) {
	e, _ := newTestEngine(t)
	require.True(t, e.RegisterContributor("hive:alice", t0))

	require.True(t, e.SubmitCompositeScore("hive:alice", perfect, t0))
	assert.Equal(t, TierSilver, e.Tier("hive:alice"))

	// a run of zero scores never demotes
	require.True(t, e.SubmitCompositeScore("hive:alice", ScoreSet{}, t0+1))
	assert.Equal(t, TierSilver, e.Tier("hive:alice"))

	pump(t, e, "hive:alice", ThresholdFounder)
	assert.Equal(t, TierFounder, e.Tier("hive:alice"))
}

func TestVotingPowerPerTier(t *testing.T) {
	e, _ := newTestEngine(t)
	assert.Equal(t, uint64(0), e.VotingPower("hive:nobody"))

	require.True(t, e.RegisterContributor("hive:alice", t0))
	assert.Equal(t, uint64(1), e.VotingPower("hive:alice"))

	pump(t, e, "hive:alice", ThresholdFounder)
	assert.Equal(t, uint64(5), e.VotingPower("hive:alice"))

	assert.Equal(t, uint64(1), TierRecognized.VotingPower())
	assert.Equal(t, uint64(2), TierSilver.VotingPower())
	assert.Equal(t, uint64(3), TierGold.VotingPower())
	assert.Equal(t, uint64(4), TierPlatinum.VotingPower())
	assert.Equal(t, uint64(5), TierFounder.VotingPower())
}

func TestModuleBonus(t *testing.T) {
	e, _ := newTestEngine(t)
	require.True(t, e.RegisterContributor("hive:alice", t0))

	assert.True(t, e.ApplyModuleBonus("hive:alice", 3, t0))
	assert.Equal(t, uint64(100), e.GetContributor("hive:alice").TotalPoints)
	assert.Equal(t, TierSilver, e.Tier("hive:alice"), "bonus counts toward tier")
	assert.True(t, e.HasClaimedBonus("hive:alice", 3))

	assert.False(t, e.ApplyModuleBonus("hive:alice", 3, t0+1), "one claim per module")
	assert.False(t, e.ApplyModuleBonus("hive:alice", 99, t0), "unknown module")
	assert.False(t, e.ApplyModuleBonus("hive:nobody", 1, t0), "unregistered")

	bonuses := e.AvailableBonuses()
	assert.Equal(t, uint64(50), bonuses[1])
	assert.Equal(t, uint64(75), bonuses[2])
	assert.Equal(t, uint64(100), bonuses[3])
	assert.Equal(t, uint64(50), bonuses[4])
}

func TestMonthlyRewardsOnePerTier(t *testing.T) {
	e, l := newTestEngine(t)
	pump(t, e, "hive:founder", ThresholdFounder)
	pump(t, e, "hive:platinum", ThresholdPlatinum)
	pump(t, e, "hive:gold", ThresholdGold)
	pump(t, e, "hive:silver", ThresholdSilver)
	require.True(t, e.RegisterContributor("hive:rec", t0))
	// keep tiers distinct
	require.Equal(t, TierPlatinum, e.Tier("hive:platinum"))
	require.Equal(t, TierGold, e.Tier("hive:gold"))
	require.Equal(t, TierSilver, e.Tier("hive:silver"))

	before := l.TreasuryBalance()
	paid, ok := e.DistributeMonthlyRewards(t0 + 100)
	require.True(t, ok)
	assert.Equal(t, 5, paid)

	assert.Equal(t, 12*ledger.Unit, l.BalanceOf("hive:founder"))
	assert.Equal(t, 75*ledger.Unit/10, l.BalanceOf("hive:platinum"))
	assert.Equal(t, 6*ledger.Unit, l.BalanceOf("hive:gold"))
	assert.Equal(t, 3*ledger.Unit, l.BalanceOf("hive:silver"))
	assert.Equal(t, 15*ledger.Unit/10, l.BalanceOf("hive:rec"))

	assert.Equal(t, before-MonthlyPool, l.TreasuryBalance())
	assert.Equal(t, MonthlyPool, e.TotalRewardsDistributed())
	assert.True(t, l.VerifyIntegrity())

	c := e.GetContributor("hive:gold")
	assert.Equal(t, 6*ledger.Unit, c.RewardsEarned)
	assert.Equal(t, t0+100, c.LastRewardClaimAt)
}

func TestMonthlyRewardsCadence(t *testing.T) {
	e, _ := newTestEngine(t)
	require.True(t, e.RegisterContributor("hive:alice", t0))

	_, ok := e.DistributeMonthlyRewards(t0)
	require.True(t, ok)

	// a second cycle inside the interval is refused
	_, ok = e.DistributeMonthlyRewards(t0 + 1000)
	assert.False(t, ok)

	_, ok = e.DistributeMonthlyRewards(t0 + RewardIntervalSeconds)
	assert.True(t, ok)
}

func TestRewardsRequireFundedTreasury(t *testing.T) {
	e, l := newTestEngine(t)
	require.True(t, e.RegisterContributor("hive:alice", t0))

	// leave one base unit less than a full pool
	drained := l.TreasuryBalance() - MonthlyPool + 1
	require.True(t, l.TreasuryWithdraw("hive:vault", drained, t0))

	paid, ok := e.DistributeMonthlyRewards(t0 + 1)
	assert.False(t, ok, "underfunded cycle is refused")
	assert.Zero(t, paid)
	assert.Equal(t, uint64(0), l.BalanceOf("hive:alice"))
	assert.Equal(t, int64(0), e.GetContributor("hive:alice").LastRewardClaimAt)

	// a refused cycle does not start the interval clock
	require.True(t, l.TreasuryDeposit("hive:vault", drained, t0+2))
	paid, ok = e.DistributeMonthlyRewards(t0 + 3)
	require.True(t, ok)
	assert.Equal(t, 1, paid)
	assert.Equal(t, t0+3, e.GetContributor("hive:alice").LastRewardClaimAt)
}

func TestRewardRemainderStaysInTreasury(t *testing.T) {
	e, l := newTestEngine(t)
	// seven RECOGNIZED members split 5% of the pool, which does not divide
	// evenly in whole base units
	members := []state.Address{"hive:a", "hive:b", "hive:c", "hive:d", "hive:e", "hive:f", "hive:g"}
	for _, m := range members {
		require.True(t, e.RegisterContributor(m, t0))
	}

	before := l.TreasuryBalance()
	paid, ok := e.DistributeMonthlyRewards(t0 + 1)
	require.True(t, ok)
	assert.Equal(t, len(members), paid)

	each := MonthlyPool * 5 / 100 / uint64(len(members))
	require.NotZero(t, MonthlyPool*5/100%uint64(len(members)), "scenario needs real dust")
	assert.Equal(t, each, l.BalanceOf("hive:a"))
	assert.Equal(t, before-uint64(len(members))*each, l.TreasuryBalance(), "dust never leaves the treasury")
	assert.True(t, l.VerifyIntegrity())
}

func TestPendingReward(t *testing.T) {
	e, _ := newTestEngine(t)
	require.True(t, e.RegisterContributor("hive:a", t0))
	require.True(t, e.RegisterContributor("hive:b", t0))

	each := MonthlyPool * 5 / 100 / 2
	assert.Equal(t, each, e.PendingReward("hive:a"))
	assert.Equal(t, uint64(0), e.PendingReward("hive:nobody"))
}

func TestAuditTrail(t *testing.T) {
	e, _ := newTestEngine(t)
	require.True(t, e.RegisterContributor("hive:alice", t0))
	require.True(t, e.SubmitCompositeScore("hive:alice", perfect, t0+1))
	require.True(t, e.ApplyModuleBonus("hive:alice", 1, t0+2))

	trail := e.AuditTrail("hive:alice")
	require.Len(t, trail, 2)
	assert.Equal(t, "score", trail[0].Action)
	assert.Equal(t, uint64(100), trail[0].Points)
	assert.Equal(t, "bonus", trail[1].Action)
	assert.Equal(t, uint64(50), trail[1].Points)
	assert.Equal(t, uint64(2), trail[1].Seq)

	assert.Nil(t, e.AuditTrail("hive:nobody"))
}

func TestStatisticsAndDistribution(t *testing.T) {
	e, _ := newTestEngine(t)
	pump(t, e, "hive:gold", ThresholdGold)
	require.True(t, e.RegisterContributor("hive:rec", t0))
	require.NotZero(t, e.CreateProposal("hive:rec", "title", "", t0))

	stats := e.Statistics()
	assert.Equal(t, 2, stats.Contributors)
	assert.Equal(t, uint64(1), stats.Proposals)
	assert.Equal(t, uint64(0), stats.ProposalsExecuted)
	assert.Equal(t, e.GetContributor("hive:gold").TotalPoints, stats.TotalPointsAwarded)

	dist := e.TierDistribution()
	assert.Equal(t, 1, dist[TierGold])
	assert.Equal(t, 1, dist[TierRecognized])

	top := e.TopContributors(1)
	require.Len(t, top, 1)
	assert.Equal(t, state.Address("hive:gold"), top[0].Address)

	tiered := e.ContributorsInTier(TierGold)
	require.Len(t, tiered, 1)
	assert.Equal(t, state.Address("hive:gold"), tiered[0])
}

func TestContributorCodecRoundTrip(t *testing.T) {
	c := &Contributor{
		Address: "hive:alice", JoinedAt: t0, TotalPoints: 750, Tier: TierPlatinum,
		ScoreCount: 8, LastScoredAt: t0 + 99, RewardsEarned: 3 * ledger.Unit,
		LastRewardClaimAt: t0 + 120, AuditCount: 9,
	}
	got, err := DecodeContributor(EncodeContributor(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)

	_, err = DecodeContributor([]byte{0xFF})
	assert.Error(t, err)
}
