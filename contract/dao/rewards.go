package dao

import (
	"strconv"

	"ucic_contracts/state"
)

// lastRewardTime remembers when the previous cycle ran.
func (e *Engine) lastRewardTime() int64 {
	ptr := e.st.Get(keyLastRewardTime)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseInt(*ptr, 10, 64)
	return n
}

func (e *Engine) setLastRewardTime(now int64) {
	e.st.Set(keyLastRewardTime, strconv.FormatInt(now, 10))
}

// tierPayout computes the per-head amount for a tier given its population.
// Integer division truncates; the dust never leaves the treasury.
func tierPayout(tier Tier, population int) uint64 {
	if population == 0 {
		return 0
	}
	share := MonthlyPool * tierPoolShare[tier] / 100
	return share / uint64(population)
}

// DistributeMonthlyRewards runs one reward cycle: each tier's share of the
// pool is split evenly among its members and paid from the treasury. Each
// payout is independent; a failed transfer skips that contributor's
// bookkeeping and the cycle carries on. Returns the number of payouts made
// and false when the cycle itself could not run.
func (e *Engine) DistributeMonthlyRewards(now int64) (int, bool) {
	if e.rewards == nil {
		return 0, false
	}
	last := e.lastRewardTime()
	if last != 0 && now < last+RewardIntervalSeconds {
		return 0, false
	}
	// the cycle only runs when the treasury can fund the full pool;
	// a refused cycle does not consume the interval
	if e.rewards.TreasuryBalance() < MonthlyPool {
		return 0, false
	}

	byTier := make(map[Tier][]state.Address)
	for _, member := range state.IndexMembers(e.st, idxContributors) {
		addr := state.Address(member)
		c := e.getContributor(addr)
		if c == nil {
			continue
		}
		byTier[c.Tier] = append(byTier[c.Tier], addr)
	}

	paid := 0
	for tier := TierFounder; ; tier-- {
		members := byTier[tier]
		amount := tierPayout(tier, len(members))
		if amount > 0 {
			for _, addr := range members {
				if !e.rewards.DistributeReward(addr, amount, now) {
					continue
				}
				c := e.getContributor(addr)
				c.RewardsEarned += amount
				c.LastRewardClaimAt = now
				e.appendAudit(c, "reward", 0, now)
				e.putContributor(c)
				state.SetCount(e.st, cntRewardsPaid, state.GetCount(e.st, cntRewardsPaid)+amount)
				e.emitRewardPaid(addr.String(), amount, tier)
				paid++
			}
		}
		if tier == TierRecognized {
			break
		}
	}
	e.setLastRewardTime(now)
	return paid, true
}

// PendingReward estimates what the contributor would receive if a cycle ran
// now, based on the current tier populations.
func (e *Engine) PendingReward(addr state.Address) uint64 {
	c := e.getContributor(addr)
	if c == nil {
		return 0
	}
	return tierPayout(c.Tier, len(e.ContributorsInTier(c.Tier)))
}

// TotalRewardsDistributed reports the lifetime sum of paid rewards in base units.
func (e *Engine) TotalRewardsDistributed() uint64 {
	return state.GetCount(e.st, cntRewardsPaid)
}
