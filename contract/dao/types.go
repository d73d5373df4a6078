package dao

import "ucic_contracts/state"

type Tier byte

const (
	TierRecognized Tier = iota
	TierSilver
	TierGold
	TierPlatinum
	TierFounder
)

func (t Tier) String() string {
	switch t {
	case TierRecognized:
		return "RECOGNIZED"
	case TierSilver:
		return "SILVER"
	case TierGold:
		return "GOLD"
	case TierPlatinum:
		return "PLATINUM"
	case TierFounder:
		return "FOUNDER"
	default:
		return "UNKNOWN"
	}
}

// Threshold returns the cumulative points needed to hold the tier.
func (t Tier) Threshold() uint64 {
	switch t {
	case TierSilver:
		return ThresholdSilver
	case TierGold:
		return ThresholdGold
	case TierPlatinum:
		return ThresholdPlatinum
	case TierFounder:
		return ThresholdFounder
	default:
		return ThresholdRecognized
	}
}

// VotingPower maps tiers onto the 1x..5x multiplier range.
func (t Tier) VotingPower() uint64 {
	return uint64(t) + 1
}

// TierForPoints assigns the highest tier whose threshold is reached.
func TierForPoints(points uint64) Tier {
	switch {
	case points >= ThresholdFounder:
		return TierFounder
	case points >= ThresholdPlatinum:
		return TierPlatinum
	case points >= ThresholdGold:
		return TierGold
	case points >= ThresholdSilver:
		return TierSilver
	default:
		return TierRecognized
	}
}

// ScoreSet carries the five 0..100 category scores of one evaluation.
type ScoreSet struct {
	CodeQuality   uint64
	Documentation uint64
	Testing       uint64
	Innovation    uint64
	Community     uint64
}

// Valid rejects any category outside 0..100.
func (s ScoreSet) Valid() bool {
	return s.CodeQuality <= 100 && s.Documentation <= 100 && s.Testing <= 100 &&
		s.Innovation <= 100 && s.Community <= 100
}

// Composite collapses the set into one weighted 0..100 score using integer
// math so every host computes the identical value.
func (s ScoreSet) Composite() uint64 {
	sum := s.CodeQuality*WeightCodeQuality +
		s.Documentation*WeightDocumentation +
		s.Testing*WeightTesting +
		s.Innovation*WeightInnovation +
		s.Community*WeightCommunity
	return sum / 100
}

// Contributor is the stored record per registered address.
type Contributor struct {
	Address           state.Address
	JoinedAt          int64
	TotalPoints       uint64
	Tier              Tier
	ScoreCount        uint64
	LastScoredAt      int64
	RewardsEarned     uint64
	LastRewardClaimAt int64
	AuditCount        uint64
}

type ProposalState byte

const (
	ProposalPending ProposalState = iota
	ProposalActive
	ProposalPassed
	ProposalFailed
	ProposalExecuted
)

func (s ProposalState) String() string {
	switch s {
	case ProposalPending:
		return "PENDING"
	case ProposalActive:
		return "ACTIVE"
	case ProposalPassed:
		return "PASSED"
	case ProposalFailed:
		return "FAILED"
	case ProposalExecuted:
		return "EXECUTED"
	default:
		return "UNKNOWN"
	}
}

type VoteType byte

const (
	VoteFor VoteType = iota + 1
	VoteAgainst
	VoteAbstain
)

func (v VoteType) String() string {
	switch v {
	case VoteFor:
		return "FOR"
	case VoteAgainst:
		return "AGAINST"
	case VoteAbstain:
		return "ABSTAIN"
	default:
		return "UNKNOWN"
	}
}

type Proposal struct {
	ID           uint64
	Proposer     state.Address
	Title        string
	Description  string
	CreatedAt    int64
	Deadline     int64
	State        ProposalState
	ForPower     uint64
	AgainstPower uint64
	AbstainPower uint64
	VoterCount   uint64
	ExecutedAt   int64
}

// VoteReceipt pins the voter's power at cast time so later tier changes
// never rewrite a tally.
type VoteReceipt struct {
	ProposalID uint64
	Voter      state.Address
	Type       VoteType
	Power      uint64
	CastAt     int64
}

// AuditEntry is one line of a contributor's point history.
type AuditEntry struct {
	Seq       uint64
	Action    string
	Points    uint64
	Timestamp int64
}

// GovEntry is one line of the global governance log.
type GovEntry struct {
	Seq        uint64
	Action     string
	Actor      state.Address
	ProposalID uint64
	Timestamp  int64
}

// Stats is the aggregate snapshot the Statistics query returns.
type Stats struct {
	Contributors       int
	Proposals          uint64
	ProposalsExecuted  uint64
	TotalPointsAwarded uint64
	RewardsDistributed uint64
}

// RewardSink is the only capability the engine holds on the token ledger.
// The ledger's reward entry point satisfies it.
type RewardSink interface {
	DistributeReward(to state.Address, amount uint64, now int64) bool
	TreasuryBalance() uint64
}
