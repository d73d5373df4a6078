package oracle

import (
	"ucic_contracts/contract/dao"
	"ucic_contracts/state"
)

type VerificationLevel byte

const (
	LevelUnverified VerificationLevel = iota
	LevelBasic
	LevelAdvanced
	LevelAuditComplete
)

func (l VerificationLevel) String() string {
	switch l {
	case LevelUnverified:
		return "UNVERIFIED"
	case LevelBasic:
		return "BASIC"
	case LevelAdvanced:
		return "ADVANCED"
	case LevelAuditComplete:
		return "AUDIT_COMPLETE"
	default:
		return "UNKNOWN"
	}
}

// levelForApprovals maps the count of distinct approving verifiers onto the
// escalation ladder.
func levelForApprovals(n uint64) VerificationLevel {
	switch {
	case n >= 3:
		return LevelAuditComplete
	case n == 2:
		return LevelAdvanced
	case n == 1:
		return LevelBasic
	default:
		return LevelUnverified
	}
}

// Submission is one scored contribution awaiting verification. The Merkle
// leaves cover every field an auditor might want to prove in isolation.
type Submission struct {
	ID           string
	Contributor  state.Address
	Scores       dao.ScoreSet
	RepoURL      string
	EvidenceHash []byte
	SubmittedAt  int64
	Level        VerificationLevel
	Approvals    uint64
	Rejections   uint64
	ChainCount   uint64
	Forwarded    bool
	Challenged   bool
	MerkleRoot   []byte
}

// Verification is one verifier action in a submission's chain.
type Verification struct {
	Seq          uint64
	SubmissionID string
	Verifier     state.Address
	Approved     bool
	Notes        string
	LevelAfter   VerificationLevel
	At           int64
}

// Verifier is the stored record per auditor. The record outlives the
// allow-list membership so the counters keep matching the chains a
// removed verifier already acted in.
type Verifier struct {
	Address      state.Address
	RegisteredAt int64
	Active       bool
	Approvals    uint64
	Rejections   uint64
	LastActionAt int64
}

// RepoLink binds a contributor to the repository their work ships in.
type RepoLink struct {
	Contributor state.Address
	RepoURL     string
	CommitSHA   string
}

// Challenge disputes a submission's verification outcome.
type Challenge struct {
	ID           string
	SubmissionID string
	Challenger   state.Address
	Reason       string
	CreatedAt    int64
	Resolved     bool
	Accepted     bool
	ResolvedAt   int64
}

// Stats is the aggregate snapshot the Statistics query returns.
type Stats struct {
	Submissions         uint64
	Approvals           uint64
	Rejections          uint64
	AuditComplete       uint64
	Forwarded           uint64
	ChallengesOpen      int
	ChallengesAccepted  uint64
	AvgVerificationTime int64
}

// ScoreSink is the only capability the oracle holds on the governance
// engine. It fires once per submission, when the escalation first reaches
// AUDIT_COMPLETE. The engine's score entry point satisfies it.
type ScoreSink interface {
	SubmitCompositeScore(addr state.Address, scores dao.ScoreSet, now int64) bool
}
