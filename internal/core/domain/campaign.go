package domain

import (
	"fmt"
	"time"
)

// Status is the derived phase of a campaign. It is never stored; it is
// recomputed from the voting window on every call.
type Status string

const (
	StatusPending Status = "pending"
	StatusOpen    Status = "open"
	StatusClosed  Status = "closed"
)

// CampaignParams holds the creation arguments of a campaign.
type CampaignParams struct {
	CandidateNames  []string
	DurationMinutes int
	Name            string
	Description     string
	StartTime       time.Time
	Date            string
	// Private restricts voting to EligibleVoters. Campaigns are public by
	// default.
	Private        bool
	EligibleVoters []Identity
}

// Validate checks the creation constraints. StartTime has no lower bound, so
// a campaign may open immediately or be created already running.
func (p CampaignParams) Validate() error {
	if len(p.CandidateNames) == 0 {
		return fmt.Errorf("%w: at least one candidate is required", ErrInvalidInput)
	}
	if p.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if p.Private && len(p.EligibleVoters) == 0 {
		return fmt.Errorf("%w: private campaign without eligible voters", ErrInvalidInput)
	}
	return nil
}

// Campaign is a single election. Owner, name, description, window, number
// and group are fixed at construction; candidates are append-only and the
// voter record only ever gains entries.
//
// Voters may be a partial view when the campaign is loaded from storage
// scoped to one caller; VotersCount is always the full count.
type Campaign struct {
	Address         Address
	Number          int
	Owner           Identity
	Name            string
	Description     string
	StartTime       time.Time
	DurationMinutes int
	Date            string
	GroupID         GroupID
	Private         bool
	Eligible        map[Identity]struct{}
	Candidates      []Candidate
	Voters          map[Identity]bool
	VotersCount     int64
}

// NewCampaign builds a campaign owned by the caller. Times are kept with
// second precision.
func NewCampaign(call Call, p CampaignParams, addr Address, number int, group GroupID) (*Campaign, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if call.Caller == "" {
		return nil, fmt.Errorf("%w: empty caller", ErrInvalidInput)
	}
	if group == 0 {
		return nil, fmt.Errorf("%w: zero group id", ErrInvalidInput)
	}
	c := &Campaign{
		Address:         addr,
		Number:          number,
		Owner:           call.Caller,
		Name:            p.Name,
		Description:     p.Description,
		StartTime:       p.StartTime.Truncate(time.Second).UTC(),
		DurationMinutes: p.DurationMinutes,
		Date:            p.Date,
		GroupID:         group,
		Private:         p.Private,
		Eligible:        make(map[Identity]struct{}, len(p.EligibleVoters)),
		Candidates:      make([]Candidate, 0, len(p.CandidateNames)),
		Voters:          make(map[Identity]bool),
	}
	for _, v := range p.EligibleVoters {
		c.Eligible[v] = struct{}{}
	}
	for _, name := range p.CandidateNames {
		c.Candidates = append(c.Candidates, Candidate{Name: name})
	}
	return c, nil
}

// EndTime is the first instant at which voting is closed.
func (c *Campaign) EndTime() time.Time {
	return c.StartTime.Add(time.Duration(c.DurationMinutes) * time.Minute)
}

// Status reports the phase at now. The window is [StartTime, EndTime).
func (c *Campaign) Status(now time.Time) Status {
	switch {
	case now.Before(c.StartTime):
		return StatusPending
	case now.Before(c.EndTime()):
		return StatusOpen
	default:
		return StatusClosed
	}
}

// VotingOpen is true iff the campaign is open at now.
func (c *Campaign) VotingOpen(now time.Time) bool {
	return c.Status(now) == StatusOpen
}

// RemainingTime is max(0, EndTime - now), truncated to whole seconds.
func (c *Campaign) RemainingTime(now time.Time) time.Duration {
	d := c.EndTime().Sub(now)
	if d <= 0 {
		return 0
	}
	return d.Truncate(time.Second)
}

// Vote records one ballot for candidateID on behalf of the caller.
// Preconditions are checked in order: window, eligibility (private
// campaigns only), double vote, candidate id. Nothing changes on failure.
func (c *Campaign) Vote(call Call, candidateID int) error {
	switch c.Status(call.Now) {
	case StatusPending:
		return ErrVotingNotStarted
	case StatusClosed:
		return ErrVotingEnded
	}
	if !c.IsEligible(call.Caller) {
		return ErrNotEligible
	}
	if c.Voters[call.Caller] {
		return ErrAlreadyVoted
	}
	if candidateID < 0 || candidateID >= len(c.Candidates) {
		return ErrInvalidCandidate
	}
	c.Candidates[candidateID].VoteCount++
	if c.Voters == nil {
		c.Voters = make(map[Identity]bool)
	}
	c.Voters[call.Caller] = true
	c.VotersCount++
	return nil
}

// AddCandidate appends a candidate with zero votes and returns its id. Only
// the owner may add candidates.
func (c *Campaign) AddCandidate(call Call, name string) (int, error) {
	if !c.IsOwner(call.Caller) {
		return 0, ErrNotOwner
	}
	c.Candidates = append(c.Candidates, Candidate{Name: name})
	return len(c.Candidates) - 1, nil
}

// Candidate returns the candidate with the given id.
func (c *Campaign) Candidate(id int) (Candidate, error) {
	if id < 0 || id >= len(c.Candidates) {
		return Candidate{}, fmt.Errorf("%w: candidate %d", ErrOutOfRange, id)
	}
	return c.Candidates[id], nil
}

func (c *Campaign) IsOwner(id Identity) bool {
	return id != "" && id == c.Owner
}

// IsEligible reports whether id may vote. Every identity is eligible in a
// public campaign.
func (c *Campaign) IsEligible(id Identity) bool {
	if !c.Private {
		return true
	}
	_, ok := c.Eligible[id]
	return ok
}

// HasVoted consults the loaded voter record.
func (c *Campaign) HasVoted(id Identity) bool {
	return c.Voters[id]
}

// Metadata returns the factory view of the campaign.
func (c *Campaign) Metadata() CampaignMetadata {
	return CampaignMetadata{
		Number:          c.Number,
		Address:         c.Address,
		Name:            c.Name,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		StartTime:       c.StartTime,
		Date:            c.Date,
	}
}

// Clone returns a deep copy so a mutation can be applied and discarded.
func (c *Campaign) Clone() *Campaign {
	cp := c.Snapshot()
	for k, v := range c.Voters {
		cp.Voters[k] = v
	}
	return cp
}

// Snapshot is Clone without the voter record. VotersCount is kept.
func (c *Campaign) Snapshot() *Campaign {
	cp := *c
	cp.Candidates = append([]Candidate(nil), c.Candidates...)
	cp.Eligible = make(map[Identity]struct{}, len(c.Eligible))
	for k := range c.Eligible {
		cp.Eligible[k] = struct{}{}
	}
	cp.Voters = make(map[Identity]bool)
	return &cp
}
