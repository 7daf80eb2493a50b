package domain

import (
	"errors"
	"fmt"
)

// Election errors. Every mutating operation that returns one of these has
// left the campaign untouched.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrOutOfRange       = errors.New("index out of range")
	ErrNotOwner         = errors.New("only owner can call this function")
	ErrVotingNotOpen    = errors.New("voting is not open")
	ErrVotingNotStarted = fmt.Errorf("%w: voting has not started yet", ErrVotingNotOpen)
	ErrVotingEnded      = fmt.Errorf("%w: voting has ended", ErrVotingNotOpen)
	ErrNotEligible      = errors.New("caller is not an eligible voter")
	ErrAlreadyVoted     = errors.New("you have already voted")
	ErrInvalidCandidate = errors.New("invalid candidate index")
	ErrMemberExists     = errors.New("member already exists")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrGroupNotFound    = errors.New("group not found")
)
