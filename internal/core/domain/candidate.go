package domain

// Candidate is an entry on a campaign ballot. Its position in the
// campaign's candidate list is its id.
type Candidate struct {
	Name      string `json:"name"`
	VoteCount int64  `json:"vote_count"`
}
