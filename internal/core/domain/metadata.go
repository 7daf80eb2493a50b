package domain

import "time"

// CampaignMetadata is the factory's record of a created campaign. Date is
// display-only and never interpreted.
type CampaignMetadata struct {
	Number          int
	Address         Address
	Name            string
	Description     string
	DurationMinutes int
	StartTime       time.Time
	Date            string
}
