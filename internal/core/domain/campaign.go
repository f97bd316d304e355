package domain

// AccountRef identifies the account owning a promotional event. Accounts are
// managed elsewhere; the planner only carries the reference.
type AccountRef string

// CampaignRef identifies the promotional campaign an event belongs to.
// Like AccountRef it is a reference only and is never resolved here.
type CampaignRef string
