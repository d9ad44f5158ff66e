package models

// Reward is a server-owned achievement definition. The client only displays
// earned vs locked sets; TriggerType is one of the constants.Trigger* values.
type Reward struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssetURL    string `json:"asset_url,omitempty"`
	TriggerType string `json:"trigger_type"`
	Threshold   int    `json:"threshold"`
}

// RewardsGallery holds the earned and locked reward sets for a user.
type RewardsGallery struct {
	EarnedRewards []Reward `json:"earnedRewards"`
	LockedRewards []Reward `json:"lockedRewards"`
}

// RewardsGalleryResponse wraps the gallery endpoint payload.
type RewardsGalleryResponse struct {
	Data RewardsGallery `json:"data"`
}
