package api

import (
	"sort"

	"github.com/valyala/fasthttp"

	"github.com/dailystep/dailystep/internal/models"
)

// GetRewardsGallery fetches the earned and locked reward sets for the current
// token, each sorted ascending by threshold for display.
func (c *Client) GetRewardsGallery() (models.RewardsGallery, error) {
	var out models.RewardsGalleryResponse
	if err := c.doJSON(fasthttp.MethodGet, "/rewards/gallery", nil, &out); err != nil {
		return models.RewardsGallery{}, err
	}

	gallery := out.Data
	sort.SliceStable(gallery.EarnedRewards, func(i, j int) bool {
		return gallery.EarnedRewards[i].Threshold < gallery.EarnedRewards[j].Threshold
	})
	sort.SliceStable(gallery.LockedRewards, func(i, j int) bool {
		return gallery.LockedRewards[i].Threshold < gallery.LockedRewards[j].Threshold
	})
	return gallery, nil
}
