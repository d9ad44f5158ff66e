package cache

import (
	"fmt"

	"github.com/dailystep/dailystep/internal/models"
)

// SaveGallery replaces the cached rewards gallery. Earned and locked rewards
// share one table with an earned flag.
func (s *Store) SaveGallery(gallery models.RewardsGallery) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM rewards`); err != nil {
		return fmt.Errorf("clear cached rewards: %w", err)
	}

	insert := func(rewards []models.Reward, earned int) error {
		for _, r := range rewards {
			_, err := tx.Exec(
				`INSERT INTO rewards (id, title, description, asset_url, trigger_type, threshold, earned)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				r.ID, r.Title, r.Description, r.AssetURL, r.TriggerType, r.Threshold, earned,
			)
			if err != nil {
				return fmt.Errorf("cache reward %d: %w", r.ID, err)
			}
		}
		return nil
	}
	if err := insert(gallery.EarnedRewards, 1); err != nil {
		return err
	}
	if err := insert(gallery.LockedRewards, 0); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	return s.touch()
}

// Gallery returns the cached rewards gallery, both lists ordered by threshold.
func (s *Store) Gallery() (models.RewardsGallery, error) {
	rows, err := s.db.Query(
		`SELECT id, title, description, asset_url, trigger_type, threshold, earned
		 FROM rewards ORDER BY threshold`,
	)
	if err != nil {
		return models.RewardsGallery{}, fmt.Errorf("load cached rewards: %w", err)
	}
	defer rows.Close()

	var gallery models.RewardsGallery
	for rows.Next() {
		var r models.Reward
		var earned int
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.AssetURL, &r.TriggerType, &r.Threshold, &earned); err != nil {
			return models.RewardsGallery{}, err
		}
		if earned == 1 {
			gallery.EarnedRewards = append(gallery.EarnedRewards, r)
		} else {
			gallery.LockedRewards = append(gallery.LockedRewards, r)
		}
	}
	return gallery, rows.Err()
}
