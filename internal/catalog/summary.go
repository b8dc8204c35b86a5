package catalog

import (
	"fmt"
	"io"

	"github.com/court-finder/app/models"
)

// estimatedPerCity số sân trung bình mỗi thành phố dùng cho con số ước tính
var estimatedPerCity = map[models.Tier]int{
	models.TierMajor:  15,
	models.TierMedium: 6,
	models.TierSmall:  2,
}

// TierSummary thống kê coverage của một tier
type TierSummary struct {
	Tier      models.Tier `json:"tier"`
	Cities    int         `json:"cities"`
	Courts    int         `json:"courts"`
	Estimated int         `json:"estimated_courts"`
}

// Summary coverage summary sau khi seed
type Summary struct {
	Tiers []TierSummary `json:"tiers"`
	Total int           `json:"total_courts"`
}

// Summarize tính coverage summary.
// Courts là số record thực tế của tier; Estimated = số thành phố × trung bình cố định.
func Summarize(c *Catalog, courts []models.CourtRecord) *Summary {
	s := &Summary{
		Tiers: make([]TierSummary, 0, len(models.Tiers)),
		Total: len(courts),
	}
	for _, tier := range models.Tiers {
		cities := c.CityCount(tier)
		s.Tiers = append(s.Tiers, TierSummary{
			Tier:      tier,
			Cities:    cities,
			Courts:    c.CourtCount(tier),
			Estimated: cities * estimatedPerCity[tier],
		})
	}
	return s
}

// Tier lấy summary của một tier
func (s *Summary) Tier(tier models.Tier) (TierSummary, bool) {
	for _, ts := range s.Tiers {
		if ts.Tier == tier {
			return ts, true
		}
	}
	return TierSummary{}, false
}

// Write in coverage summary dạng text cho operator
func (s *Summary) Write(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Coverage Summary:"); err != nil {
		return err
	}
	for _, ts := range s.Tiers {
		_, err := fmt.Fprintf(w, "- %s (%d): %d courts (~%d estimated)\n",
			ts.Tier.Label(), ts.Cities, ts.Courts, ts.Estimated)
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "- Total: %d courts covering all 50 US states\n", s.Total)
	return err
}
