package services

import (
	"testing"

	"brewspot/models"
)

func eligibleProfile() *models.Profile {
	return &models.Profile{
		XP:         300,
		TrustLevel: 3,
		Stats:      models.Stats{ApprovedVenues: 4, RejectedVenues: 1},
	}
}

func TestContributorThresholdsMet(t *testing.T) {
	if !meetsContributorThresholds(eligibleProfile()) {
		t.Error("profile at exact thresholds should qualify")
	}
}

func TestContributorThresholdConjunction(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Profile)
	}{
		{"trust below 3", func(p *models.Profile) { p.TrustLevel = 2 }},
		{"xp below 300", func(p *models.Profile) { p.XP = 299 }},
		{"fewer than 4 approved", func(p *models.Profile) { p.Stats.ApprovedVenues = 3 }},
		{"more than 1 rejected", func(p *models.Profile) { p.Stats.RejectedVenues = 2 }},
	}

	for _, c := range cases {
		p := eligibleProfile()
		c.mutate(p)
		if meetsContributorThresholds(p) {
			t.Errorf("%s: profile should not qualify", c.name)
		}
	}
}
