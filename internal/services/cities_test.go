package services

import "trainer-market-service/internal/domain"

func city(name, state string, gyms, trainers int, density float64, boutique, bigBox, community int,
	venues, violent, property float64, crimeIndex int, biden, trump float64, mayor string,
) domain.CityRecord {
	return domain.CityRecord{
		City:               name,
		State:              state,
		Gyms:               gyms,
		Trainers:           trainers,
		TrainerDensity:     density,
		BoutiqueGyms:       boutique,
		BigBoxGyms:         bigBox,
		CommunityGyms:      community,
		RentableVenues:     venues,
		ViolentCrimePer1k:  violent,
		PropertyCrimePer1k: property,
		CrimeIndex:         crimeIndex,
		BidenPct:           biden,
		TrumpPct:           trump,
		Mayor:              mayor,
	}
}

// marketTable mirrors the embedded 13-row market table.
func marketTable() []domain.CityRecord {
	return []domain.CityRecord{
		city("Cary", "NC", 190, 630, 3.6, 122, 66, 2, 3, 1.07, 12.58, 33, 62.3, 35.8, "Harold Weinbrecht (D)"),
		city("Apex", "NC", 75, 625, 8.8, 48, 26, 1, 1, 0.55, 9.00, 58, 62.3, 35.8, "Jacques Gilbert (NP)"),
		city("Huntersville", "NC", 65, 627, 10.2, 38, 26, 1, 1, 1.99, 14.24, 27, 66.7, 31.6, "Christy Clark (D)"),
		city("Concord", "NC", 100, 626, 5.8, 59, 39, 2, 4, 1.14, 10.00, 54, 44.5, 53.9, "Bill Dusch (NP)"),
		city("Wilmington", "NC", 80, 623, 5.1, 61, 17, 2, 3, 4.87, 35.08, 5, 50.2, 48.0, "Bill Saffo (D)"),
		city("Mount Pleasant", "SC", 56, 630, 6.4, 38, 16, 2, 2, 1.46, 13.13, 57, 55.5, 42.6, "Will Haynie (R)"),
		city("Charleston", "SC", 98, 632, 4.0, 57, 38, 3, 3, 4.08, 20.54, 14, 55.5, 42.6, "William Cogswell (R)"),
		city("Greer", "SC", 19, 624, 12.5, 9, 9, 1, 1, 2.34, 18.18, 19, 39.9, 58.1, "Rick Danner (R)"),
		city("Summerville", "SC", 26, 626, 11.9, 15, 10, 1, 1, 4.32, 30.86, 6, 43.8, 54.2, "Russ Touchberry (NP)"),
		city("Franklin", "TN", 100, 637, 7.0, 64, 35, 1, 1, 1.49, 10.20, 60, 36.1, 62.2, "Ken Moore (R)"),
		city("Collierville", "TN", 50, 624, 12.2, 30, 19, 1, 1, 6.00, 13.60, 40, 64.4, 34.0, "Maureen Fraser (R)"),
		city("Hendersonville", "TN", 60, 633, 9.8, 30, 29, 1, 1, 3.10, 23.30, 30, 29.9, 68.5, "Jamie Clary (R)"),
		city("Brentwood", "TN", 50, 639, 14.2, 34, 15, 1, 1, 0.70, 9.30, 80, 36.1, 62.2, "Rhea Little (R)"),
	}
}

func names(recs []domain.CityRecord) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.City)
	}
	return out
}
