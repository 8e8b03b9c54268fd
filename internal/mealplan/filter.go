package mealplan

import "log"

// FilterCatalogue drops foods that fail the caller's dietary constraints.
// With no constraints the catalogue is returned unchanged. A food is kept
// only if it matches at least one requested restriction, shares no allergen
// with the requested list, and is suitable for every requested condition.
// An empty result is valid here; the caller decides whether that is terminal.
func FilterCatalogue(foods []CatalogueFood, restrictions, allergens, conditions []string) []CatalogueFood {
	if len(restrictions) == 0 && len(allergens) == 0 && len(conditions) == 0 {
		return foods
	}

	log.Printf("Filtering catalogue - restrictions: %v, allergens: %v, conditions: %v",
		restrictions, allergens, conditions)

	filtered := make([]CatalogueFood, 0, len(foods))
	for _, food := range foods {
		if len(restrictions) > 0 && !anyOverlap(food.DietaryTags, restrictions) {
			continue
		}
		if len(allergens) > 0 && anyOverlap(food.Allergens, allergens) {
			continue
		}
		if len(conditions) > 0 && !containsAll(food.SuitableForConditions, conditions) {
			continue
		}
		filtered = append(filtered, food)
	}

	log.Printf("Found %d foods matching all requirements", len(filtered))
	return filtered
}

func anyOverlap(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
