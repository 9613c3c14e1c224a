package milestone

import (
	"fmt"
	"strings"

	"github.com/mmcdole/dextrack/internal/domain"
)

// catalog is the static, ordered milestone list. Ids are stable and unique.
var catalog = buildCatalog()

// Catalog returns a copy of the milestone catalog in display order.
func Catalog() []domain.Milestone {
	out := make([]domain.Milestone, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a catalog entry by id.
func Lookup(id string) (domain.Milestone, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Milestone{}, false
}

// IDs returns every catalog id in order.
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, m := range catalog {
		ids[i] = m.ID
	}
	return ids
}

func buildCatalog() []domain.Milestone {
	out := []domain.Milestone{
		{
			ID:          "kanto_50",
			Category:    domain.CategoryRegion,
			Title:       "Kanto Collector",
			Description: "Catch 50 Pokémon in the Kanto dex range.",
			Rule:        domain.Threshold(domain.SignalRegionCaught, "kanto", 50),
			Reward:      domain.BadgeReward("Kanto Collector"),
		},
		{
			ID:          "kanto_151",
			Category:    domain.CategoryRegion,
			Title:       "Kanto Complete",
			Description: "Complete the Kanto dex range.",
			Rule:        domain.Threshold(domain.SignalRegionCaught, "kanto", 151),
			Reward:      domain.TitleReward("Kanto Champion"),
		},
		{
			ID:          "national_151",
			Category:    domain.CategoryNational,
			Title:       "First Generation",
			Description: "Catch 151 Pokémon in the National dex.",
			Rule:        domain.Threshold(domain.SignalNationalCaught, "", 151),
			Reward:      domain.BadgeReward("Gen 1 Complete"),
		},
		{
			ID:          "national_500",
			Category:    domain.CategoryNational,
			Title:       "Collector 500",
			Description: "Catch 500 Pokémon in the National dex.",
			Rule:        domain.Threshold(domain.SignalNationalCaught, "", 500),
			Reward:      domain.TitleReward("Master Collector"),
		},
		{
			ID:          "first_shiny",
			Category:    domain.CategoryVault,
			Title:       "First Shiny",
			Description: "Store at least one shiny Pokémon in your vault.",
			Rule:        domain.Threshold(domain.SignalVaultShinyCount, "", 1),
			Reward:      domain.BadgeReward("Shiny Hunter"),
		},
		{
			ID:          "stored_100",
			Category:    domain.CategoryVault,
			Title:       "Vault Builder",
			Description: "Store 100 Pokémon in your vault.",
			Rule:        domain.Threshold(domain.SignalVaultTotalStored, "", 100),
			Reward:      domain.BadgeReward("Vault Builder"),
		},
	}

	types := []struct {
		tag   string
		tiers []typeTier
	}{
		{"bug", []typeTier{{50, "Shiny Heracross"}, {100, "Shiny Scizor"}, {200, "Genesect"}}},
		{"electric", []typeTier{{50, "Shiny Jolteon"}, {100, "Shiny Luxray"}, {200, "Zeraora"}}},
		{"water", []typeTier{{50, "Shiny Gyarados"}, {100, "Shiny Greninja"}, {200, "Manaphy"}, {300, "Phione"}}},
		{"grass", []typeTier{{50, "Shiny Roserade"}, {100, "Shiny Sceptile"}, {200, "Shaymin"}}},
		{"psychic", []typeTier{{50, "Shiny Espeon"}, {100, "Shiny Gardevoir"}, {250, "Mew"}}},
		{"steel", []typeTier{{50, "Shiny Metagross"}, {100, "Shiny Aegislash"}, {200, "Magearna"}}},
		{"fire", []typeTier{{50, "Shiny Arcanine"}, {100, "Shiny Blaziken"}, {200, "Volcanion"}}},
		{"dark", []typeTier{{50, "Shiny Umbreon"}, {100, "Shiny Zoroark"}, {200, "Darkrai"}}},
		{"fighting", []typeTier{{50, "Shiny Lucario"}, {100, "Shiny Gallade"}, {200, "Keldeo"}}},
		{"fairy", []typeTier{{50, "Shiny Sylveon"}, {100, "Shiny Togekiss"}, {200, "Diancie"}}},
		{"normal", []typeTier{{50, "Shiny Snorlax"}, {100, "Shiny Porygon Z"}, {200, "Meloetta"}}},
	}
	for _, ty := range types {
		for _, tier := range ty.tiers {
			out = append(out, typeMilestone(ty.tag, tier.threshold, tier.reward))
		}
	}

	regionRewards := []struct{ id, name, reward string }{
		{"kanto", "Kanto", "Meltan"},
		{"johto", "Johto", "Celebi"},
		{"hoenn", "Hoenn", "Jirachi"},
		{"sinnoh", "Sinnoh", "Arceus"},
		{"unova", "Unova", "Victini"},
		{"kalos", "Kalos", "Hoopa"},
		{"alola", "Alola", "Marshadow"},
		{"galar", "Galar", "Zarude"},
	}
	for _, r := range regionRewards {
		out = append(out, domain.Milestone{
			ID:          fmt.Sprintf("region_%s_100", r.id),
			Category:    domain.CategoryRegion,
			Title:       r.name + " Completed",
			Description: fmt.Sprintf("Complete the %s dex range.", r.name),
			Rule:        domain.RangeComplete(r.id),
			Reward:      domain.PokemonReward(r.reward),
		})
	}

	dupRewards := []typeTier{{25, "Shiny Eevee"}, {75, "Shiny Riolu"}, {150, "Shiny Gible"}, {300, "Melmetal"}}
	for _, tier := range dupRewards {
		out = append(out, domain.Milestone{
			ID:          fmt.Sprintf("dup_%d", tier.threshold),
			Category:    domain.CategoryVault,
			Title:       fmt.Sprintf("Duplicate Transfer %d", tier.threshold),
			Description: fmt.Sprintf("Transfer %d duplicate Pokémon.", tier.threshold),
			Rule:        domain.Threshold(domain.SignalDuplicatesTransferred, "", tier.threshold),
			Reward:      domain.PokemonReward(tier.reward),
		})
	}

	out = append(out, domain.Milestone{
		ID:          "national_100",
		Category:    domain.CategoryNational,
		Title:       "National 100 Percent",
		Description: "Reach 100 percent completion of the National Pokédex and maintain a living dex in your vault.",
		Rule:        domain.All(domain.RangeComplete(domain.NationalRangeID), domain.LivingDex()),
		Reward:      domain.PokemonReward("Shiny Mew"),
	})

	return out
}

type typeTier struct {
	threshold int
	reward    string
}

func typeMilestone(tag string, threshold int, reward string) domain.Milestone {
	pretty := strings.ToUpper(tag[:1]) + tag[1:]
	return domain.Milestone{
		ID:          fmt.Sprintf("type_%s_%d", tag, threshold),
		Category:    domain.CategoryType,
		Title:       fmt.Sprintf("%s Mastery %d", pretty, threshold),
		Description: fmt.Sprintf("Store %d %s type Pokémon.", threshold, pretty),
		Rule:        domain.Threshold(domain.SignalTypeCount, tag, threshold),
		Reward:      domain.PokemonReward(reward),
	}
}
