package recommender

import "github.com/Raeus1901/wine-bot/internal/domain/entity"

// Step is one question in the preference sequence.
type Step struct {
	Key      string
	Question string
	Options  []string
}

// steps define the Q&A order for both the structured and the wizard flow.
// The wizard prefixes each question with its number.
var steps = []Step{
	{
		Key:      entity.SlotColor,
		Question: "What color wine do you prefer?",
		Options:  []string{"Red", "White", "Rosé", "Sparkling"},
	},
	{
		Key:      entity.SlotAlcoholLevel,
		Question: "What is your preferred alcohol range?",
		Options:  []string{"11-12%", "12-13%", "13-14%", "14-15%"},
	},
	{
		Key:      entity.SlotCountry,
		Question: "Which country do you prefer?",
		Options:  []string{"France", "Spain", "Italy", "Others"},
	},
	{
		Key:      entity.SlotPriceRange,
		Question: "Which price range do you want?",
		Options:  []string{"$10-20", "$20-30", "$30-40", "$40-50"},
	},
}

// fallbackOrder lists the constraints to relax, one at a time, when the
// strict filter comes back empty.
var fallbackOrder = []string{
	entity.SlotPriceRange,
	entity.SlotAlcoholLevel,
	entity.SlotCountry,
	entity.SlotColor,
}

func stepByKey(key string) *Step {
	for i := range steps {
		if steps[i].Key == key {
			return &steps[i]
		}
	}
	return nil
}

func firstUnfilled(criteria map[string]string) *Step {
	for i := range steps {
		if criteria[steps[i].Key] == "" {
			return &steps[i]
		}
	}
	return nil
}
