package recommender

import (
	"strings"
	"testing"

	"github.com/Raeus1901/wine-bot/internal/domain/entity"
)

func testCatalog() []entity.Wine {
	return []entity.Wine{
		{
			Winery: "Juan Gil", Name: "Blue Label", Vintage: "2022",
			Country: "Spain", Color: "Red", ABV: 14.5, PriceValue: 37, Price: "37",
		},
		{
			Winery: "Chateau de Malle", Name: "M de Malle", Vintage: "2015",
			Country: "France", Color: "White", ABV: 12.5, PriceValue: 25, Price: "25",
		},
		{
			Winery: "La Giaretta", Name: "Amarone", Vintage: "2020",
			Country: "Italy", Color: "Red", ABV: 15.0, PriceValue: 45, Price: "45",
		},
		{
			Winery: "Fabio Cordella", Name: "Oscar", Vintage: "2020",
			Country: "Italy", Color: "Rosé", ABV: 11.5, PriceValue: 15, Price: "15",
		},
	}
}

func TestInterpretStrength(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"something strong please", "14-15%"},
		{"a heavy red", "14-15%"},
		{"light and fresh", "11-12%"},
		{"low alcohol", "11-12%"},
		{"medium body", "12-13%"},
		{"less than 12%", "11-12%"},
		{"less than 13%", "12-13%"},
		{"less than 14%", "13-14%"},
		{"less than 15%", "14-15%"},
		{"no preference", ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := interpretStrength(tt.text); got != tt.want {
				t.Errorf("interpretStrength(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestHandleMessageAsksFirstQuestion(t *testing.T) {
	e := NewEngine(testCatalog())
	sess := entity.NewSession("u1")

	reply := e.HandleMessage(sess, "hello")

	if !strings.HasPrefix(reply.Message, "Hello! Let's start with your preference.") {
		t.Errorf("unexpected greeting: %q", reply.Message)
	}
	if len(reply.Options) != 4 || reply.Options[0] != "Red" {
		t.Errorf("expected color options, got %v", reply.Options)
	}
	if sess.PendingSlot != entity.SlotColor {
		t.Errorf("pending slot = %q, want %q", sess.PendingSlot, entity.SlotColor)
	}
}

func TestHandleMessageFreeTextFillsSlots(t *testing.T) {
	e := NewEngine(testCatalog())
	sess := entity.NewSession("u1")

	reply := e.HandleMessage(sess, "a light white from france under 30")

	if sess.Criteria[entity.SlotColor] != "White" {
		t.Errorf("color = %q", sess.Criteria[entity.SlotColor])
	}
	if sess.Criteria[entity.SlotAlcoholLevel] != "11-12%" {
		t.Errorf("abv = %q", sess.Criteria[entity.SlotAlcoholLevel])
	}
	if sess.Criteria[entity.SlotCountry] != "France" {
		t.Errorf("country = %q", sess.Criteria[entity.SlotCountry])
	}
	if sess.Criteria[entity.SlotPriceRange] != "$20-30" {
		t.Errorf("price = %q", sess.Criteria[entity.SlotPriceRange])
	}
	// Three slots known, one unfilled question remains at most; the reply
	// must either ask it or recommend, never re-greet.
	if strings.HasPrefix(reply.Message, "Hello!") {
		t.Errorf("re-greeted after criteria were parsed: %q", reply.Message)
	}
}

func TestHandleMessagePendingSlotValidation(t *testing.T) {
	e := NewEngine(testCatalog())
	sess := entity.NewSession("u1")
	sess.PendingSlot = entity.SlotColor

	reply := e.HandleMessage(sess, "purple")

	if !strings.Contains(reply.Message, "choose one of") {
		t.Errorf("expected re-ask, got %q", reply.Message)
	}
	if len(reply.Options) != 4 {
		t.Errorf("expected options re-offered, got %v", reply.Options)
	}
	if sess.Criteria[entity.SlotColor] != "" {
		t.Errorf("invalid answer must not fill the slot")
	}

	// Numeric selection picks by position.
	sess.PendingSlot = entity.SlotColor
	e.HandleMessage(sess, "2")
	if sess.Criteria[entity.SlotColor] != "White" {
		t.Errorf("numeric choice = %q, want White", sess.Criteria[entity.SlotColor])
	}
}

func TestHandleMessageRecommendsWhenComplete(t *testing.T) {
	e := NewEngine(testCatalog())
	sess := entity.NewSession("u1")
	sess.Criteria = map[string]string{
		entity.SlotColor:        "Red",
		entity.SlotAlcoholLevel: "14-15%",
		entity.SlotCountry:      "Spain",
		entity.SlotPriceRange:   "$30-40",
	}

	reply := e.HandleMessage(sess, "go")

	if !strings.Contains(reply.Message, "Juan Gil") {
		t.Errorf("expected Juan Gil recommendation, got %q", reply.Message)
	}
	if len(reply.Options) != 0 {
		t.Errorf("recommendation must clear options, got %v", reply.Options)
	}
}

func TestHandleMessageNoMatchListsCriteria(t *testing.T) {
	e := NewEngine(nil)
	sess := entity.NewSession("u1")
	sess.Criteria = map[string]string{
		entity.SlotColor:        "Red",
		entity.SlotAlcoholLevel: "11-12%",
		entity.SlotCountry:      "France",
		entity.SlotPriceRange:   "$40-50",
	}

	reply := e.HandleMessage(sess, "anything")

	if !strings.Contains(reply.Message, "No wines matched") {
		t.Errorf("expected no-match message, got %q", reply.Message)
	}
	if !strings.Contains(reply.Message, "Color=Red") {
		t.Errorf("no-match message must list criteria, got %q", reply.Message)
	}
}

func TestFilterFallbackRelaxesPriceFirst(t *testing.T) {
	catalog := testCatalog()
	criteria := map[string]string{
		entity.SlotColor:        "Red",
		entity.SlotAlcoholLevel: "14-15%",
		entity.SlotCountry:      "Spain",
		// Juan Gil is 37; force the strict pass to fail on price.
		entity.SlotPriceRange: "$10-20",
	}

	matches := filterWithFallback(catalog, criteria)

	if len(matches) != 1 || matches[0].Winery != "Juan Gil" {
		t.Fatalf("expected Juan Gil after relaxing price, got %v", matches)
	}
}

func TestStrictFilterOthersCountry(t *testing.T) {
	catalog := append(testCatalog(), entity.Wine{
		Winery: "Quinta", Name: "Douro", Country: "Portugal", Color: "Red",
		ABV: 13.5, PriceValue: 18, Price: "18",
	})

	matches := strictFilter(catalog, map[string]string{entity.SlotCountry: "Others"})

	if len(matches) != 1 || matches[0].Country != "Portugal" {
		t.Fatalf("Others must exclude France/Spain/Italy, got %v", matches)
	}
}
