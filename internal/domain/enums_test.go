package domain

import (
	"math"
	"testing"
)

func TestParseRelationship(t *testing.T) {
	tests := []struct {
		input string
		want  Relationship
	}{
		{"friend", RelationshipFriend},
		{"Friend", RelationshipFriend},
		{"  partner ", RelationshipPartner},
		{"spouse", RelationshipPartner},
		{"partner/spouse", RelationshipPartner},
		{"parent", RelationshipParent},
		{"child", RelationshipChild},
		{"sibling", RelationshipSibling},
		{"coworker", RelationshipCoworker},
		{"other", RelationshipOther},
		{"grandma", DefaultRelationship},
		{"", DefaultRelationship},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseRelationship(tt.input); got != tt.want {
				t.Errorf("ParseRelationship(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInterest(t *testing.T) {
	tests := []struct {
		input string
		want  Interest
	}{
		{"photography", InterestPhotography},
		{"tech", InterestTechnology},
		{"Technology", InterestTechnology},
		{"GAMING", InterestGaming},
		{"knitting", DefaultInterest},
		{"", DefaultInterest},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseInterest(tt.input); got != tt.want {
				t.Errorf("ParseInterest(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBudgetRange(t *testing.T) {
	tests := []struct {
		input string
		want  BudgetRange
	}{
		{"Under $25", BudgetUnder25},
		{"$25 - $50", Budget25To50},
		{"$50 - $100", Budget50To100},
		{"Over $100", BudgetOver100},
		{"cheap", DefaultBudgetRange},
		{"", DefaultBudgetRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseBudgetRange(tt.input); got != tt.want {
				t.Errorf("ParseBudgetRange(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOccasion(t *testing.T) {
	tests := []struct {
		input string
		want  Occasion
	}{
		{"birthday", OccasionBirthday},
		{"Valentine's Day", OccasionValentines},
		{"valentines day", OccasionValentines},
		{"just because", OccasionJustBecause},
		{"housewarming", DefaultOccasion},
		{"", DefaultOccasion},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseOccasion(tt.input); got != tt.want {
				t.Errorf("ParseOccasion(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBudgetRangeBounds(t *testing.T) {
	t.Run("bounded ranges", func(t *testing.T) {
		tests := []struct {
			budget   BudgetRange
			min, max float64
		}{
			{BudgetUnder25, 0, 25},
			{Budget25To50, 25, 50},
			{Budget50To100, 50, 100},
		}
		for _, tt := range tests {
			min, max := tt.budget.Bounds()
			if min != tt.min || max != tt.max {
				t.Errorf("%s Bounds() = [%v, %v], want [%v, %v]", tt.budget, min, max, tt.min, tt.max)
			}
		}
	})

	t.Run("top range is unbounded above", func(t *testing.T) {
		min, max := BudgetOver100.Bounds()
		if min != 100 {
			t.Errorf("min = %v, want 100", min)
		}
		if !math.IsInf(max, 1) {
			t.Errorf("max = %v, want +Inf", max)
		}
	})
}

func TestUserPreferencesValidate(t *testing.T) {
	valid := func() *UserPreferences {
		return &UserPreferences{
			Age:          25,
			Relationship: RelationshipFriend,
			Interests:    []Interest{InterestTechnology},
			BudgetRange:  BudgetUnder25,
			Occasion:     OccasionBirthday,
		}
	}

	t.Run("accepts a valid profile", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("accepts empty interests", func(t *testing.T) {
		p := valid()
		p.Interests = nil
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("rejects nil preferences", func(t *testing.T) {
		var p *UserPreferences
		if err := p.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("rejects negative age", func(t *testing.T) {
		p := valid()
		p.Age = -1
		if err := p.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("rejects unknown relationship", func(t *testing.T) {
		p := valid()
		p.Relationship = Relationship("Grandma")
		if err := p.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("rejects unknown budget range", func(t *testing.T) {
		p := valid()
		p.BudgetRange = BudgetRange("free")
		if err := p.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("rejects unknown occasion", func(t *testing.T) {
		p := valid()
		p.Occasion = Occasion("Housewarming")
		if err := p.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})

	t.Run("rejects unknown interest member", func(t *testing.T) {
		p := valid()
		p.Interests = []Interest{Interest("Knitting")}
		if err := p.Validate(); err == nil {
			t.Error("Validate() = nil, want error")
		}
	})
}
