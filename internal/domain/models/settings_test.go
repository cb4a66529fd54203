package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeSettingsPreservesUnsetCategories(t *testing.T) {
	existing := Settings{
		ID:        SettingsDocID,
		FarmName:  "Ann's Dairy Farm",
		OwnerName: "Eldho Jacob",
		MilkRates: []RateEntry{{Rate: 60, From: "2025-01"}},
		EggRates:  []RateEntry{{Rate: 6, From: "2025-01"}},
	}

	// Save carrying only an appended milk entry must not drop egg rates.
	incoming := Settings{
		MilkRates: []RateEntry{
			{Rate: 60, From: "2025-01"},
			{Rate: 70, From: "2025-06"},
		},
	}

	merged := MergeSettings(existing, incoming)

	assert.Equal(t, []RateEntry{{Rate: 60, From: "2025-01"}, {Rate: 70, From: "2025-06"}}, merged.MilkRates)
	assert.Equal(t, []RateEntry{{Rate: 6, From: "2025-01"}}, merged.EggRates)
	assert.Equal(t, "Ann's Dairy Farm", merged.FarmName)
	assert.Equal(t, "Eldho Jacob", merged.OwnerName)
}

func TestMergeSettingsOverwritesIdentityFields(t *testing.T) {
	existing := Settings{FarmName: "Old Name", Phone1: "111"}
	incoming := Settings{FarmName: "Ann's Dairy Farm", Phone2: "222"}

	merged := MergeSettings(existing, incoming)

	assert.Equal(t, "Ann's Dairy Farm", merged.FarmName)
	assert.Equal(t, "111", merged.Phone1)
	assert.Equal(t, "222", merged.Phone2)
	assert.Equal(t, SettingsDocID, merged.ID)
}

func TestAppendRate(t *testing.T) {
	var s Settings

	assert.True(t, s.AppendRate("curdRates", RateEntry{Rate: 40, From: "2025-06"}))
	assert.True(t, s.AppendRate("curdRates", RateEntry{Rate: 45, From: "2025-08"}))
	assert.False(t, s.AppendRate("butterRates", RateEntry{Rate: 1, From: "2025-08"}))

	assert.Equal(t, []RateEntry{{Rate: 40, From: "2025-06"}, {Rate: 45, From: "2025-08"}}, s.CurdRates)
}

func TestRatesFor(t *testing.T) {
	s := Settings{
		MilkRates: []RateEntry{{Rate: 70, From: "2025-01"}},
		DungRates: []RateEntry{{Rate: 300, From: "2025-01"}},
	}

	// Extra milk has no history of its own; it prices from milk.
	assert.Equal(t, s.MilkRates, s.RatesFor(ProductExtraMilk))
	assert.Equal(t, s.DungRates, s.RatesFor(ProductChanakapodi))
	assert.Nil(t, s.RatesFor(Product("Butter")))
}

func TestParseProduct(t *testing.T) {
	tests := []struct {
		in   string
		want Product
		ok   bool
	}{
		{"ExtraMilk", ProductExtraMilk, true},
		{"Extra Milk", ProductExtraMilk, true},
		{"Egg", ProductEgg, true},
		{"Curd", ProductCurd, true},
		{"Chanakapodi", ProductChanakapodi, true},
		{"extramilk", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseProduct(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
