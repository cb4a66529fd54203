package models

// RateEntry is one append-only rate change. From is a zero-padded "YYYY-MM"
// month, so lexicographic order matches chronological order.
type RateEntry struct {
	Rate float64 `bson:"rate" json:"rate"`
	From string  `bson:"from" json:"from"`
}

// SettingsDocID is the fixed identifier of the singleton settings document.
const SettingsDocID = "business"

// Settings is the singleton business document: farm identity plus one rate
// history per product category.
type Settings struct {
	ID        string      `bson:"_id" json:"-"`
	FarmName  string      `bson:"farmName" json:"farmName"`
	OwnerName string      `bson:"ownerName" json:"ownerName"`
	Phone1    string      `bson:"phone1" json:"phone1"`
	Phone2    string      `bson:"phone2" json:"phone2"`
	MilkRates []RateEntry `bson:"milkRates" json:"milkRates"`
	EggRates  []RateEntry `bson:"eggRates" json:"eggRates"`
	CurdRates []RateEntry `bson:"curdRates" json:"curdRates"`
	DungRates []RateEntry `bson:"dungRates" json:"dungRates"`
}

// DefaultSettings returns the fallback document used when the store has no
// settings yet.
func DefaultSettings() Settings {
	return Settings{
		ID:        SettingsDocID,
		FarmName:  "Ann's Dairy Farm",
		OwnerName: "Eldho Jacob",
	}
}

// RatesFor returns the rate history backing the given product. Extra milk is
// priced from the milk history; it has no list of its own.
func (s Settings) RatesFor(p Product) []RateEntry {
	switch p {
	case ProductExtraMilk:
		return s.MilkRates
	case ProductEgg:
		return s.EggRates
	case ProductCurd:
		return s.CurdRates
	case ProductChanakapodi:
		return s.DungRates
	}
	return nil
}

// AppendRate adds an entry to the history backing the given category key
// ("milkRates", "eggRates", "curdRates" or "dungRates").
func (s *Settings) AppendRate(category string, entry RateEntry) bool {
	switch category {
	case "milkRates":
		s.MilkRates = append(s.MilkRates, entry)
	case "eggRates":
		s.EggRates = append(s.EggRates, entry)
	case "curdRates":
		s.CurdRates = append(s.CurdRates, entry)
	case "dungRates":
		s.DungRates = append(s.DungRates, entry)
	default:
		return false
	}
	return true
}

// MergeSettings applies incoming fields over existing without dropping
// anything the caller left unset: identity fields overwrite only when
// non-empty, rate histories replace only when present. Mirrors the
// merge-write the store performs on save.
func MergeSettings(existing, incoming Settings) Settings {
	merged := existing
	merged.ID = SettingsDocID

	if incoming.FarmName != "" {
		merged.FarmName = incoming.FarmName
	}
	if incoming.OwnerName != "" {
		merged.OwnerName = incoming.OwnerName
	}
	if incoming.Phone1 != "" {
		merged.Phone1 = incoming.Phone1
	}
	if incoming.Phone2 != "" {
		merged.Phone2 = incoming.Phone2
	}

	if incoming.MilkRates != nil {
		merged.MilkRates = incoming.MilkRates
	}
	if incoming.EggRates != nil {
		merged.EggRates = incoming.EggRates
	}
	if incoming.CurdRates != nil {
		merged.CurdRates = incoming.CurdRates
	}
	if incoming.DungRates != nil {
		merged.DungRates = incoming.DungRates
	}

	return merged
}
