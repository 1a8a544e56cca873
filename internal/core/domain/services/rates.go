package services

// AircraftCategory buckets aircraft into the pricing classes the rate
// table is keyed by.
type AircraftCategory string

const (
	// CategoryLight covers light jets and turboprops.
	CategoryLight AircraftCategory = "light"

	// CategoryMidsize covers midsize and super-midsize jets.
	CategoryMidsize AircraftCategory = "midsize"

	// CategoryHeavy covers heavy and long-range jets.
	CategoryHeavy AircraftCategory = "heavy"
)

// Rate is the daily pricing entry for one position on one aircraft
// category.
type Rate struct {
	DailySalary  float64
	DailyPerDiem float64
}

// RateTable resolves a crew position and an aircraft registration to the
// applicable daily rate and per-diem amount. It is pure data: the fleet
// maps registrations to categories, the rates map position and category to
// a pricing entry.
type RateTable struct {
	fleet map[string]AircraftCategory
	rates map[string]map[AircraftCategory]Rate
}

// NewRateTable creates a rate table from a fleet roster and a rate grid.
func NewRateTable(
	fleet map[string]AircraftCategory,
	rates map[string]map[AircraftCategory]Rate,
) *RateTable {
	return &RateTable{
		fleet: fleet,
		rates: rates,
	}
}

// Resolve looks up the rate for a position on the aircraft identified by
// its registration. The second return value is false when either the
// registration or the position is unknown: callers must treat that as "not
// computable", never as a zero rate.
func (t *RateTable) Resolve(registration, position string) (Rate, bool) {
	category, ok := t.fleet[registration]
	if !ok {
		return Rate{}, false
	}

	byCategory, ok := t.rates[position]
	if !ok {
		return Rate{}, false
	}

	rate, ok := byCategory[category]
	return rate, ok
}

// DefaultRateTable returns the built-in pricing grid used when no
// externally managed table is configured.
func DefaultRateTable() *RateTable {
	return NewRateTable(
		map[string]AircraftCategory{
			"F-HJCB": CategoryHeavy,
			"F-HGLB": CategoryHeavy,
			"F-HSMJ": CategoryMidsize,
			"F-HHPM": CategoryMidsize,
			"F-HLJA": CategoryLight,
			"F-HLJB": CategoryLight,
		},
		map[string]map[AircraftCategory]Rate{
			"Captain": {
				CategoryLight:   {DailySalary: 550, DailyPerDiem: 90},
				CategoryMidsize: {DailySalary: 700, DailyPerDiem: 100},
				CategoryHeavy:   {DailySalary: 850, DailyPerDiem: 120},
			},
			"First Officer": {
				CategoryLight:   {DailySalary: 400, DailyPerDiem: 90},
				CategoryMidsize: {DailySalary: 500, DailyPerDiem: 100},
				CategoryHeavy:   {DailySalary: 600, DailyPerDiem: 120},
			},
			"Flight Attendant": {
				CategoryLight:   {DailySalary: 250, DailyPerDiem: 80},
				CategoryMidsize: {DailySalary: 300, DailyPerDiem: 90},
				CategoryHeavy:   {DailySalary: 350, DailyPerDiem: 100},
			},
		},
	)
}
