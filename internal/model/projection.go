package model

// CostCategory is one expense class normalized to a one-year basis.
type CostCategory struct {
	Name         string  `json:"name"`
	AnnualAmount float64 `json:"annual_amount"`
	InflationPct float64 `json:"inflation_pct"`
}

// AggregateExpense summarizes all categories: the current total annual
// cost and the cost-weighted blended inflation rate. The blended rate
// is a reporting statistic only and is never used in compounding.
type AggregateExpense struct {
	TotalAnnualCost      float64 `json:"total_annual_cost"`
	WeightedInflationPct float64 `json:"weighted_inflation_pct"`
}

// ProjectionPoint is one simulated year.
type ProjectionPoint struct {
	YearOffset     int     `json:"year_offset"` // 0 = present
	Age            int     `json:"age"`
	Savings        float64 `json:"savings"`
	AnnualExpenses float64 `json:"annual_expenses"`
	FireNumber     float64 `json:"fire_number"`
	FireAchieved   bool    `json:"fire_achieved"`
}

// ProjectionResult is the engine's output: one point per year offset
// from 0 through the horizon, plus the first offset (if any) at which
// savings meets or exceeds the FIRE number.
type ProjectionResult struct {
	Points         []ProjectionPoint `json:"points"`
	FireYearOffset *int              `json:"fire_year_offset,omitempty"`
}

// FireAge returns the age at which FIRE is first achieved.
func (r ProjectionResult) FireAge() (int, bool) {
	if r.FireYearOffset == nil {
		return 0, false
	}
	return r.Points[*r.FireYearOffset].Age, true
}

// Outlook classifies the projection for the insights display.
type Outlook string

const (
	OutlookAchievedNow = Outlook("achieved_now") // savings already clear today's FIRE number
	OutlookEarly       = Outlook("early")        // achieved before the target retirement age
	OutlookOnTrack     = Outlook("on_track")     // achieved exactly at the horizon
	OutlookOffTrack    = Outlook("off_track")    // not achieved within the horizon
)

// KeyMetrics holds the headline numbers shown alongside the series.
type KeyMetrics struct {
	AnnualContribution   float64 `json:"annual_contribution"`
	RetirementExpenses   float64 `json:"retirement_expenses"`
	RetirementFireNumber float64 `json:"retirement_fire_number"`
	Outlook              Outlook `json:"outlook"`

	// YearsToSaveNoGrowth is the closed-form estimate of years needed at
	// the current contribution without compounding. Nil when nothing is
	// being saved, or when the target is already met.
	YearsToSaveNoGrowth *float64 `json:"years_to_save_no_growth,omitempty"`
}
