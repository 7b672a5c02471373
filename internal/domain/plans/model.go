package plans

type Plan struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `json:"name"`
	PriceINR  float64 `gorm:"column:price_inr" json:"price"`
	Duration  string  `gorm:"column:duration"` // "trial" | "monthly" | "yearly" | "lifetime"
	TrialDays int     `gorm:"column:trial_days"`
}

// Duration constants (single source of truth)
const (
	DurationTrial    = "trial"
	DurationMonthly  = "monthly"
	DurationYearly   = "yearly"
	DurationLifetime = "lifetime"
)

const DefaultTrialDays = 7
