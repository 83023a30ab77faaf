package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fintrack/internal/models"
)

// defaultCategory is a seeded category with its limit in each seeded period.
// A zero limit means the category is not budgeted in that period.
type defaultCategory struct {
	Name               string
	Icon               string
	IsEssential        bool
	DoubleHousingLimit int64
	NewHomeLimit       int64
}

var defaultCategories = []defaultCategory{
	{"Mortgage", "home", true, 1746, 3750},
	{"Rent", "apartment", true, 2340, 0},
	{"Groceries", "shopping_cart", true, 400, 400},
	{"Transport", "directions_car", true, 350, 350},
	{"Utilities", "power", true, 320, 320},
	{"Repayment", "payment", true, 500, 500},
	{"Food & Drinks", "restaurant", false, 200, 300},
	{"Entertainment", "movie", false, 150, 200},
	{"Health & Fitness", "fitness_center", false, 112, 112},
	{"Home", "home_repair_service", false, 200, 250},
	{"Savings", "savings", false, 300, 400},
	{"Shopping", "shopping_bag", false, 100, 200},
	{"Miscellaneous", "category", false, 150, 200},
}

func (c defaultCategory) limitFor(periodType models.PeriodType) decimal.Decimal {
	if periodType == models.PeriodTypeDoubleHousing {
		return decimal.NewFromInt(c.DoubleHousingLimit)
	}
	return decimal.NewFromInt(c.NewHomeLimit)
}

var (
	doubleHousingEnd = time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	newHomeStart     = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
)

// defaultPeriods returns the two seeded periods with their active flags
// derived from today.
func defaultPeriods(today time.Time) []models.FinancialPeriod {
	return []models.FinancialPeriod{
		{
			Name:        "Double Housing Period",
			Type:        models.PeriodTypeDoubleHousing,
			StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     doubleHousingEnd,
			IsActive:    !today.After(doubleHousingEnd),
			Description: "Paying both mortgage and rent - tighter budget but manageable!",
		},
		{
			Name:        "New Home Period",
			Type:        models.PeriodTypeNewHome,
			StartDate:   newHomeStart,
			EndDate:     time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
			IsActive:    !today.Before(newHomeStart),
			Description: "New home ready! Higher mortgage but no more rent - more savings potential!",
		},
	}
}

func below(v decimal.Decimal, bound int64) bool {
	return v.LessThan(decimal.NewFromInt(bound))
}

func atLeast(v decimal.Decimal, bound int64) bool {
	return v.GreaterThanOrEqual(decimal.NewFromInt(bound))
}

func categoryStatus(pct decimal.Decimal) (string, string) {
	switch {
	case below(pct, 50):
		return "Great", "green"
	case below(pct, 75):
		return "Good", "blue"
	case below(pct, 90):
		return "Caution", "yellow"
	default:
		return "Watch", "orange"
	}
}

func alertLevel(pct decimal.Decimal) models.AlertType {
	switch {
	case below(pct, 50):
		return models.AlertTypeNone
	case below(pct, 75):
		return models.AlertTypeInfo
	case below(pct, 90):
		return models.AlertTypeWarning
	case below(pct, 100):
		return models.AlertTypeCritical
	default:
		return models.AlertTypeExceeded
	}
}

func spendingCheckMessage(category string, pct decimal.Decimal, essential bool) string {
	p := pct.StringFixed(0)
	switch {
	case below(pct, 50):
		return fmt.Sprintf("You're doing great with %s! Still plenty of room in your budget.", category)
	case below(pct, 75):
		return fmt.Sprintf("You're on track with %s spending. You've used %s%% of your budget.", category, p)
	case below(pct, 90):
		return fmt.Sprintf("Heads up! You're at %s%% of your %s budget. Still manageable!", p, category)
	case below(pct, 100):
		return fmt.Sprintf("You're approaching your %s limit at %s%%. Consider if this expense is necessary.", category, p)
	case essential:
		return fmt.Sprintf("This would push essential spending for %s above the plan. Is there a way to soften this expense?", category)
	default:
		return fmt.Sprintf("This would put you over your %s budget. You've got this - maybe save this for next month?", category)
	}
}

func encouragementMessage(pct decimal.Decimal) string {
	switch {
	case below(pct, 50):
		return "You're crushing your budget goals!"
	case below(pct, 75):
		return "Keep up the great work! You're staying on track!"
	case below(pct, 90):
		return "You're still doing well - just keeping an eye on things!"
	default:
		return "Every dollar counts towards your financial goals!"
	}
}

func savingsGoalMessage(progress decimal.Decimal, goal string) string {
	switch {
	case atLeast(progress, 100):
		return fmt.Sprintf("Amazing! You've exceeded your %s goal!", goal)
	case atLeast(progress, 90):
		return fmt.Sprintf("So close! You're almost at your %s target!", goal)
	case atLeast(progress, 75):
		return fmt.Sprintf("Great progress on %s - you're doing awesome!", goal)
	case atLeast(progress, 50):
		return fmt.Sprintf("Good work on %s - keep it up!", goal)
	default:
		return fmt.Sprintf("Every dollar towards %s is progress!", goal)
	}
}

func motivationalMessage(rate decimal.Decimal, periodType models.PeriodType) string {
	if periodType == models.PeriodTypeDoubleHousing {
		switch {
		case atLeast(rate, 22):
			return "Incredible! You're saving over 22% even with double housing costs!"
		case atLeast(rate, 20):
			return "Amazing! 20%+ savings rate during double housing period is fantastic!"
		case atLeast(rate, 15):
			return "Great job! You're building wealth even during this tight period!"
		case atLeast(rate, 10):
			return "Good progress! Every dollar saved now makes the move even better!"
		default:
			return "The new home is coming - your financial freedom is just around the corner!"
		}
	}
	switch {
	case atLeast(rate, 30):
		return "Exceptional! You're a savings superstar with 30%+ savings rate!"
	case atLeast(rate, 24):
		return "Perfect! You've hit your 24% savings target - you're building serious wealth!"
	case atLeast(rate, 20):
		return "Excellent! 20%+ savings rate means you're on track for financial independence!"
	case atLeast(rate, 15):
		return "Good work! You're building a solid financial foundation!"
	default:
		return "Every month gets you closer to your financial goals!"
	}
}

func healthGrade(rate decimal.Decimal) string {
	switch {
	case atLeast(rate, 25):
		return "Excellent"
	case atLeast(rate, 20):
		return "Good"
	case atLeast(rate, 15):
		return "Fair"
	default:
		return "Improving"
	}
}

// healthScore is the savings rate scaled by four and clamped to [0, 100].
func healthScore(rate decimal.Decimal) decimal.Decimal {
	score := rate.Mul(decimal.NewFromInt(4))
	if score.IsNegative() {
		return decimal.Zero
	}
	if score.GreaterThan(hundred) {
		return hundred
	}
	return score.Round(2)
}

func healthAchievements(rate decimal.Decimal) []string {
	tiers := []struct {
		min   int64
		label string
	}{
		{30, "Savings Superstar (30%+)"},
		{25, "Excellent Saver (25%+)"},
		{20, "Strong Saver (20%+)"},
		{15, "Good Financial Health (15%+)"},
		{10, "Building Wealth (10%+)"},
	}
	achievements := []string{}
	for _, tier := range tiers {
		if atLeast(rate, tier.min) {
			achievements = append(achievements, tier.label)
		}
	}
	return achievements
}

func healthRecommendations(rate decimal.Decimal) []string {
	switch {
	case below(rate, 15):
		return []string{
			"Focus on increasing your savings rate to 15%+",
			"Look for opportunities to reduce non-essential spending",
		}
	case below(rate, 20):
		return []string{
			"Great progress! Aim for 20% to build wealth faster",
			"Consider automating your savings",
		}
	case below(rate, 25):
		return []string{
			"Excellent work! You're in the top tier of savers",
			"Consider increasing investment allocation",
		}
	default:
		return []string{
			"Outstanding! You're achieving financial independence",
			"Consider diversifying your investment strategy",
		}
	}
}

func healthMessage(grade string, rate decimal.Decimal) string {
	r := rate.StringFixed(1)
	switch grade {
	case "Excellent":
		return fmt.Sprintf("Outstanding financial health! Your %s%% savings rate is building serious wealth.", r)
	case "Good":
		return fmt.Sprintf("Strong financial position! Your %s%% savings rate is impressive.", r)
	case "Fair":
		return fmt.Sprintf("Good progress! Your %s%% savings rate shows you're building wealth.", r)
	default:
		return "You're on the right track! Every step towards financial health counts."
	}
}

func celebrationMessage(rate decimal.Decimal) string {
	switch {
	case atLeast(rate, 30):
		return "INCREDIBLE! You're saving 30%+ - You're a financial rockstar!"
	case atLeast(rate, 24):
		return "PERFECT! You've hit your 24% target - Building serious wealth!"
	case atLeast(rate, 20):
		return "EXCELLENT! 20%+ savings rate - You're crushing your goals!"
	case atLeast(rate, 15):
		return "GREAT! Solid progress - Keep building that wealth!"
	default:
		return "GROWING! Every dollar saved is progress towards financial freedom!"
	}
}

func celebrationBadges(rate decimal.Decimal) []string {
	badges := []string{}
	if atLeast(rate, 20) {
		badges = append(badges, "Strong Saver Badge")
	}
	if atLeast(rate, 24) {
		badges = append(badges, "Target Achieved Badge")
	}
	if atLeast(rate, 30) {
		badges = append(badges, "Savings Superstar Badge")
	}
	return badges
}

const celebrationEncouragement = "Your future self will thank you for every dollar saved today!"
