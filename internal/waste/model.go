package waste

type Source string

const (
	SourceCafeteria   Source = "Cafeteria"
	SourceEvent       Source = "Event"
	SourceResidential Source = "Residential"
)

type DisposalMethod string

const (
	DisposalCompost  DisposalMethod = "Compost"
	DisposalLandfill DisposalMethod = "Landfill"
	DisposalDonation DisposalMethod = "Donation"
)

type MealPeriod string

const (
	MealBreakfast    MealPeriod = "Breakfast"
	MealLunch        MealPeriod = "Lunch"
	MealDinner       MealPeriod = "Dinner"
	MealSpecialEvent MealPeriod = "Special Event"
)

// Entry is one append-only waste log record. Entries are never
// mutated after creation; new entries go to the front of the log.
type Entry struct {
	ID             string         `json:"id"`
	Date           string         `json:"date"` // ISO date, YYYY-MM-DD
	Source         Source         `json:"source"`
	FoodType       string         `json:"food_type"`
	Quantity       float64        `json:"quantity"` // kg
	DisposalMethod DisposalMethod `json:"disposal_method"`
	MealPeriod     MealPeriod     `json:"meal_period"`
	Notes          string         `json:"notes,omitempty"`
}

func validSource(s Source) bool {
	switch s {
	case SourceCafeteria, SourceEvent, SourceResidential:
		return true
	}
	return false
}

func validDisposal(d DisposalMethod) bool {
	switch d {
	case DisposalCompost, DisposalLandfill, DisposalDonation:
		return true
	}
	return false
}

func validMealPeriod(m MealPeriod) bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSpecialEvent:
		return true
	}
	return false
}
