package waste

// Seed returns the demo waste log used when no database is
// configured, newest first.
func Seed() []Entry {
	return []Entry{
		{ID: "8", Date: "2025-04-20", Source: SourceCafeteria, FoodType: "Mixed", Quantity: 4.2, DisposalMethod: DisposalCompost, MealPeriod: MealLunch, Notes: "Plate scrapings"},
		{ID: "7", Date: "2025-04-20", Source: SourceResidential, FoodType: "Bread", Quantity: 1.8, DisposalMethod: DisposalDonation, MealPeriod: MealBreakfast},
		{ID: "6", Date: "2025-04-19", Source: SourceEvent, FoodType: "Prepared Food", Quantity: 7.5, DisposalMethod: DisposalDonation, MealPeriod: MealSpecialEvent, Notes: "Conference catering surplus"},
		{ID: "5", Date: "2025-04-19", Source: SourceCafeteria, FoodType: "Vegetables", Quantity: 3.1, DisposalMethod: DisposalCompost, MealPeriod: MealDinner},
		{ID: "4", Date: "2025-04-18", Source: SourceCafeteria, FoodType: "Rice", Quantity: 2.4, DisposalMethod: DisposalCompost, MealPeriod: MealLunch, Notes: "Overproduction"},
		{ID: "3", Date: "2025-04-18", Source: SourceResidential, FoodType: "Mixed", Quantity: 1.2, DisposalMethod: DisposalLandfill, MealPeriod: MealDinner},
		{ID: "2", Date: "2025-04-17", Source: SourceCafeteria, FoodType: "Vegetables", Quantity: 2.9, DisposalMethod: DisposalCompost, MealPeriod: MealLunch},
		{ID: "1", Date: "2025-04-16", Source: SourceEvent, FoodType: "Bread", Quantity: 3.6, DisposalMethod: DisposalLandfill, MealPeriod: MealSpecialEvent, Notes: "Stale rolls from orientation"},
	}
}
