package catalog

// Seed returns the static dish catalog. Prices are kept in the
// currency the dish is sold in; no conversion happens here.
func Seed() []Dish {
	return []Dish{
		{
			ID:              "1",
			Name:            "Mediterranean Grain Bowl",
			Description:     "Farro, chickpeas, roasted vegetables and tahini dressing",
			Ingredients:     []string{"farro", "chickpeas", "zucchini", "red pepper", "tahini", "lemon"},
			Price:           8.50,
			Currency:        "$",
			CarbonFootprint: 0.7,
			CarbonScore:     CarbonLow,
			Nutrition:       Nutrition{Calories: 520, Protein: 18, Carbs: 72, Fat: 16, Fiber: 12},
			EthnoTags:       []string{"Mediterranean"},
			IsVegetarian:    true,
			IsVegan:         true,
			IsGlutenFree:    false,
			Allergens:       []string{"sesame", "gluten"},
			Popularity:      9,
		},
		{
			ID:              "2",
			Name:            "Masala Dosa",
			Description:     "Crisp fermented rice crepe with spiced potato filling and sambar",
			Ingredients:     []string{"rice", "urad dal", "potato", "mustard seeds", "curry leaves"},
			Price:           120,
			Currency:        "₹",
			CarbonFootprint: 0.5,
			CarbonScore:     CarbonLow,
			Nutrition:       Nutrition{Calories: 440, Protein: 10, Carbs: 68, Fat: 14, Fiber: 6},
			EthnoTags:       []string{"Indian", "South Indian"},
			IsVegetarian:    true,
			IsVegan:         true,
			IsGlutenFree:    true,
			Allergens:       nil,
			Popularity:      10,
		},
		{
			ID:              "3",
			Name:            "Paneer Tikka Wrap",
			Description:     "Char-grilled paneer with mint chutney in a whole wheat wrap",
			Ingredients:     []string{"paneer", "yogurt", "whole wheat flour", "mint", "onion"},
			Price:           150,
			Currency:        "₹",
			CarbonFootprint: 1.8,
			CarbonScore:     CarbonMedium,
			Nutrition:       Nutrition{Calories: 580, Protein: 24, Carbs: 54, Fat: 28, Fiber: 7},
			EthnoTags:       []string{"Indian", "North Indian"},
			IsVegetarian:    true,
			IsVegan:         false,
			IsGlutenFree:    false,
			Allergens:       []string{"dairy", "gluten"},
			Popularity:      8,
		},
		{
			ID:              "4",
			Name:            "Grass-Fed Beef Burger",
			Description:     "Quarter-pound beef patty with cheddar on a brioche bun",
			Ingredients:     []string{"beef", "cheddar", "brioche bun", "lettuce", "tomato"},
			Price:           11.00,
			Currency:        "$",
			CarbonFootprint: 5.8,
			CarbonScore:     CarbonHigh,
			Nutrition:       Nutrition{Calories: 780, Protein: 42, Carbs: 48, Fat: 44, Fiber: 3},
			EthnoTags:       []string{"American"},
			IsVegetarian:    false,
			IsVegan:         false,
			IsGlutenFree:    false,
			Allergens:       []string{"dairy", "gluten"},
			Popularity:      8,
		},
		{
			ID:              "5",
			Name:            "Vegetable Biryani",
			Description:     "Fragrant basmati rice layered with seasonal vegetables and saffron",
			Ingredients:     []string{"basmati rice", "carrot", "beans", "peas", "saffron", "ghee"},
			Price:           180,
			Currency:        "₹",
			CarbonFootprint: 1.2,
			CarbonScore:     CarbonMedium,
			Nutrition:       Nutrition{Calories: 620, Protein: 14, Carbs: 92, Fat: 20, Fiber: 8},
			EthnoTags:       []string{"Indian", "South Asian"},
			IsVegetarian:    true,
			IsVegan:         false,
			IsGlutenFree:    true,
			Allergens:       []string{"dairy"},
			Popularity:      9,
		},
		{
			ID:              "6",
			Name:            "Teriyaki Salmon Bowl",
			Description:     "Glazed salmon over sushi rice with pickled cucumber",
			Ingredients:     []string{"salmon", "sushi rice", "soy sauce", "cucumber", "sesame"},
			Price:           13.50,
			Currency:        "$",
			CarbonFootprint: 2.6,
			CarbonScore:     CarbonMedium,
			Nutrition:       Nutrition{Calories: 640, Protein: 36, Carbs: 70, Fat: 22, Fiber: 4},
			EthnoTags:       []string{"Japanese"},
			IsVegetarian:    false,
			IsVegan:         false,
			IsGlutenFree:    false,
			Allergens:       []string{"fish", "soy", "sesame"},
			Popularity:      7,
		},
		{
			ID:              "7",
			Name:            "Chana Masala with Rice",
			Description:     "Chickpeas simmered in tomato and onion gravy, served with steamed rice",
			Ingredients:     []string{"chickpeas", "tomato", "onion", "rice", "garam masala"},
			Price:           110,
			Currency:        "₹",
			CarbonFootprint: 0.8,
			CarbonScore:     CarbonLow,
			Nutrition:       Nutrition{Calories: 510, Protein: 16, Carbs: 84, Fat: 10, Fiber: 14},
			EthnoTags:       []string{"Indian", "North Indian"},
			IsVegetarian:    true,
			IsVegan:         true,
			IsGlutenFree:    true,
			Allergens:       nil,
			Popularity:      7,
		},
		{
			ID:              "8",
			Name:            "Caesar Salad with Chicken",
			Description:     "Romaine, grilled chicken, parmesan and garlic croutons",
			Ingredients:     []string{"romaine", "chicken", "parmesan", "croutons", "anchovy dressing"},
			Price:           9.75,
			Currency:        "$",
			CarbonFootprint: 2.1,
			CarbonScore:     CarbonMedium,
			Nutrition:       Nutrition{Calories: 480, Protein: 34, Carbs: 22, Fat: 28, Fiber: 4},
			EthnoTags:       []string{"American"},
			IsVegetarian:    false,
			IsVegan:         false,
			IsGlutenFree:    false,
			Allergens:       []string{"dairy", "gluten", "fish", "egg"},
			Popularity:      6,
		},
		{
			ID:              "9",
			Name:            "Idli Sambar",
			Description:     "Steamed rice cakes with lentil stew and coconut chutney",
			Ingredients:     []string{"rice", "urad dal", "toor dal", "coconut", "tamarind"},
			Price:           80,
			Currency:        "₹",
			CarbonFootprint: 0.4,
			CarbonScore:     CarbonLow,
			Nutrition:       Nutrition{Calories: 350, Protein: 12, Carbs: 62, Fat: 6, Fiber: 8},
			EthnoTags:       []string{"Indian", "South Indian"},
			IsVegetarian:    true,
			IsVegan:         true,
			IsGlutenFree:    true,
			Allergens:       nil,
			Popularity:      8,
		},
		{
			ID:              "10",
			Name:            "Margherita Flatbread",
			Description:     "Stone-baked flatbread with tomato, mozzarella and basil",
			Ingredients:     []string{"flour", "tomato", "mozzarella", "basil", "olive oil"},
			Price:           7.25,
			Currency:        "$",
			CarbonFootprint: 1.6,
			CarbonScore:     CarbonMedium,
			Nutrition:       Nutrition{Calories: 560, Protein: 22, Carbs: 66, Fat: 24, Fiber: 4},
			EthnoTags:       []string{"Italian"},
			IsVegetarian:    true,
			IsVegan:         false,
			IsGlutenFree:    false,
			Allergens:       []string{"dairy", "gluten"},
			Popularity:      9,
		},
		{
			ID:              "11",
			Name:            "Lamb Rogan Josh",
			Description:     "Slow-cooked Kashmiri lamb curry with steamed basmati rice",
			Ingredients:     []string{"lamb", "yogurt", "kashmiri chilli", "basmati rice", "fennel"},
			Price:           260,
			Currency:        "₹",
			CarbonFootprint: 4.9,
			CarbonScore:     CarbonHigh,
			Nutrition:       Nutrition{Calories: 720, Protein: 38, Carbs: 58, Fat: 36, Fiber: 4},
			EthnoTags:       []string{"Indian", "North Indian"},
			IsVegetarian:    false,
			IsVegan:         false,
			IsGlutenFree:    true,
			Allergens:       []string{"dairy"},
			Popularity:      7,
		},
		{
			ID:              "12",
			Name:            "Seasonal Fruit Parfait",
			Description:     "Layered campus-farm fruit with granola and yogurt",
			Ingredients:     []string{"yogurt", "granola", "strawberry", "banana", "honey"},
			Price:           4.50,
			Currency:        "$",
			CarbonFootprint: 0.6,
			CarbonScore:     CarbonLow,
			Nutrition:       Nutrition{Calories: 320, Protein: 11, Carbs: 52, Fat: 9, Fiber: 5},
			EthnoTags:       []string{"American"},
			IsVegetarian:    true,
			IsVegan:         false,
			IsGlutenFree:    false,
			Allergens:       []string{"dairy", "gluten", "tree nuts"},
			Popularity:      6,
		},
	}
}
