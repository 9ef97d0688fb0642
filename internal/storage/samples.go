package storage

import "github.com/julianstephens/mealplan/internal/models"

func ing(item, qty string) models.Ingredient {
	return models.Ingredient{Item: item, Quantity: qty}
}

// SampleRecipes are written by 'mealplan init'.
var SampleRecipes = []models.RecipeDraft{
	{
		Name:         "Caesar Salad",
		Instructions: "Wash and chop romaine lettuce. Toss with Caesar dressing. Top with grated parmesan and croutons. Serve immediately.",
		Ingredients: []models.Ingredient{
			ing("romaine lettuce", "1 head"),
			ing("caesar dressing", "1/2 cup"),
			ing("parmesan cheese", "1/4 cup"),
			ing("croutons", "1 cup"),
		},
	},
	{
		Name:         "Spaghetti Bolognese",
		Instructions: "Cook spaghetti according to package directions. Brown ground beef in large pan. Add tomato sauce, herbs, and simmer 20 minutes. Serve sauce over pasta.",
		Ingredients: []models.Ingredient{
			ing("spaghetti", "400g"),
			ing("ground beef", "500g"),
			ing("tomato sauce", "2 cups"),
			ing("onion", "1"),
			ing("italian herbs", "2 tsp"),
		},
	},
	{
		Name:         "Oatmeal",
		Instructions: "Bring water to boil. Add oats and reduce heat. Simmer 5 minutes, stirring occasionally. Top with honey and berries.",
		Ingredients: []models.Ingredient{
			ing("oats", "1 cup"),
			ing("water", "2 cups"),
			ing("honey", "1 tbsp"),
			ing("mixed berries", "1/2 cup"),
		},
	},
	{
		Name:         "Turkey Sandwich",
		Instructions: "Toast bread if desired. Layer turkey, cheese, lettuce, and tomato. Spread mayo on bread. Assemble sandwich.",
		Ingredients: []models.Ingredient{
			ing("bread", "2 slices"),
			ing("turkey", "4 slices"),
			ing("cheese", "2 slices"),
			ing("lettuce", "2 leaves"),
			ing("tomato", "2 slices"),
			ing("mayonnaise", "1 tbsp"),
		},
	},
}
