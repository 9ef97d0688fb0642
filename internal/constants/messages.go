package constants

// User-facing notifications. Each outcome produces exactly one of these.
const (
	MsgMealUpdated      = "Meal updated successfully"
	MsgMealUpdateFailed = "Failed to update meal. Please try again."
	MsgFillAllFields    = "Please fill in all fields"
	MsgNeedIngredient   = "Please add at least one ingredient in the format: item, quantity"
	MsgRecipeAdded      = "Recipe added successfully!"
	MsgRecipeAddFailed  = "Failed to add recipe. Please try again."
)
