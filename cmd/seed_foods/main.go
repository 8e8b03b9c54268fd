package main

import (
	"context"
	"log"

	"github.com/platewise/backend/config"
	"github.com/platewise/backend/internal/database"
	"github.com/platewise/backend/internal/service"
	"github.com/platewise/backend/internal/types"
)

// starterFoods is a small catalogue covering every meal bucket, so a fresh
// install can generate a full week plan immediately.
var starterFoods = []types.CreateFoodRequest{
	{
		Name: "Millet porridge", MacroNutrient: "Carbohydrate", MealType: "breakfast",
		Calories: 75, ProteinG: 2.2, CarbsG: 15.0, FatG: 0.6, FiberG: 1.5,
		DietaryTags: []string{"vegetarian", "vegan"}, Allergens: []string{"gluten"},
	},
	{
		Name: "Boiled eggs", MacroNutrient: "Protein", MealType: "breakfast",
		Calories: 155, ProteinG: 13.0, CarbsG: 1.1, FatG: 11.0,
		DietaryTags: []string{"vegetarian"}, Allergens: []string{"egg"},
	},
	{
		Name: "Sweet potato", MacroNutrient: "Carbohydrate", MealType: "breakfast or snack",
		Calories: 86, CarbsG: 20.0, ProteinG: 1.6, FiberG: 3.0,
		DietaryTags: []string{"vegetarian", "vegan", "gluten-free"},
	},
	{
		Name: "Chapati", MacroNutrient: "Carbohydrate", MealType: "breakfast or snack",
		Calories: 300, CarbsG: 46.0, ProteinG: 8.0, FatG: 9.0,
		DietaryTags: []string{"vegetarian"}, Allergens: []string{"gluten"},
	},
	{
		Name: "Ugali", MacroNutrient: "Carbohydrate", MealType: "lunch or supper",
		Calories: 112, CarbsG: 24.0, ProteinG: 2.6, FiberG: 1.2,
		DietaryTags: []string{"vegetarian", "vegan", "gluten-free"},
	},
	{
		Name: "Steamed rice", MacroNutrient: "Carbohydrate", MealType: "lunch or supper",
		Calories: 130, CarbsG: 28.0, ProteinG: 2.7,
		DietaryTags: []string{"vegetarian", "vegan", "gluten-free"},
	},
	{
		Name: "Chicken stew", MacroNutrient: "Protein", MealType: "lunch or supper",
		Calories: 150, ProteinG: 17.0, FatG: 8.0, CarbsG: 3.0,
		DietaryTags: []string{"gluten-free"},
	},
	{
		Name: "Beef stew", MacroNutrient: "Protein", MealType: "lunch or supper",
		Calories: 180, ProteinG: 18.0, FatG: 10.0, CarbsG: 4.0,
		DietaryTags: []string{"gluten-free"},
	},
	{
		Name: "Fried tilapia", MacroNutrient: "Protein", MealType: "lunch or supper",
		Calories: 190, ProteinG: 22.0, FatG: 11.0,
		Allergens:   []string{"fish"},
		DietaryTags: []string{"gluten-free", "pescatarian"},
	},
	{
		Name: "Githeri", MacroNutrient: "Protein", MealType: "lunch or supper",
		Calories: 135, ProteinG: 7.0, CarbsG: 22.0, FiberG: 6.0,
		DietaryTags:           []string{"vegetarian", "vegan", "gluten-free"},
		SuitableForConditions: []string{"diabetes"},
	},
	{
		Name: "Lentil curry", MacroNutrient: "Protein", MealType: "lunch or supper",
		Calories: 120, ProteinG: 8.0, CarbsG: 18.0, FiberG: 7.0, FatG: 2.0,
		DietaryTags:           []string{"vegetarian", "vegan", "gluten-free"},
		SuitableForConditions: []string{"diabetes", "hypertension"},
	},
	{
		Name: "Sukuma wiki", MacroNutrient: "Fiber", MealType: "side dish",
		Calories: 50, FiberG: 3.5, ProteinG: 3.0, CarbsG: 7.0, FatG: 1.0,
		DietaryTags:           []string{"vegetarian", "vegan", "gluten-free"},
		SuitableForConditions: []string{"diabetes", "hypertension"},
	},
	{
		Name: "Steamed cabbage", MacroNutrient: "Fiber", MealType: "side dish",
		Calories: 25, FiberG: 2.5, ProteinG: 1.3, CarbsG: 6.0,
		DietaryTags:           []string{"vegetarian", "vegan", "gluten-free"},
		SuitableForConditions: []string{"diabetes", "hypertension"},
	},
	{
		Name: "Kachumbari", MacroNutrient: "Fiber", MealType: "side dish",
		Calories: 30, FiberG: 1.8, CarbsG: 6.5, ProteinG: 1.1,
		DietaryTags:           []string{"vegetarian", "vegan", "gluten-free"},
		SuitableForConditions: []string{"diabetes", "hypertension"},
	},
	{
		Name: "Banana", MacroNutrient: "Carbohydrate", MealType: "fruit",
		Calories: 89, CarbsG: 23.0, FiberG: 2.6, ProteinG: 1.1,
		DietaryTags: []string{"vegetarian", "vegan", "gluten-free"},
	},
	{
		Name: "Mango", MacroNutrient: "Carbohydrate", MealType: "fruit",
		Calories: 60, CarbsG: 15.0, FiberG: 1.6,
		DietaryTags: []string{"vegetarian", "vegan", "gluten-free"},
	},
	{
		Name: "Orange", MacroNutrient: "Carbohydrate", MealType: "fruit",
		Calories: 47, CarbsG: 12.0, FiberG: 2.4,
		DietaryTags:           []string{"vegetarian", "vegan", "gluten-free"},
		SuitableForConditions: []string{"diabetes"},
	},
	{
		Name: "Tea with milk", MacroNutrient: "Fat", MealType: "beverage",
		Calories: 40, FatG: 1.5, CarbsG: 5.0, ProteinG: 1.5,
		DietaryTags: []string{"vegetarian"}, Allergens: []string{"milk"},
	},
	{
		Name: "Fresh passion juice", MacroNutrient: "Carbohydrate", MealType: "beverage",
		Calories: 45, CarbsG: 11.0,
		DietaryTags: []string{"vegetarian", "vegan", "gluten-free"},
	},
	{
		Name: "Fermented porridge (uji)", MacroNutrient: "Carbohydrate", MealType: "beverage",
		Calories: 55, CarbsG: 11.5, ProteinG: 1.8, FiberG: 1.0,
		DietaryTags: []string{"vegetarian", "vegan"},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGormDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	foods := service.NewFoodService(db)
	ctx := context.Background()

	created := 0
	for i := range starterFoods {
		if _, err := foods.CreateFood(ctx, &starterFoods[i]); err != nil {
			log.Printf("Skipping %s: %v", starterFoods[i].Name, err)
			continue
		}
		created++
	}

	log.Printf("Seeded %d of %d foods", created, len(starterFoods))
}
