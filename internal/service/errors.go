package service

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	ErrInvalidBodyGoal       = errors.New("invalid body goal")
	ErrCalorieTargetTooLow   = errors.New("daily calorie target should be at least 1200 calories for health safety")
	ErrCalorieTargetTooHigh  = errors.New("daily calorie target seems unusually high, please verify")
	ErrCalorieTargetRequired = errors.New("daily calorie target is required when not using calculated TDEE")
	ErrNoUserMetrics         = errors.New("no user metrics found, complete your profile or provide a calorie target")
	ErrEmptyCatalogue        = errors.New("no foods available in the catalogue")

	ErrFoodNotFound = errors.New("food not found")
	ErrPlanExists   = errors.New("user already has a meal plan")
	ErrPlanNotFound = errors.New("meal plan not found")
)
