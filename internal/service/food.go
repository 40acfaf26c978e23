package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Krushna4142/FitOS-dashboard/internal"
)

var validate = validator.New()

// CatalogItem holds per-serving macros for a known food.
type CatalogItem struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}

var foodCatalog = []CatalogItem{
	{Name: "Apple", Calories: 95, Protein: 0.5, Carbs: 25, Fats: 0.3},
	{Name: "Banana", Calories: 105, Protein: 1.3, Carbs: 27, Fats: 0.4},
	{Name: "Chicken Breast (100g)", Calories: 165, Protein: 31, Carbs: 0, Fats: 3.6},
	{Name: "Brown Rice (1 cup)", Calories: 216, Protein: 5, Carbs: 45, Fats: 1.8},
	{Name: "Salmon (100g)", Calories: 208, Protein: 25, Carbs: 0, Fats: 12},
	{Name: "Broccoli (1 cup)", Calories: 25, Protein: 3, Carbs: 5, Fats: 0.3},
	{Name: "Greek Yogurt (1 cup)", Calories: 130, Protein: 23, Carbs: 9, Fats: 0.4},
	{Name: "Avocado", Calories: 234, Protein: 3, Carbs: 12, Fats: 21},
	{Name: "Oatmeal (1 cup)", Calories: 147, Protein: 5, Carbs: 25, Fats: 3},
	{Name: "Eggs (2 large)", Calories: 140, Protein: 12, Carbs: 1, Fats: 10},
}

// SearchCatalog returns catalog items whose name contains the query,
// case-insensitive. An empty query returns the whole catalog.
func SearchCatalog(query string) []CatalogItem {
	if query == "" {
		return foodCatalog
	}
	q := strings.ToLower(query)
	var matches []CatalogItem
	for _, item := range foodCatalog {
		if strings.Contains(strings.ToLower(item.Name), q) {
			matches = append(matches, item)
		}
	}
	return matches
}

func lookupCatalog(name string) (CatalogItem, bool) {
	for _, item := range foodCatalog {
		if strings.EqualFold(item.Name, name) {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// FoodLogRequest logs a food item. Macros may be supplied per serving for
// foods outside the catalog; otherwise the catalog entry is used.
type FoodLogRequest struct {
	Name     string   `json:"name" validate:"required"`
	Quantity float64  `json:"quantity" validate:"required,gt=0"`
	MealType string   `json:"meal_type" validate:"required,oneof=breakfast lunch dinner snack"`
	Calories *float64 `json:"calories,omitempty" validate:"omitempty,gte=0"`
	Protein  *float64 `json:"protein,omitempty" validate:"omitempty,gte=0"`
	Carbs    *float64 `json:"carbs,omitempty" validate:"omitempty,gte=0"`
	Fats     *float64 `json:"fats,omitempty" validate:"omitempty,gte=0"`
}

func ValidateFoodLogRequest(req *FoodLogRequest) error {
	return validate.Struct(req)
}

var ErrUnknownFood = errors.New("food not in catalog and no macros supplied")
var ErrEntryNotFound = errors.New("food log entry not found")

// AddFood appends an entry to the user's log. Stored macros are per-serving
// values multiplied by quantity.
func AddFood(ctx context.Context, journal *Journal, userID string, req *FoodLogRequest, now time.Time) (*internal.FoodLogEntry, error) {
	perServing := CatalogItem{Name: req.Name}
	if req.Calories != nil {
		perServing.Calories = *req.Calories
		if req.Protein != nil {
			perServing.Protein = *req.Protein
		}
		if req.Carbs != nil {
			perServing.Carbs = *req.Carbs
		}
		if req.Fats != nil {
			perServing.Fats = *req.Fats
		}
	} else {
		item, ok := lookupCatalog(req.Name)
		if !ok {
			return nil, ErrUnknownFood
		}
		perServing = item
	}

	entry := internal.FoodLogEntry{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Calories:  perServing.Calories * req.Quantity,
		Protein:   perServing.Protein * req.Quantity,
		Carbs:     perServing.Carbs * req.Quantity,
		Fats:      perServing.Fats * req.Quantity,
		Quantity:  req.Quantity,
		MealType:  internal.MealType(req.MealType),
		Timestamp: now,
	}

	entries, err := journal.LoadFoodLog(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries = append(entries, entry)
	if err := journal.SaveFoodLog(ctx, userID, entries); err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveFood deletes one entry by id.
func RemoveFood(ctx context.Context, journal *Journal, userID, entryID string) error {
	entries, err := journal.LoadFoodLog(ctx, userID)
	if err != nil {
		return err
	}
	kept := entries[:0]
	removed := false
	for _, e := range entries {
		if e.ID == entryID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if !removed {
		return ErrEntryNotFound
	}
	return journal.SaveFoodLog(ctx, userID, kept)
}

// NutritionTotals sums macros over food log entries.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Meals    int     `json:"meals"`
}

// DailyTotals sums only the entries stamped on the same local calendar day
// as now. Entries never expire, but a "day" ends at local midnight.
func DailyTotals(entries []internal.FoodLogEntry, now time.Time) NutritionTotals {
	var t NutritionTotals
	for _, e := range entries {
		if !sameLocalDay(e.Timestamp, now) {
			continue
		}
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Carbs += e.Carbs
		t.Fats += e.Fats
		t.Meals++
	}
	return t
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
