package nutrition

import (
	"net/http"

	nutritiondomain "aurora-app-go/internal/domain/nutrition"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"aurora-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Nutrition *nutritiondomain.Service
	log       logger.Logger
}

func New(nutrition *nutritiondomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Nutrition: nutrition,
		log:       log,
	}
}

type createMealRequest struct {
	Name string `json:"name"`
}

// addFoodRequest carries either a database food name with grams or a
// manual entry with explicit macros.
type addFoodRequest struct {
	Food     string   `json:"food"`
	Grams    float64  `json:"grams"`
	Name     string   `json:"name"`
	Calories *float64 `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
}

func (h *Handlers) Overview(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	overview, err := h.Nutrition.Overview(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, overview)
}

func (h *Handlers) SearchFoods(w http.ResponseWriter, r *http.Request) {
	commonhandler.WriteJSON(w, http.StatusOK, nutritiondomain.SearchFoods(r.URL.Query().Get("q")))
}

func (h *Handlers) CreateMeal(w http.ResponseWriter, r *http.Request) {
	var req createMealRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Nutrition.AddMeal(r.Context(), ns, req.Name)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Nutrition.DeleteMeal(r.Context(), ns, chi.URLParam(r, "meal_id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

func (h *Handlers) AddFood(w http.ResponseWriter, r *http.Request) {
	var req addFoodRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}
	mealID := chi.URLParam(r, "meal_id")

	var (
		item *nutritiondomain.FoodItem
		err  error
	)
	if req.Food != "" {
		item, err = h.Nutrition.AddFood(r.Context(), ns, nutritiondomain.AddFoodInput{
			MealID: mealID,
			Food:   req.Food,
			Grams:  req.Grams,
		})
	} else {
		item, err = h.Nutrition.AddManualFood(r.Context(), ns, nutritiondomain.ManualFoodInput{
			MealID:   mealID,
			Name:     req.Name,
			Calories: req.Calories,
			Protein:  req.Protein,
			Carbs:    req.Carbs,
			Fat:      req.Fat,
		})
	}
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handlers) RemoveFood(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	err := h.Nutrition.RemoveFood(r.Context(), ns, chi.URLParam(r, "meal_id"), chi.URLParam(r, "item_id"))
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

func (h *Handlers) GetBiometrics(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	bio, err := h.Nutrition.Biometrics(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, bio)
}

func (h *Handlers) UpdateBiometrics(w http.ResponseWriter, r *http.Request) {
	var req nutritiondomain.Biometrics
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	bio, err := h.Nutrition.SetBiometrics(r.Context(), ns, req)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, bio)
}
