package workout

import (
	"net/http"

	"aurora-app-go/internal/domain/metrics"
	workoutdomain "aurora-app-go/internal/domain/workout"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	"github.com/go-chi/chi/v5"
)

// Lifting handlers

type createLiftRequest struct {
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
	Sets     float64 `json:"sets"`
	Reps     float64 `json:"reps"`
	RPE      float64 `json:"rpe"`
}

type liftListResponse struct {
	Items     []workoutdomain.LiftingEntry `json:"items"`
	Exercises []string                     `json:"exercises"`
}

func (h *Handlers) ListLifts(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	items, err := h.Workout.ListLifts(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	exercises, err := h.Workout.Exercises(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, liftListResponse{Items: items, Exercises: exercises})
}

func (h *Handlers) CreateLift(w http.ResponseWriter, r *http.Request) {
	var req createLiftRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Workout.AddLift(r.Context(), ns, workoutdomain.AddLiftInput{
		Exercise: req.Exercise,
		Weight:   req.Weight,
		Sets:     req.Sets,
		Reps:     req.Reps,
		RPE:      req.RPE,
	})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteLift(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Workout.DeleteLift(r.Context(), ns, chi.URLParam(r, "id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

func (h *Handlers) Progress(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	progress, err := h.Workout.Progress(r.Context(), ns, r.URL.Query().Get("exercise"))
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, progress)
}

// Cardio handlers

type createRunRequest struct {
	DistanceKm  float64            `json:"distanceKm"`
	TimeMinutes float64            `json:"timeMinutes"`
	Type        metrics.CardioType `json:"type"`
	Intensity   metrics.Intensity  `json:"intensity"`
}

type runListResponse struct {
	Items []workoutdomain.RunView `json:"items"`
	Stats metrics.CardioStats     `json:"stats"`
}

func (h *Handlers) ListRuns(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	items, err := h.Workout.ListRuns(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	stats, err := h.Workout.CardioStats(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, runListResponse{Items: items, Stats: stats})
}

func (h *Handlers) CreateRun(w http.ResponseWriter, r *http.Request) {
	var req createRunRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Workout.AddRun(r.Context(), ns, workoutdomain.AddRunInput{
		DistanceKm:  req.DistanceKm,
		TimeMinutes: req.TimeMinutes,
		Type:        req.Type,
		Intensity:   req.Intensity,
	})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteRun(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Workout.DeleteRun(r.Context(), ns, chi.URLParam(r, "id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

// Sheet handlers

type createSheetRequest struct {
	Name string `json:"name"`
}

type addExerciseRequest struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
	Load string `json:"load"`
}

func (h *Handlers) ListSheets(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	items, err := h.Workout.ListSheets(r.Context(), ns)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, items)
}

func (h *Handlers) CreateSheet(w http.ResponseWriter, r *http.Request) {
	var req createSheetRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	created, err := h.Workout.CreateSheet(r.Context(), ns, req.Name)
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteSheet(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	if err := h.Workout.DeleteSheet(r.Context(), ns, chi.URLParam(r, "sheet_id")); err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteNoContent(w)
}

func (h *Handlers) AddExercise(w http.ResponseWriter, r *http.Request) {
	var req addExerciseRequest
	if !commonhandler.DecodeBody(w, r, &req) {
		return
	}
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	sheet, err := h.Workout.AddExercise(r.Context(), ns, chi.URLParam(r, "sheet_id"), workoutdomain.AddSheetExerciseInput{
		Name: req.Name,
		Sets: req.Sets,
		Reps: req.Reps,
		Rest: req.Rest,
		Load: req.Load,
	})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, sheet)
}

func (h *Handlers) RemoveExercise(w http.ResponseWriter, r *http.Request) {
	ns, ok := commonhandler.Namespace(w, r)
	if !ok {
		return
	}

	sheet, err := h.Workout.RemoveExercise(r.Context(), ns, chi.URLParam(r, "sheet_id"), chi.URLParam(r, "exercise_id"))
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, sheet)
}
