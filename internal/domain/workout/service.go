package workout

import (
	"context"
	"errors"
	"strings"

	"aurora-app-go/internal/domain/metrics"
	"aurora-app-go/internal/domain/records"
)

type Service struct {
	repo *records.Repository
}

func NewService(repo *records.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) lifting(ns records.Namespace) *records.Collection[LiftingEntry] {
	return records.Open(s.repo, ns, records.CollectionSpec[LiftingEntry]{
		Domain: records.DomainWorkoutLifting,
		ID:     func(e LiftingEntry) string { return e.ID },
	})
}

func (s *Service) runs(ns records.Namespace) *records.Collection[RunSession] {
	return records.Open(s.repo, ns, records.CollectionSpec[RunSession]{
		Domain: records.DomainWorkoutRuns,
		ID:     func(r RunSession) string { return r.ID },
	})
}

func (s *Service) sheets(ns records.Namespace) *records.Collection[TrainingSheet] {
	return records.Open(s.repo, ns, records.CollectionSpec[TrainingSheet]{
		Domain: records.DomainWorkoutSheets,
		ID:     func(t TrainingSheet) string { return t.ID },
	})
}

// Lifting operations

func (s *Service) ListLifts(ctx context.Context, ns records.Namespace) ([]LiftingEntry, error) {
	return s.lifting(ns).Load(ctx)
}

func (s *Service) AddLift(ctx context.Context, ns records.Namespace, input AddLiftInput) (*LiftingEntry, error) {
	// stored as typed; progress groups by exact name
	if strings.TrimSpace(input.Exercise) == "" {
		return nil, ErrExerciseRequired
	}
	if input.Weight < 0 || input.Sets < 0 || input.Reps < 0 || input.RPE < 0 {
		return nil, ErrNegativeValue
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}

	entry := LiftingEntry{
		ID:       id,
		Exercise: input.Exercise,
		Weight:   input.Weight,
		Sets:     input.Sets,
		Reps:     input.Reps,
		RPE:      input.RPE,
		Date:     s.repo.Today(),
	}
	if entry.Sets == 0 {
		entry.Sets = DefaultSets
	}

	if err := s.lifting(ns).Prepend(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *Service) DeleteLift(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.lifting(ns).Delete(ctx, id)
	return err
}

func (s *Service) Exercises(ctx context.Context, ns records.Namespace) ([]string, error) {
	entries, err := s.ListLifts(ctx, ns)
	if err != nil {
		return nil, err
	}
	return metrics.UniqueExercises(liftSets(entries)), nil
}

// Progress charts one exercise. An empty name selects the most recently
// logged exercise.
func (s *Service) Progress(ctx context.Context, ns records.Namespace, exercise string) (metrics.ExerciseProgress, error) {
	entries, err := s.ListLifts(ctx, ns)
	if err != nil {
		return metrics.ExerciseProgress{}, err
	}
	if exercise == "" && len(entries) > 0 {
		exercise = entries[0].Exercise
	}
	return metrics.Progress(liftSets(entries), exercise), nil
}

func liftSets(entries []LiftingEntry) []metrics.LiftSet {
	sets := make([]metrics.LiftSet, 0, len(entries))
	for _, e := range entries {
		sets = append(sets, metrics.LiftSet{
			Exercise: e.Exercise,
			Weight:   e.Weight,
			Sets:     e.Sets,
			Reps:     e.Reps,
			Date:     e.Date,
		})
	}
	return sets
}

// Cardio operations

func (s *Service) ListRuns(ctx context.Context, ns records.Namespace) ([]RunView, error) {
	runs, err := s.runs(ns).Load(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]RunView, 0, len(runs))
	for _, run := range runs {
		views = append(views, viewRun(run))
	}
	return views, nil
}

func (s *Service) AddRun(ctx context.Context, ns records.Namespace, input AddRunInput) (*RunView, error) {
	if input.DistanceKm == 0 || input.TimeMinutes == 0 {
		return nil, ErrRunFieldsRequired
	}
	if input.DistanceKm < 0 || input.TimeMinutes < 0 {
		return nil, ErrNegativeValue
	}

	run := RunSession{
		DistanceKm:  input.DistanceKm,
		TimeMinutes: input.TimeMinutes,
		Date:        s.repo.Today(),
		Type:        input.Type,
		Intensity:   input.Intensity,
	}
	if run.Type == "" {
		run.Type = DefaultCardioType
	}
	if !run.Type.Valid() {
		return nil, ErrInvalidCardioType
	}
	if run.Intensity == "" {
		run.Intensity = DefaultCardioEffort
	}
	if !run.Intensity.Valid() {
		return nil, ErrInvalidIntensity
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}
	run.ID = id

	if err := s.runs(ns).Prepend(ctx, run); err != nil {
		return nil, err
	}
	view := viewRun(run)
	return &view, nil
}

func (s *Service) DeleteRun(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.runs(ns).Delete(ctx, id)
	return err
}

func (s *Service) CardioStats(ctx context.Context, ns records.Namespace) (metrics.CardioStats, error) {
	runs, err := s.runs(ns).Load(ctx)
	if err != nil {
		return metrics.CardioStats{}, err
	}
	sessions := make([]metrics.CardioSession, 0, len(runs))
	for _, run := range runs {
		sessions = append(sessions, cardioSession(run))
	}
	return metrics.SummarizeCardio(sessions), nil
}

func cardioSession(run RunSession) metrics.CardioSession {
	return metrics.CardioSession{
		DistanceKm:  run.DistanceKm,
		TimeMinutes: run.TimeMinutes,
		Type:        run.Type,
		Intensity:   run.Intensity,
	}
}

func viewRun(run RunSession) RunView {
	return RunView{
		RunSession: run,
		Pace:       metrics.Pace(run.DistanceKm, run.TimeMinutes),
		Speed:      metrics.Speed(run.DistanceKm, run.TimeMinutes),
		Calories:   metrics.CardioCalories(run.TimeMinutes, run.Type, run.Intensity),
	}
}

// Training sheet operations

func (s *Service) ListSheets(ctx context.Context, ns records.Namespace) ([]TrainingSheet, error) {
	return s.sheets(ns).Load(ctx)
}

func (s *Service) CreateSheet(ctx context.Context, ns records.Namespace, name string) (*TrainingSheet, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrSheetNameRequired
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}
	sheet := TrainingSheet{ID: id, Name: name, Exercises: []SheetExercise{}}
	if err := s.sheets(ns).Prepend(ctx, sheet); err != nil {
		return nil, err
	}
	return &sheet, nil
}

func (s *Service) DeleteSheet(ctx context.Context, ns records.Namespace, id string) error {
	_, err := s.sheets(ns).Delete(ctx, id)
	return err
}

// AddExercise appends an exercise to a sheet, filling blank fields with
// the sheet defaults.
func (s *Service) AddExercise(ctx context.Context, ns records.Namespace, sheetID string, input AddSheetExerciseInput) (*TrainingSheet, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrExerciseRequired
	}

	id, err := records.NewID()
	if err != nil {
		return nil, err
	}
	exercise := SheetExercise{
		ID:   id,
		Name: input.Name,
		Sets: orDefault(input.Sets, DefaultSheetSets),
		Reps: orDefault(input.Reps, DefaultSheetReps),
		Rest: orDefault(input.Rest, DefaultSheetRest),
		Load: orDefault(input.Load, DefaultSheetLoad),
	}

	return s.updateSheet(ctx, ns, sheetID, func(sheet TrainingSheet) TrainingSheet {
		exercises := make([]SheetExercise, 0, len(sheet.Exercises)+1)
		exercises = append(exercises, sheet.Exercises...)
		sheet.Exercises = append(exercises, exercise)
		return sheet
	})
}

// RemoveExercise drops one exercise from a sheet; an unknown exercise id
// leaves the sheet unchanged.
func (s *Service) RemoveExercise(ctx context.Context, ns records.Namespace, sheetID, exerciseID string) (*TrainingSheet, error) {
	return s.updateSheet(ctx, ns, sheetID, func(sheet TrainingSheet) TrainingSheet {
		exercises := make([]SheetExercise, 0, len(sheet.Exercises))
		for _, ex := range sheet.Exercises {
			if ex.ID != exerciseID {
				exercises = append(exercises, ex)
			}
		}
		sheet.Exercises = exercises
		return sheet
	})
}

func (s *Service) updateSheet(ctx context.Context, ns records.Namespace, id string, fn func(TrainingSheet) TrainingSheet) (*TrainingSheet, error) {
	updated, err := s.sheets(ns).Update(ctx, id, func(sheet TrainingSheet) (TrainingSheet, error) {
		return fn(sheet), nil
	})
	if err != nil {
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrSheetNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
