package main

import (
	"fmt"

	"aurora-app-go/internal/domain/metrics"
	"github.com/spf13/cobra"
)

var (
	bioWeight   float64
	bioHeight   float64
	bioAge      float64
	bioGender   string
	bioActivity string
	bioGoal     string
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Compute daily calorie and macro targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		bio := metrics.Biometrics{
			Weight:        bioWeight,
			Height:        bioHeight,
			Age:           bioAge,
			Gender:        metrics.Gender(bioGender),
			ActivityLevel: metrics.ActivityLevel(bioActivity),
			Goal:          metrics.Goal(bioGoal),
		}
		if bio.Weight <= 0 || bio.Height <= 0 || bio.Age <= 0 {
			return fmt.Errorf("--weight, --height and --age must be > 0")
		}
		if !bio.ActivityLevel.Valid() {
			return fmt.Errorf("invalid --activity %q", bioActivity)
		}
		if !bio.Goal.Valid() {
			return fmt.Errorf("invalid --goal %q", bioGoal)
		}

		targets := metrics.NutritionTargets(bio)
		fmt.Fprintf(cmd.OutOrStdout(), "BMR: %.0f\nTDEE: %.0f\nCalories: %d kcal\nProtein: %dg\nCarbs: %dg\nFat: %dg\n",
			targets.BMR, targets.TDEE, targets.Calories, targets.Protein, targets.Carbs, targets.Fat)
		return nil
	},
}

var (
	cardioDistance  float64
	cardioMinutes   float64
	cardioType      string
	cardioIntensity string
)

var cardioCmd = &cobra.Command{
	Use:   "cardio",
	Short: "Compute pace, speed and calories of a cardio session",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := metrics.CardioType(cardioType)
		intensity := metrics.Intensity(cardioIntensity)
		if !kind.Valid() {
			return fmt.Errorf("invalid --type %q (expected run, walk or bike)", cardioType)
		}
		if !intensity.Valid() {
			return fmt.Errorf("invalid --intensity %q (expected low, moderate or high)", cardioIntensity)
		}
		if cardioDistance < 0 || cardioMinutes < 0 {
			return fmt.Errorf("--distance and --minutes must be >= 0")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Pace: %s min/km\nSpeed: %s km/h\nCalories: %d kcal\n",
			metrics.Pace(cardioDistance, cardioMinutes),
			metrics.Speed(cardioDistance, cardioMinutes),
			metrics.Round(metrics.CardioCalories(cardioMinutes, kind, intensity)))
		return nil
	},
}

var (
	priceA    float64
	quantityA float64
	priceB    float64
	quantityB float64
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the unit price of two packages",
	RunE: func(cmd *cobra.Command, args []string) error {
		result := metrics.CompareUnitPrice(
			metrics.PriceQuote{Price: priceA, Quantity: quantityA},
			metrics.PriceQuote{Price: priceB, Quantity: quantityB},
		)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "A: %.4f per unit\nB: %.4f per unit\n", result.CostA, result.CostB)
		if result.Best == "" {
			fmt.Fprintln(out, "No recommendation")
			return nil
		}
		fmt.Fprintf(out, "Best value: %s\n", result.Best)
		return nil
	},
}

func init() {
	defaults := metrics.DefaultBiometrics()
	targetsCmd.Flags().Float64Var(&bioWeight, "weight", defaults.Weight, "Weight in kg")
	targetsCmd.Flags().Float64Var(&bioHeight, "height", defaults.Height, "Height in cm")
	targetsCmd.Flags().Float64Var(&bioAge, "age", defaults.Age, "Age in years")
	targetsCmd.Flags().StringVar(&bioGender, "gender", string(defaults.Gender), "male or female")
	targetsCmd.Flags().StringVar(&bioActivity, "activity", string(defaults.ActivityLevel), "sedentary, light, moderate, active or extreme")
	targetsCmd.Flags().StringVar(&bioGoal, "goal", string(defaults.Goal), "lose, maintain or gain")

	cardioCmd.Flags().Float64Var(&cardioDistance, "distance", 0, "Distance in km")
	cardioCmd.Flags().Float64Var(&cardioMinutes, "minutes", 0, "Duration in minutes")
	cardioCmd.Flags().StringVar(&cardioType, "type", string(metrics.CardioRun), "run, walk or bike")
	cardioCmd.Flags().StringVar(&cardioIntensity, "intensity", string(metrics.IntensityModerate), "low, moderate or high")
	_ = cardioCmd.MarkFlagRequired("distance")
	_ = cardioCmd.MarkFlagRequired("minutes")

	compareCmd.Flags().Float64Var(&priceA, "price-a", 0, "Price of package A")
	compareCmd.Flags().Float64Var(&quantityA, "qty-a", 0, "Quantity of package A")
	compareCmd.Flags().Float64Var(&priceB, "price-b", 0, "Price of package B")
	compareCmd.Flags().Float64Var(&quantityB, "qty-b", 0, "Quantity of package B")

	rootCmd.AddCommand(targetsCmd, cardioCmd, compareCmd)
}
