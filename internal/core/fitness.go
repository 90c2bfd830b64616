package core

// StepTarget is the daily step average above which no nudge is shown.
const StepTarget = 8000

// AnalyzeFitness computes the mean daily step count and carries the
// activity list through. An empty step sequence yields an average of 0
// rather than a division by zero, and counts as below target.
func AnalyzeFitness(data FitnessData) FitnessSummary {
	var average float64
	if len(data.DailySteps) > 0 {
		sum := 0
		for _, steps := range data.DailySteps {
			sum += steps
		}
		average = float64(sum) / float64(len(data.DailySteps))
	}
	return FitnessSummary{
		AverageSteps: average,
		OnTarget:     average >= StepTarget,
		Activities:   data.Activities,
	}
}
