package service

import (
	"context"
	"math"
	"math/rand"

	"github.com/smartfit/fitness-api/internal/domain"
)

const (
	// DefaultExplorerSeed seeds the synthetic generator when none is given.
	DefaultExplorerSeed = 42

	// DefaultExplorerSamples is the default synthetic dataset size.
	DefaultExplorerSamples = 1000

	// MaxExplorerSamples bounds a single generation request.
	MaxExplorerSamples = 10000
)

// explorerFeatures are the numeric dataset features, in reporting order.
var explorerFeatures = []string{
	"age",
	"weight_kg",
	"bmi",
	"max_bpm",
	"workout_duration",
	"calories_burned",
	"body_fat_pct",
}

// ExplorerService generates seeded synthetic fitness datasets and computes
// aggregates over them. Generation is deterministic per (seed, samples), so
// every operation recomputes from scratch and holds no state.
type ExplorerService interface {
	// Dataset generates the dataset and returns its first limit rows.
	Dataset(ctx context.Context, seed int64, samples, limit int) (*domain.Dataset, error)
	// Summary returns per-feature descriptive statistics.
	Summary(ctx context.Context, seed int64, samples int) (*domain.DatasetSummary, error)
	// Correlations returns the Pearson correlation matrix of the features.
	Correlations(ctx context.Context, seed int64, samples int) (*domain.CorrelationMatrix, error)
	// Clusters returns per-cluster aggregates.
	Clusters(ctx context.Context, seed int64, samples int) (*domain.ClusterReport, error)
	// Overview returns the static dashboard overview content.
	Overview(ctx context.Context) *domain.DashboardOverview
}

type explorerService struct{}

// NewExplorerService creates a new ExplorerService.
func NewExplorerService() ExplorerService {
	return &explorerService{}
}

func (s *explorerService) Dataset(ctx context.Context, seed int64, samples, limit int) (*domain.Dataset, error) {
	data, err := generateSamples(seed, samples)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > len(data) {
		limit = len(data)
	}

	return &domain.Dataset{
		Seed:    seed,
		Samples: samples,
		Data:    data[:limit],
	}, nil
}

func (s *explorerService) Summary(ctx context.Context, seed int64, samples int) (*domain.DatasetSummary, error) {
	data, err := generateSamples(seed, samples)
	if err != nil {
		return nil, err
	}

	summary := &domain.DatasetSummary{
		Seed:    seed,
		Samples: samples,
	}
	for _, feature := range explorerFeatures {
		summary.Features = append(summary.Features, domain.FeatureSummary{
			Feature: feature,
			Stats:   computeStats(featureValues(data, feature)),
		})
	}

	return summary, nil
}

func (s *explorerService) Correlations(ctx context.Context, seed int64, samples int) (*domain.CorrelationMatrix, error) {
	data, err := generateSamples(seed, samples)
	if err != nil {
		return nil, err
	}

	columns := make([][]float64, len(explorerFeatures))
	for i, feature := range explorerFeatures {
		columns[i] = featureValues(data, feature)
	}

	matrix := make([][]float64, len(columns))
	for i := range columns {
		matrix[i] = make([]float64, len(columns))
		for j := range columns {
			if i == j {
				matrix[i][j] = 1
				continue
			}
			matrix[i][j] = round2(pearson(columns[i], columns[j]))
		}
	}

	return &domain.CorrelationMatrix{
		Seed:     seed,
		Samples:  samples,
		Features: explorerFeatures,
		Matrix:   matrix,
	}, nil
}

func (s *explorerService) Clusters(ctx context.Context, seed int64, samples int) (*domain.ClusterReport, error) {
	data, err := generateSamples(seed, samples)
	if err != nil {
		return nil, err
	}

	report := &domain.ClusterReport{
		Seed:    seed,
		Samples: samples,
	}

	for id := domain.ArchetypeID(0); id < domain.ArchetypeCount; id++ {
		var count int
		var sumAge, sumBMI, sumCalories, sumDuration float64
		for _, sample := range data {
			if sample.Cluster != id {
				continue
			}
			count++
			sumAge += float64(sample.Age)
			sumBMI += sample.BMI
			sumCalories += sample.CaloriesBurned
			sumDuration += float64(sample.WorkoutDurationMin)
		}

		stats := domain.ClusterStats{
			Cluster: id,
			Name:    domain.ProfileByID(id).Name,
			Count:   count,
		}
		if count > 0 {
			n := float64(count)
			stats.AvgAge = round2(sumAge / n)
			stats.AvgBMI = round2(sumBMI / n)
			stats.AvgCalories = round2(sumCalories / n)
			stats.AvgDurationMin = round2(sumDuration / n)
		}
		report.Clusters = append(report.Clusters, stats)
	}

	return report, nil
}

func (s *explorerService) Overview(ctx context.Context) *domain.DashboardOverview {
	return &domain.DashboardOverview{
		UsersAnalyzed:      20000,
		PredictionAccuracy: 89,
		FitnessClusters:    5,
		FeaturesTracked:    62,
		ClusterDistribution: []domain.ClusterCount{
			{Cluster: "Elite Athletes", Count: 3200},
			{Cluster: "Strength Builders", Count: 4500},
			{Cluster: "Enthusiasts", Count: 5800},
			{Cluster: "Beginners", Count: 4100},
			{Cluster: "Health Focus", Count: 2400},
		},
		AvgCaloriesByWorkout: []domain.WorkoutCalories{
			{Workout: domain.WorkoutHIIT, Calories: 520},
			{Workout: domain.WorkoutStrength, Calories: 380},
			{Workout: domain.WorkoutCardio, Calories: 450},
			{Workout: domain.WorkoutYoga, Calories: 180},
			{Workout: domain.WorkoutSports, Calories: 410},
		},
	}
}

// generateSamples produces the synthetic dataset for a seed. Distributions
// mirror the explorer's population assumptions: normal weight/height/body
// fat around typical adult values, uniform age, heart rate and duration.
func generateSamples(seed int64, samples int) ([]domain.ExplorerSample, error) {
	if samples <= 0 || samples > MaxExplorerSamples {
		return nil, domain.ErrInvalidInput
	}

	rng := rand.New(rand.NewSource(seed))

	data := make([]domain.ExplorerSample, samples)
	for i := range data {
		weight := rng.NormFloat64()*15 + 75
		height := rng.NormFloat64()*0.15 + 1.70

		data[i] = domain.ExplorerSample{
			Age:                18 + rng.Intn(52),
			WeightKg:           round2(weight),
			HeightM:            round2(height),
			MaxBPM:             120 + rng.Intn(75),
			WorkoutDurationMin: 20 + rng.Intn(100),
			CaloriesBurned:     round2(math.Abs(rng.NormFloat64()*150 + 400)),
			BodyFatPercent:     round2(rng.NormFloat64()*8 + 22),
			Cluster:            domain.ArchetypeID(rng.Intn(domain.ArchetypeCount)),
			BMI:                round2(bmiValue(weight, height)),
		}
	}

	return data, nil
}

// featureValues extracts one feature column from the dataset.
func featureValues(data []domain.ExplorerSample, feature string) []float64 {
	values := make([]float64, len(data))
	for i, sample := range data {
		switch feature {
		case "age":
			values[i] = float64(sample.Age)
		case "weight_kg":
			values[i] = sample.WeightKg
		case "bmi":
			values[i] = sample.BMI
		case "max_bpm":
			values[i] = float64(sample.MaxBPM)
		case "workout_duration":
			values[i] = float64(sample.WorkoutDurationMin)
		case "calories_burned":
			values[i] = sample.CaloriesBurned
		case "body_fat_pct":
			values[i] = sample.BodyFatPercent
		}
	}
	return values
}

// computeStats calculates descriptive statistics for a slice of values.
func computeStats(values []float64) domain.DescriptiveStats {
	if len(values) == 0 {
		return domain.DescriptiveStats{}
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))

	minVal := values[0]
	maxVal := values[0]
	for _, v := range values {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	sumSquares := 0.0
	for _, v := range values {
		diff := v - avg
		sumSquares += diff * diff
	}
	std := 0.0
	if len(values) > 1 {
		std = math.Sqrt(sumSquares / float64(len(values)-1))
	}

	return domain.DescriptiveStats{
		Avg: round2(avg),
		Std: round2(std),
		Min: round2(minVal),
		Max: round2(maxVal),
	}
}

// pearson computes the Pearson correlation coefficient of two equal-length
// columns. Columns with zero variance correlate as 0.
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
