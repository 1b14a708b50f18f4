package domain

// ExplorerSample is one row of the synthetic explorer dataset.
// @Description A synthetic user sample for the data explorer.
type ExplorerSample struct {
	Age                int         `json:"age" example:"34"`
	WeightKg           float64     `json:"weight_kg" example:"78.4"`
	HeightM            float64     `json:"height_m" example:"1.72"`
	MaxBPM             int         `json:"max_bpm" example:"168"`
	WorkoutDurationMin int         `json:"workout_duration_min" example:"55"`
	CaloriesBurned     float64     `json:"calories_burned" example:"412.7"`
	BodyFatPercent     float64     `json:"body_fat_percent" example:"21.3"`
	Cluster            ArchetypeID `json:"cluster" example:"2"`
	BMI                float64     `json:"bmi" example:"26.5"`
}

// DescriptiveStats holds basic statistical measures.
// @Description Basic statistical measures for a feature.
type DescriptiveStats struct {
	Avg float64 `json:"avg" example:"74.8"`
	Std float64 `json:"std" example:"15.2"`
	Min float64 `json:"min" example:"41.0"`
	Max float64 `json:"max" example:"121.7"`
}

// FeatureSummary pairs a dataset feature with its descriptive statistics.
// @Description Descriptive statistics for one dataset feature.
type FeatureSummary struct {
	Feature string           `json:"feature" example:"weight_kg"`
	Stats   DescriptiveStats `json:"stats"`
}

// Dataset is a page of the synthetic explorer dataset.
// @Description Synthetic dataset page with generation parameters.
type Dataset struct {
	// Seed used for generation
	Seed int64 `json:"seed" example:"42"`
	// Total samples generated
	Samples int `json:"samples" example:"1000"`
	// Returned rows (first `limit` samples)
	Data []ExplorerSample `json:"data"`
}

// DatasetSummary holds per-feature statistics for a generated dataset.
// @Description Per-feature descriptive statistics.
type DatasetSummary struct {
	Seed     int64            `json:"seed" example:"42"`
	Samples  int              `json:"samples" example:"1000"`
	Features []FeatureSummary `json:"features"`
}

// CorrelationMatrix is a Pearson correlation matrix over dataset features.
// @Description Pearson correlations; matrix[i][j] correlates features[i] and features[j].
type CorrelationMatrix struct {
	Seed     int64       `json:"seed" example:"42"`
	Samples  int         `json:"samples" example:"1000"`
	Features []string    `json:"features"`
	Matrix   [][]float64 `json:"matrix"`
}

// ClusterStats aggregates a generated dataset by cluster.
// @Description Aggregate statistics for one cluster of the synthetic dataset.
type ClusterStats struct {
	Cluster        ArchetypeID `json:"cluster" example:"0"`
	Name           string      `json:"name" example:"Elite Athletes"`
	Count          int         `json:"count" example:"207"`
	AvgAge         float64     `json:"avg_age" example:"43.1"`
	AvgBMI         float64     `json:"avg_bmi" example:"26.2"`
	AvgCalories    float64     `json:"avg_calories" example:"398.5"`
	AvgDurationMin float64     `json:"avg_duration_min" example:"69.4"`
}

// ClusterReport is the per-cluster breakdown of a generated dataset.
// @Description Cluster aggregates for the synthetic dataset.
type ClusterReport struct {
	Seed     int64          `json:"seed" example:"42"`
	Samples  int            `json:"samples" example:"1000"`
	Clusters []ClusterStats `json:"clusters"`
}

// ClusterCount is one slice of the dashboard cluster distribution.
type ClusterCount struct {
	Cluster string `json:"cluster" example:"Enthusiasts"`
	Count   int    `json:"count" example:"5800"`
}

// WorkoutCalories is one bar of the dashboard calories-by-workout chart.
type WorkoutCalories struct {
	Workout  WorkoutType `json:"workout" example:"HIIT"`
	Calories int         `json:"calories" example:"520"`
}

// DashboardOverview is the static system overview content.
// @Description Headline figures and chart data for the dashboard.
type DashboardOverview struct {
	UsersAnalyzed        int               `json:"users_analyzed" example:"20000"`
	PredictionAccuracy   int               `json:"prediction_accuracy" example:"89"`
	FitnessClusters      int               `json:"fitness_clusters" example:"5"`
	FeaturesTracked      int               `json:"features_tracked" example:"62"`
	ClusterDistribution  []ClusterCount    `json:"cluster_distribution"`
	AvgCaloriesByWorkout []WorkoutCalories `json:"avg_calories_by_workout"`
}
