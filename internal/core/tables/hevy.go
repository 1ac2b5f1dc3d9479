package tables

import "github.com/JonMunkholm/csvtransform/internal/core"

func init() {
	registerHevyWorkouts()
}

func registerHevyWorkouts() {
	core.RegisterProfile(core.Profile{
		Key:   "hevy",
		Label: "Hevy workout export",
		Columns: core.Schema{
			{Key: "Date", Title: "Date"},
			{Key: "Workout Name", Title: "Workout Name"},
			{Key: "Duration", Title: "Duration"},
			{Key: "Exercise Name", Title: "Exercise Name"},
			{Key: "Set Order", Title: "Set Order"},
			{Key: "Weight", Title: "Weight"},
			{Key: "Reps", Title: "Reps"},
			{Key: "Distance", Title: "Distance"},
			{Key: "Seconds", Title: "Seconds"},
			{Key: "Notes", Title: "Notes"},
			{Key: "Workout Notes", Title: "Workout Notes"},
			{Key: "RPE", Title: "RPE"},
		},
		Transforms: []string{DateToNoon.Name()},
	})
}
