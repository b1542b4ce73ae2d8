package achievements

const (
	colorEasy    = "#4CAF50"
	colorMedium  = "#FF9800"
	colorHard    = "#F44336"
	colorSpecial = "#9C27B0"
	colorEpic    = "#673AB7"
)

var defaultCatalog = MustNew(
	// easy
	Definition{ID: "first_task", Name: "First Step", Description: "Complete your first task", Icon: "🎯",
		Difficulty: DifficultyEasy, Color: colorEasy, Type: MetricCompletedTasks, TargetValue: 1},
	Definition{ID: "prioritario", Name: "Top Priority", Description: "Create your first high priority task", Icon: "⭐",
		Difficulty: DifficultyEasy, Color: colorEasy, Type: MetricHighPriorityTasks, TargetValue: 1},
	Definition{ID: "subdivisor", Name: "Subdivider", Description: "Create your first subtask", Icon: "📝",
		Difficulty: DifficultyEasy, Color: colorEasy, Type: MetricSubtasksCreated, TargetValue: 1},
	Definition{ID: "explorador", Name: "Explorer", Description: "Create 5 different tasks", Icon: "🗺️",
		Difficulty: DifficultyEasy, Color: colorEasy, Type: MetricTasksCreated, TargetValue: 5},

	// medium
	Definition{ID: "productivo", Name: "Productive", Description: "Complete 25 tasks", Icon: "⚡",
		Difficulty: DifficultyMedium, Color: colorMedium, Type: MetricCompletedTasks, TargetValue: 25},
	Definition{ID: "consistente", Name: "Consistent", Description: "Keep a 3 day streak", Icon: "🔥",
		Difficulty: DifficultyMedium, Color: colorMedium, Type: MetricStreak, TargetValue: 3},
	Definition{ID: "tempranero", Name: "Early Bird", Description: "Complete 3 tasks before 9 AM", Icon: "🌅",
		Difficulty: DifficultyMedium, Color: colorMedium, Type: MetricEarlyTasks, TargetValue: 3},
	Definition{ID: "multitarea", Name: "Multitasker", Description: "Complete 5 subtasks", Icon: "🎪",
		Difficulty: DifficultyMedium, Color: colorMedium, Type: MetricSubtasksCompleted, TargetValue: 5},

	// hard
	Definition{ID: "maraton", Name: "Marathon", Description: "Complete 100 tasks", Icon: "🏃",
		Difficulty: DifficultyHard, Color: colorHard, Type: MetricCompletedTasks, TargetValue: 100},
	Definition{ID: "leyenda", Name: "Legend", Description: "Keep a 30 day streak", Icon: "👑",
		Difficulty: DifficultyHard, Color: colorHard, Type: MetricStreak, TargetValue: 30},
	Definition{ID: "velocista", Name: "Sprinter", Description: "Complete 10 tasks in a single day", Icon: "💨",
		Difficulty: DifficultyHard, Color: colorHard, Type: MetricTasksInDay, TargetValue: 10},
	Definition{ID: "perfeccionista", Name: "Perfectionist", Description: "Complete 50 tasks without subtasks", Icon: "🎯",
		Difficulty: DifficultyHard, Color: colorHard, Type: MetricSoloTasks, TargetValue: 50},

	// special
	Definition{ID: "dominguero", Name: "Sunday Worker", Description: "Complete 5 tasks on a Sunday", Icon: "⛱️",
		Difficulty: DifficultySpecial, Color: colorSpecial, Type: MetricSundayTasks, TargetValue: 5},
	Definition{ID: "maestro", Name: "Master", Description: "Complete 500 tasks", Icon: "🎓",
		Difficulty: DifficultySpecial, Color: colorSpecial, Type: MetricCompletedTasks, TargetValue: 500},

	// epic
	Definition{ID: "inmortal", Name: "Immortal", Description: "Keep a 100 day streak", Icon: "⚡",
		Difficulty: DifficultyEpic, Color: colorEpic, Type: MetricStreak, TargetValue: 100},
	Definition{ID: "titan", Name: "Titan", Description: "Complete 1000 tasks", Icon: "🏔️",
		Difficulty: DifficultyEpic, Color: colorEpic, Type: MetricCompletedTasks, TargetValue: 1000},
	Definition{ID: "dios_productividad", Name: "God of Productivity", Description: "Complete 5000 tasks", Icon: "👑",
		Difficulty: DifficultyEpic, Color: colorEpic, Type: MetricCompletedTasks, TargetValue: 5000},
)

// Default returns the production catalog.
func Default() *Catalog {
	return defaultCatalog
}
