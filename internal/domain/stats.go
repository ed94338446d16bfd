package domain

type EngineStats struct {
	ActiveObstacles   int64                  `json:"active_obstacles"`
	ActiveByType      map[ObstacleType]int64 `json:"active_by_type"`
	NotifiedObstacles int64                  `json:"notified_obstacles"`
	PendingIntents    int64                  `json:"pending_intents"`
}
