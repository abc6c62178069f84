package config

import (
	"os"
	"strconv"
)

// Game holds the fixed process-wide gameplay parameters echoed to every
// player in the welcome message. They are not tunable per room.
type Game struct {
	BubbleSpeedBase   float64 `json:"bubble_speed_base"`
	SpeedIncreaseRate float64 `json:"speed_increase_rate"`
	SpeedInterval     int     `json:"speed_interval"`
	PointsPerBubble   int     `json:"points_per_bubble"`
	MaxBubbles        int     `json:"max_bubbles"`
}

type Config struct {
	Port           string
	DatabaseURL    string
	RoomCapacity   int
	RoomTTLMinutes int // 0 disables stale-room reclamation
	Game           Game
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8765"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RoomCapacity:   getEnvInt("ROOM_CAPACITY", 4),
		RoomTTLMinutes: getEnvInt("ROOM_TTL_MINUTES", 0),
		Game: Game{
			BubbleSpeedBase:   getEnvFloat("BUBBLE_SPEED_BASE", 1.0),
			SpeedIncreaseRate: getEnvFloat("SPEED_INCREASE_RATE", 0.3),
			SpeedInterval:     getEnvInt("SPEED_INTERVAL", 7),
			PointsPerBubble:   getEnvInt("POINTS_PER_BUBBLE", 20),
			MaxBubbles:        getEnvInt("MAX_BUBBLES", 15),
		},
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
