package models

// Config represents application configuration
type Config struct {
	App     AppConfig
	Server  ServerConfig
	Redis   RedisConfig
	Logger  LoggerConfig
	Depot   DepotConfig
	Planner PlannerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// DepotConfig describes the fixed reference point orders are bucketed around
type DepotConfig struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"` // Service circle drawn around the depot
}

// PlannerConfig contains planner service specific configuration
type PlannerConfig struct {
	MaxWaypoints      int    `json:"max_waypoints"` // Destinations handed to the directions link
	DirectionsBaseURL string `json:"directions_base_url"`
	CacheTTLSeconds   int    `json:"cache_ttl_seconds"`
	UploadMaxBytes    int64  `json:"upload_max_bytes"`
	UploadRateLimit   int    `json:"upload_rate_limit"` // Uploads per client IP per period, 0 disables
	UploadRatePeriod  int    `json:"upload_rate_period_seconds"`
}

// Location returns the depot as a Location
func (d DepotConfig) Location() Location {
	return Location{Latitude: d.Latitude, Longitude: d.Longitude}
}
