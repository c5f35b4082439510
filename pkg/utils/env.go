package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type EnvVars struct {
	Damping       float64 // Damping factor of the random surfer
	Samples       int     // Length of the sampling chain
	Threshold     float64 // Convergence threshold of the iterative estimator
	MaxIterations int     // Iteration cap of the iterative estimator
	Seed          uint64  // Random seed of the sampler (0: seeded from time)
	Host          string
	HttpPort      int
	ApiPort       int
	RabbitHost    string
	RabbitUser    string
	RabbitPass    string
	WorkQueue     string
	ResultQueue   string
	CacheSize     int
	ComputeLog    bool
	ServerLog     bool
}

func ReadEnvVars() EnvVars {
	// Loading .env file if it exists
	// It will not override already existing env vars
	_ = godotenv.Load()
	return EnvVars{
		Damping:       readFloatEnvVarOr("DAMPING", 0.85),
		Samples:       ReadIntEnvVarOr("SAMPLES", 10000),
		Threshold:     readFloatEnvVarOr("THRESHOLD", 0.001),
		MaxIterations: ReadIntEnvVarOr("MAX_ITERATIONS", 10000),
		Seed:          readUintEnvVarOr("SEED", 0),
		Host:          readStringEnvVarOr("HOST", ""),
		HttpPort:      ReadIntEnvVarOr("HTTP_PORT", 8080),
		ApiPort:       ReadIntEnvVarOr("API_PORT", 1234),
		RabbitHost:    readStringEnvVarOr("RABBIT_HOST", "localhost"),
		RabbitUser:    readStringEnvVarOr("RABBIT_USER", "guest"),
		RabbitPass:    readStringEnvVarOr("RABBIT_PASSWORD", "guest"),
		WorkQueue:     readStringEnvVarOr("WORK_QUEUE", "work"),
		ResultQueue:   readStringEnvVarOr("RESULT_QUEUE", "result"),
		CacheSize:     ReadIntEnvVarOr("CACHE_SIZE", 128),
		ComputeLog:    readBoolEnvVarOr("COMPUTE_LOG", false),
		ServerLog:     readBoolEnvVarOr("SERVER_LOG", false),
	}
}

// RabbitURL returns the AMQP connection string for the configured broker.
func (e EnvVars) RabbitURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:5672/", e.RabbitUser, e.RabbitPass, e.RabbitHost)
}

func readStringEnvVar(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%s not set", name)
	}
	return value, nil
}

func readIntEnvVar(name string) (int, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("could not convert %s to a number: %v", name, err)
	}
	return value, nil
}

func readStringEnvVarOr(name string, or string) string {
	value, err := readStringEnvVar(name)
	if err != nil {
		value = or
	}
	return value
}

func ReadIntEnvVarOr(name string, or int) int {
	value, err := readIntEnvVar(name)
	if err != nil {
		value = or
	}
	return value
}

func readFloatEnvVarOr(name string, or float64) float64 {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		WarnLog("env", "%s is not a number, using %v", name, or)
		return or
	}
	return value
}

func readUintEnvVarOr(name string, or uint64) uint64 {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		WarnLog("env", "%s is not an unsigned number, using %v", name, or)
		return or
	}
	return value
}

func readBoolEnvVarOr(name string, or bool) bool {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return or
	}
	return value
}
