package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type EnvVars struct {
	Host        string
	Port        int
	RabbitHost  string
	RabbitUser  string
	RabbitPass  string
	WorkQueue   string
	ResultQueue string
	WorkerLog   bool
	ServerLog   bool
}

func ReadEnvVars() EnvVars {
	// Loading .env file if it exists
	// It will not override already existing env vars
	_ = godotenv.Load()
	host := readStringEnvVarOr("HOST", "")
	port := ReadIntEnvVarOr("PORT", 1234)
	rabbitHost := readStringEnvVarOr("RABBIT_HOST", "localhost")
	rabbitUser := readStringEnvVarOr("RABBIT_USER", "guest")
	rabbitPass := readStringEnvVarOr("RABBIT_PASSWORD", "guest")
	workQueue := readStringEnvVarOr("WORK_QUEUE", "work")
	resultQueue := readStringEnvVarOr("RESULT_QUEUE", "result")
	workerLog := readBoolEnvVarOr("WORKER_LOG", false)
	serverLog := readBoolEnvVarOr("SERVER_LOG", false)
	return EnvVars{
		Host: host, Port: port,
		RabbitHost: rabbitHost, RabbitUser: rabbitUser, RabbitPass: rabbitPass,
		WorkQueue: workQueue, ResultQueue: resultQueue,
		WorkerLog: workerLog, ServerLog: serverLog,
	}
}

// RabbitURL builds the AMQP connection string from the environment values.
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
