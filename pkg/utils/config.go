package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

type Config struct {
	DampingFactor float64
	SampleCount   int
	Epsilon       float64
	Graph         string
	Output        string
}

// Load config.json (estimator parameters and graph file)
func LoadConfiguration(path string) (config Config, err error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("read: %v", err)
		return
	}
	// Parse config.json into Config struct
	if err = json.Unmarshal(bytes, &config); err != nil {
		err = fmt.Errorf("parse: %v", err)
		return
	}
	return
}
