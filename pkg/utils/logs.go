package utils

import (
	"fmt"
	"log"
)

var workerLog bool
var serverLog bool

func InitLog(worker, server bool) {
	workerLog = worker
	serverLog = server
}

func ServerLog(format string, v ...any) {
	if serverLog {
		log.Printf("INFO Server: %s", fmt.Sprintf(format, v...))
	}
}

func WorkerLog(format string, v ...any) {
	if workerLog {
		log.Printf("INFO Worker: %s", fmt.Sprintf(format, v...))
	}
}

func WarnLog(scope string, format string, v ...any) {
	log.Printf("WARN %s: %s", scope, fmt.Sprintf(format, v...))
}

func FailOnError(format string, err error, v ...any) {
	if err != nil {
		log.Fatalf("%s: %v", fmt.Sprintf(format, v...), err)
	}
}
