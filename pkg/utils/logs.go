package utils

import (
	"fmt"
	"log"
)

var computeLog bool
var serverLog bool

func InitLog(compute, server bool) {
	computeLog = compute
	serverLog = server
}

func ServerLog(format string, v ...any) {
	if serverLog {
		log.Printf("INFO Server: %s", fmt.Sprintf(format, v...))
	}
}

func ComputeLog(component string, format string, v ...any) {
	if computeLog {
		log.Printf("INFO Compute %s: %s", component, fmt.Sprintf(format, v...))
	}
}

func WarnLog(component string, format string, v ...any) {
	log.Printf("WARN %s: %s", component, fmt.Sprintf(format, v...))
}

func FailOnError(format string, err error, v ...any) {
	if err != nil {
		log.Fatalf("%s: %v", fmt.Sprintf(format, v...), err)
	}
}
