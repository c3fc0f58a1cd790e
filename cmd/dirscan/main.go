package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/temirov/dirscan/internal/cli"
	"github.com/temirov/dirscan/internal/utils"
)

// main is the entry point for the dirscan command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(zap.InfoLevel)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer func() {
		_ = loggerInstance.Sync()
	}()
	if applicationExecutionError := cli.Execute(loggerInstance); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
