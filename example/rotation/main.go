// FILE: example/rotation/main.go
package main

import (
	"fmt"

	"github.com/lixenwraith/rollog"
)

// Writes enough entries to roll through the retention window, then prints
// the surviving files.
func main() {
	logger, err := rollog.NewBuilder().
		Directory("./logs").
		Prefix("demo").
		MaxFileSize(1024). // Rotate every KB for demonstration
		MaxFiles(3).
		EnableStdout(true).
		Build()
	if err != nil {
		panic(err)
	}

	for i := 0; i < 200; i++ {
		logger.Info("demo", "entry", i)
	}

	fmt.Println("log files after retention:")
	for _, path := range logger.LogFiles() {
		fmt.Println(" ", path)
	}
}
