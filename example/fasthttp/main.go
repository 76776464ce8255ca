// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/rollog"
	"github.com/lixenwraith/rollog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Create and configure logger
	logger := rollog.NewLogger()
	err := logger.ConfigureString(
		"directory=/var/log/fasthttp",
		"prefix=server",
		"max_file_size=10485760",
		"max_files=10",
	)
	if err != nil {
		panic(err)
	}

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(rollog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:         "MyServer",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) int64 {
	// Can inspect specific fasthttp message patterns
	if strings.Contains(msg, "connection cannot be served") {
		return rollog.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return rollog.LevelError
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
