// File: cmd/echodemo/main.go
package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lguibr/bollywood/examplesys"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	sys, err := examplesys.New(log)
	if err != nil {
		log.Fatalw("failed to build system", "error", err)
	}
	defer sys.Shutdown()

	texts := []string{"hello", "work stealing", "pool router", "dispatch", "actor"}
	results, err := sys.EchoAll(context.Background(), texts, 2*time.Second)
	if err != nil {
		log.Fatalw("echo failed", "error", err)
	}
	for i, res := range results {
		fmt.Printf("%s -> %s (via %s)\n", texts[i], res.Text, res.By)
	}
}
