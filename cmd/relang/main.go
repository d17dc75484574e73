package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/MarcosHelbert/relang"
	"github.com/MarcosHelbert/relang/internal/pkg/logging"
)

const defaultDbFileName = "my_database.db"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := logging.New(os.Getenv("LOG_LEVEL"), "info")
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // flushes buffer, if any

	connStr := defaultDbFileName
	if len(os.Args) > 1 {
		connStr = os.Args[1]
	}

	if err := run(ctx, logger, connStr); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *zap.Logger, connStr string) error {
	config, err := relang.ParseConnectionString(connStr)
	if err != nil {
		return err
	}

	aManager, err := relang.OpenWithLogger(config, logger)
	if err != nil {
		return err
	}

	aPage, err := aManager.CreatePage(ctx, 0)
	if err != nil {
		aManager.Close()
		return err
	}

	if _, err := aPage.Insert(relang.Str("Hello, World!")); err != nil {
		aManager.Close()
		return err
	}

	if err := aManager.WritePage(ctx, aPage); err != nil {
		aManager.Close()
		return err
	}

	aPage, err = aManager.ReadPage(ctx, aPage.Header.PageID)
	if err != nil {
		aManager.Close()
		return err
	}

	if value, ok := aPage.Read(0); ok {
		fmt.Println(value)
	}

	return aManager.Close()
}
