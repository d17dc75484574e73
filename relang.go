// Package relang is a minimal disk-based record store: fixed-size slotted
// pages holding tagged values, kept in a single page file.
package relang

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/MarcosHelbert/relang/internal/pkg/logging"
	"github.com/MarcosHelbert/relang/internal/storage"
)

const PageSize = storage.PageSize

type (
	Manager    = storage.Manager
	Page       = storage.Page
	PageHeader = storage.PageHeader
	PageID     = storage.PageID
	Value      = storage.Value
	Kind       = storage.Kind
)

const (
	KindInt  = storage.KindInt
	KindBool = storage.KindBool
	KindStr  = storage.KindStr
)

var (
	Int  = storage.Int
	Bool = storage.Bool
	Str  = storage.Str

	ErrPageFull       = storage.ErrPageFull
	ErrRecordLimit    = storage.ErrRecordLimit
	ErrEncode         = storage.ErrEncode
	ErrDecode         = storage.ErrDecode
	ErrShortRead      = storage.ErrShortRead
	ErrPageOutOfRange = storage.ErrPageOutOfRange
	ErrClosed         = storage.ErrClosed
)

// Open parses connStr (see ParseConnectionString) and opens the page file
// it names. The returned manager logs through a logger built from the
// connection's log_level.
func Open(connStr string) (*Manager, error) {
	config, err := ParseConnectionString(connStr)
	if err != nil {
		return nil, err
	}

	logConf := logging.DefaultConfig()
	logConf.Level = config.GetZapLevel()
	logger, err := logConf.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return OpenWithLogger(config, logger)
}

func OpenWithLogger(config *Config, logger *zap.Logger) (*Manager, error) {
	aManager, err := storage.Open(
		config.FilePath,
		storage.WithLogger(logger.With(zap.String("file", config.FilePath))),
		storage.WithSyncOnWrite(config.SyncOnWrite),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open page file: %w", err)
	}
	return aManager, nil
}
