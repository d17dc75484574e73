package storage

import (
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/MarcosHelbert/relang/internal/pkg/logging"
)

const testDbName = "test_pages_db"

var (
	gen = newDataGen(uint64(time.Now().Unix()))

	testLogger *zap.Logger
)

func init() {
	var err error
	testLogger, err = logging.New(os.Getenv("LOG_LEVEL"), "debug")
	if err != nil {
		panic(err)
	}
}

type dataGen struct {
	*gofakeit.Faker
}

func newDataGen(seed uint64) *dataGen {
	g := dataGen{
		Faker: gofakeit.New(seed),
	}

	return &g
}

func (g *dataGen) Value() Value {
	switch g.IntRange(0, 2) {
	case 0:
		return Int(g.Int32())
	case 1:
		return Bool(g.Bool())
	default:
		return Str(g.Sentence(g.IntRange(1, 8)))
	}
}

func (g *dataGen) Values(number int) []Value {
	values := make([]Value, 0, number)
	for range number {
		values = append(values, g.Value())
	}
	return values
}

func (g *dataGen) textOfLength(length int) string {
	txt := ""
	for len(txt) < length {
		txt += g.Sentence(10)
	}
	return txt[0:length]
}

func newTestManager(t *testing.T) (*Manager, *os.File) {
	t.Helper()

	dbFile, err := os.CreateTemp(t.TempDir(), testDbName)
	require.NoError(t, err)

	aManager, err := NewManager(dbFile, WithLogger(testLogger))
	require.NoError(t, err)

	return aManager, dbFile
}
