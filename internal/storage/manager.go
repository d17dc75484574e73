package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
)

type DBFile interface {
	io.ReadSeeker
	io.ReaderAt
	io.WriterAt
	io.Closer
	Sync() error
}

// Manager maps page ids to fixed offsets in a single backing file. Page ids
// are handed out sequentially and never reused.
type Manager struct {
	file        DBFile
	pageCount   uint64
	logger      *zap.Logger
	syncOnWrite bool
	closed      bool

	mu sync.Mutex
}

// Open opens the page file at path, creating it if it does not exist.
func Open(path string, opts ...Option) (*Manager, error) {
	dbFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return nil, fmt.Errorf("open page file: %w", err)
	}

	aManager, err := NewManager(dbFile, opts...)
	if err != nil {
		dbFile.Close()
		return nil, err
	}

	return aManager, nil
}

func NewManager(file DBFile, opts ...Option) (*Manager, error) {
	aManager := &Manager{
		file:   file,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(aManager)
	}

	fileSize, err := aManager.file.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("stat page file: %w", err)
	}

	if fileSize%PageSize != 0 {
		return nil, fmt.Errorf("%w: %d", ErrMisalignedFile, fileSize)
	}
	aManager.pageCount = uint64(fileSize / PageSize)

	aManager.logger.Debug("opened page file", zap.Uint64("page_count", aManager.pageCount))

	return aManager, nil
}

func (m *Manager) PageCount() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pageCount
}

func (m *Manager) ReadPage(ctx context.Context, id PageID) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}
	if uint64(id) >= m.pageCount {
		return nil, fmt.Errorf("%w: %d, number of pages: %d", ErrPageOutOfRange, id, m.pageCount)
	}

	buf := make([]byte, PageSize)
	n, err := m.file.ReadAt(buf, int64(id)*PageSize)
	if n < PageSize {
		if err == nil || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: page %d, got %d bytes", ErrShortRead, id, n)
		}
		return nil, fmt.Errorf("read page %d: %w", id, err)
	}

	aPage, err := UnmarshalPage(buf)
	if err != nil {
		return nil, fmt.Errorf("read page %d: %w", id, err)
	}
	if aPage.Header.PageID != id {
		return nil, fmt.Errorf("%w: read page %d, header says %d", ErrPageIDMismatch, id, aPage.Header.PageID)
	}

	m.logger.Debug("read page", zap.Uint64("page_id", uint64(id)))

	return aPage, nil
}

// WritePage overwrites the page's slot in the file. It never extends the
// file; new pages come from CreatePage.
func (m *Manager) WritePage(ctx context.Context, aPage *Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if uint64(aPage.Header.PageID) >= m.pageCount {
		return fmt.Errorf("%w: %d, number of pages: %d", ErrPageOutOfRange, aPage.Header.PageID, m.pageCount)
	}

	return m.writePage(aPage)
}

// CreatePage allocates the next page id and persists an empty page for it
// before returning.
func (m *Manager) CreatePage(ctx context.Context, pageType uint8) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	id := PageID(m.pageCount)
	m.pageCount += 1

	aPage := NewPage(pageType, id)
	if err := m.writePage(aPage); err != nil {
		m.pageCount -= 1
		m.logger.Warn("failed to persist new page", zap.Uint64("page_id", uint64(id)), zap.Error(err))
		return nil, err
	}

	m.logger.Debug("created page", zap.Uint64("page_id", uint64(id)), zap.Uint8("page_type", pageType))

	return aPage, nil
}

// Flush commits written pages to stable storage.
func (m *Manager) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	return m.sync()
}

// Close flushes and closes the backing file. The manager cannot be used
// afterwards.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	m.closed = true

	syncErr := m.sync()
	if err := m.file.Close(); err != nil {
		return errors.Join(syncErr, fmt.Errorf("close page file: %w", err))
	}

	m.logger.Debug("closed page file", zap.Uint64("page_count", m.pageCount))

	return syncErr
}

// writePage must be called with the lock held.
func (m *Manager) writePage(aPage *Page) error {
	buf, err := aPage.Marshal(make([]byte, PageSize))
	if err != nil {
		return fmt.Errorf("error marshaling page %d: %w", aPage.Header.PageID, err)
	}

	if _, err := m.file.WriteAt(buf, int64(aPage.Header.PageID)*PageSize); err != nil {
		return fmt.Errorf("error writing page %d: %w", aPage.Header.PageID, err)
	}

	if m.syncOnWrite {
		if err := m.sync(); err != nil {
			return err
		}
	}

	m.logger.Debug("wrote page", zap.Uint64("page_id", uint64(aPage.Header.PageID)))

	return nil
}

func (m *Manager) sync() error {
	if err := m.file.Sync(); err != nil {
		return fmt.Errorf("sync page file: %w", err)
	}
	return nil
}
