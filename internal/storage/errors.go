package storage

import (
	"errors"
	"fmt"
)

var (
	ErrEncode   = errors.New("encode value")
	ErrDecode   = errors.New("decode value")
	ErrPageFull = errors.New("page full")

	ErrStringTooLong  = fmt.Errorf("%w: string exceeds %d bytes", ErrEncode, MaxStringLength)
	ErrInvalidString  = errors.New("string is not valid utf-8")
	ErrEmptyInput     = fmt.Errorf("%w: empty input", ErrDecode)
	ErrUnknownTag     = fmt.Errorf("%w: unknown tag", ErrDecode)
	ErrTruncatedValue = fmt.Errorf("%w: truncated value", ErrDecode)

	ErrRecordLimit   = fmt.Errorf("%w: record limit of %d reached", ErrPageFull, MaxRecords)
	ErrNoSlotSpace   = fmt.Errorf("%w: no space for slot entry", ErrPageFull)
	ErrNoRecordSpace = fmt.Errorf("%w: no space for record", ErrPageFull)

	ErrSlotOutOfRange  = errors.New("slot index out of range")
	ErrCorruptSlot     = errors.New("slot offset outside record area")
	ErrCorruptPage     = errors.New("corrupt page header")
	ErrInvalidPageSize = fmt.Errorf("page buffer must be exactly %d bytes", PageSize)

	ErrShortRead      = errors.New("short page read")
	ErrMisalignedFile = fmt.Errorf("db file size is not divisible by page size %d", PageSize)
	ErrPageOutOfRange = errors.New("page id out of range")
	ErrPageIDMismatch = errors.New("page header id does not match its file position")
	ErrClosed         = errors.New("page manager is closed")
)
