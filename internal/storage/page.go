package storage

import (
	"fmt"
)

const (
	PageSize = 4096 // 4 kilobytes

	// MaxRecords caps the slot table at 1024 bytes.
	MaxRecords = 512

	slotSize = 2
)

type PageID uint64

// Page is a slotted page. The slot table grows up from the header while the
// record area grows down from the end of the page:
//
//	[ header ][ slot 0 | slot 1 | ... ][ free space ][ ... record 1 | record 0 ]
//	0         PageHeaderSize           ^             ^                         4096
//	                                   slotTableEnd  FreeSpaceOffset
type Page struct {
	Header PageHeader
	data   [PageSize]byte
}

func NewPage(pageType uint8, id PageID) *Page {
	aPage := &Page{
		Header: PageHeader{
			PageType:        pageType,
			PageID:          id,
			FreeSpaceOffset: PageSize,
		},
	}
	aPage.Header.Marshal(aPage.data[:])
	return aPage
}

// Create a deep copy of the page
func (p *Page) Clone() *Page {
	pageCopy := &Page{Header: p.Header}
	pageCopy.data = p.data
	return pageCopy
}

// FreeSpace returns the number of unused bytes between the slot table and
// the record area.
func (p *Page) FreeSpace() int {
	return int(p.Header.FreeSpaceOffset) - p.Header.slotTableEnd()
}

// Insert appends v to the record area and returns its slot index. The page
// is left untouched when an error is returned.
func (p *Page) Insert(v Value) (uint16, error) {
	encoded, err := MarshalValue(v)
	if err != nil {
		return 0, err
	}

	if p.Header.RecordCount >= MaxRecords {
		return 0, ErrRecordLimit
	}

	slotPos := p.Header.slotTableEnd()
	if slotPos+slotSize > int(p.Header.FreeSpaceOffset) {
		return 0, ErrNoSlotSpace
	}

	dataPos := int(p.Header.FreeSpaceOffset) - len(encoded)
	if dataPos < slotPos+slotSize {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrNoRecordSpace, len(encoded)+slotSize, p.FreeSpace())
	}

	copy(p.data[dataPos:], encoded)
	marshalUint16(p.data[:], uint16(dataPos), uint64(slotPos))

	idx := p.Header.RecordCount
	p.Header.RecordCount += 1
	p.Header.FreeSpaceOffset = uint16(dataPos)
	p.Header.Marshal(p.data[:])

	return idx, nil
}

// Read returns the value stored in slot idx, or false when the slot does not
// exist or its bytes do not decode.
func (p *Page) Read(idx uint16) (Value, bool) {
	v, err := p.Record(idx)
	if err != nil {
		return Value{}, false
	}
	return v, true
}

// Record is like Read but reports why a slot could not be read.
func (p *Page) Record(idx uint16) (Value, error) {
	if idx >= p.Header.RecordCount {
		return Value{}, fmt.Errorf("%w: %d of %d", ErrSlotOutOfRange, idx, p.Header.RecordCount)
	}

	offset := int(unmarshalUint16(p.data[:], uint64(PageHeaderSize+int(idx)*slotSize)))
	if offset < int(p.Header.FreeSpaceOffset) || offset >= PageSize {
		return Value{}, fmt.Errorf("%w: slot %d points at %d", ErrCorruptSlot, idx, offset)
	}

	v, _, err := UnmarshalValue(p.data[offset:])
	if err != nil {
		return Value{}, fmt.Errorf("slot %d: %w", idx, err)
	}
	return v, nil
}

// Values returns every record in slot order.
func (p *Page) Values() ([]Value, error) {
	values := make([]Value, 0, p.Header.RecordCount)
	for idx := uint16(0); idx < p.Header.RecordCount; idx++ {
		v, err := p.Record(idx)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// Marshal writes the page into buf, which is grown to PageSize if needed.
func (p *Page) Marshal(buf []byte) ([]byte, error) {
	if !p.Header.valid() {
		return nil, fmt.Errorf("%w: page %d", ErrCorruptPage, p.Header.PageID)
	}

	if cap(buf) >= PageSize {
		buf = buf[:PageSize]
	} else {
		buf = make([]byte, PageSize)
	}

	p.Header.Marshal(buf)

	slotEnd := p.Header.slotTableEnd()
	copy(buf[PageHeaderSize:slotEnd], p.data[PageHeaderSize:slotEnd])
	clear(buf[slotEnd:p.Header.FreeSpaceOffset])
	copy(buf[p.Header.FreeSpaceOffset:], p.data[p.Header.FreeSpaceOffset:])

	return buf, nil
}

func (p *Page) Unmarshal(buf []byte) error {
	if len(buf) != PageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, len(buf))
	}

	var header PageHeader
	if _, err := header.Unmarshal(buf); err != nil {
		return err
	}
	if !header.valid() {
		return fmt.Errorf(
			"%w: record count %d, free space offset %d",
			ErrCorruptPage, header.RecordCount, header.FreeSpaceOffset,
		)
	}

	p.Header = header
	copy(p.data[:], buf)

	return nil
}

func UnmarshalPage(buf []byte) (*Page, error) {
	aPage := new(Page)
	if err := aPage.Unmarshal(buf); err != nil {
		return nil, err
	}
	return aPage, nil
}
