package storage

/*
Page header layout (little-endian, no padding):

	Offset  Size  Field
	0       1     PageType
	1       8     PageID
	9       2     RecordCount
	11      2     FreeSpaceOffset
	13      4     Checksum (reserved, always 0)
	17            PageHeaderSize
*/
const (
	headerOffPageType        = 0
	headerOffPageID          = 1
	headerOffRecordCount     = 9
	headerOffFreeSpaceOffset = 11
	headerOffChecksum        = 13

	PageHeaderSize = 17
)

type PageHeader struct {
	PageType        uint8
	PageID          PageID
	RecordCount     uint16
	FreeSpaceOffset uint16
	Checksum        uint32
}

func (h *PageHeader) Size() uint64 {
	return PageHeaderSize
}

func (h *PageHeader) Marshal(buf []byte) {
	buf[headerOffPageType] = h.PageType
	marshalUint64(buf, uint64(h.PageID), headerOffPageID)
	marshalUint16(buf, h.RecordCount, headerOffRecordCount)
	marshalUint16(buf, h.FreeSpaceOffset, headerOffFreeSpaceOffset)
	marshalUint32(buf, h.Checksum, headerOffChecksum)
}

func (h *PageHeader) Unmarshal(buf []byte) (uint64, error) {
	if len(buf) < PageHeaderSize {
		return 0, ErrCorruptPage
	}
	h.PageType = buf[headerOffPageType]
	h.PageID = PageID(unmarshalUint64(buf, headerOffPageID))
	h.RecordCount = unmarshalUint16(buf, headerOffRecordCount)
	h.FreeSpaceOffset = unmarshalUint16(buf, headerOffFreeSpaceOffset)
	h.Checksum = unmarshalUint32(buf, headerOffChecksum)

	return h.Size(), nil
}

// slotTableEnd is the first byte past the slot table.
func (h *PageHeader) slotTableEnd() int {
	return PageHeaderSize + int(h.RecordCount)*slotSize
}

func (h *PageHeader) valid() bool {
	return h.RecordCount <= MaxRecords &&
		h.slotTableEnd() <= int(h.FreeSpaceOffset) &&
		int(h.FreeSpaceOffset) <= PageSize
}
