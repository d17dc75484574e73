package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageHeader_Marshal(t *testing.T) {
	t.Parallel()

	header := PageHeader{
		PageType:        0x7a,
		PageID:          0x0102030405060708,
		RecordCount:     0x0201,
		FreeSpaceOffset: 0x0f00,
		Checksum:        0xdeadbeef,
	}

	buf := make([]byte, PageHeaderSize)
	header.Marshal(buf)

	expected := []byte{
		0x7a,                                           // page type
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01, // page id
		0x01, 0x02,                                     // record count
		0x00, 0x0f,                                     // free space offset
		0xef, 0xbe, 0xad, 0xde,                         // checksum
	}
	assert.Equal(t, expected, buf)

	var actual PageHeader
	n, err := actual.Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(PageHeaderSize), n)
	assert.Equal(t, header, actual)
}

func TestPageHeader_UnmarshalShortBuffer(t *testing.T) {
	t.Parallel()

	var header PageHeader
	_, err := header.Unmarshal(make([]byte, PageHeaderSize-1))
	assert.ErrorIs(t, err, ErrCorruptPage)
}

func TestPageHeader_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header PageHeader
		valid  bool
	}{
		{
			name:   "empty page",
			header: PageHeader{FreeSpaceOffset: PageSize},
			valid:  true,
		},
		{
			name:   "full slot table",
			header: PageHeader{RecordCount: MaxRecords, FreeSpaceOffset: PageHeaderSize + MaxRecords*slotSize},
			valid:  true,
		},
		{
			name:   "too many records",
			header: PageHeader{RecordCount: MaxRecords + 1, FreeSpaceOffset: PageSize},
			valid:  false,
		},
		{
			name:   "slot table overlaps records",
			header: PageHeader{RecordCount: 10, FreeSpaceOffset: PageHeaderSize + 19},
			valid:  false,
		},
		{
			name:   "free space offset past page end",
			header: PageHeader{FreeSpaceOffset: PageSize + 1},
			valid:  false,
		},
		{
			name:   "zeroed header",
			header: PageHeader{},
			valid:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.header.valid())
		})
	}
}
