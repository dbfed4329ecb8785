package internal

import (
	"encoding/binary"
	"hash/crc32"

	"github.com/jateen67/skewq/utils"
)

/*
The snapshot format for each queue entry on disk is as follows:
-----------------------------------------------
| checksum | priority | payload_size | payload |
-----------------------------------------------
checksum and payload_size are 4 bytes each, priority is 8 bytes
*/
const entryHeaderSize = 16

// Entry is the element every topic queue stores: an opaque payload ranked by
// its priority. Higher priority surfaces first.
type Entry struct {
	Priority int64
	Payload  string
}

func entryLess(a, b Entry) bool {
	return a.Priority < b.Priority
}

func (e *Entry) EncodeEntry() []byte {
	data := make([]byte, e.EncodedSize())
	binary.LittleEndian.PutUint32(data[0:4], e.CalculateChecksum())
	binary.LittleEndian.PutUint64(data[4:12], uint64(e.Priority))
	binary.LittleEndian.PutUint32(data[12:16], uint32(len(e.Payload)))
	copy(data[entryHeaderSize:], e.Payload)
	return data
}

func (e *Entry) DecodeEntry(data []byte) error {
	if len(data) < entryHeaderSize {
		return utils.ErrSnapshotCorrupted
	}
	checkSum := binary.LittleEndian.Uint32(data[0:4])
	payloadSize := binary.LittleEndian.Uint32(data[12:16])
	// compare in int64 so a huge payload_size cannot wrap the bound
	if int64(len(data)) < int64(entryHeaderSize)+int64(payloadSize) {
		return utils.ErrSnapshotCorrupted
	}
	e.Priority = int64(binary.LittleEndian.Uint64(data[4:12]))
	e.Payload = string(data[entryHeaderSize : entryHeaderSize+int(payloadSize)])
	if e.CalculateChecksum() != checkSum {
		return utils.ErrSnapshotCorrupted
	}
	return nil
}

func (e *Entry) EncodedSize() int {
	return entryHeaderSize + len(e.Payload)
}

func (e *Entry) CalculateChecksum() uint32 {
	buf := make([]byte, 8+len(e.Payload))
	binary.LittleEndian.PutUint64(buf[0:8], uint64(e.Priority))
	copy(buf[8:], e.Payload)
	return crc32.ChecksumIEEE(buf)
}
