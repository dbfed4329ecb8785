package internal

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spaolacci/murmur3"

	"github.com/jateen67/skewq/utils"
)

const (
	SNAPSHOT_FILE_EXTENSION string = ".snap"
	snapshotFooterSize      int    = 8
)

/*
notes:
a snapshot is one file per topic:
	-> a linear sequence of encoded entries, highest priority first
	-> an 8 byte murmur3 footer over the whole entry block

entries are written in pop order from a deep copy, so taking a snapshot
leaves the live queue untouched and restoring is just pushing them back
*/

func snapshotPath(dir, topic string) string {
	return filepath.Join(dir, topic+SNAPSHOT_FILE_EXTENSION)
}

// WriteSnapshot persists a copy of q to dir/<topic>.snap
func WriteSnapshot(dir, topic string, q *SkewHeap[Entry]) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	for _, e := range q.Copy().Drain() {
		buf.Write(e.EncodeEntry())
	}

	footer := make([]byte, snapshotFooterSize)
	binary.LittleEndian.PutUint64(footer, murmur3.Sum64(buf.Bytes()))

	file, err := os.Create(snapshotPath(dir, topic))
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer file.Close()

	return writeToFile(append(buf.Bytes(), footer...), file)
}

// ReadSnapshot loads dir/<topic>.snap and returns its entries, highest
// priority first. Any integrity failure reports utils.ErrSnapshotCorrupted.
func ReadSnapshot(dir, topic string) ([]Entry, error) {
	data, err := os.ReadFile(snapshotPath(dir, topic))
	if err != nil {
		return nil, err
	}
	if len(data) < snapshotFooterSize {
		return nil, utils.ErrSnapshotCorrupted
	}

	block := data[:len(data)-snapshotFooterSize]
	footer := data[len(data)-snapshotFooterSize:]
	if murmur3.Sum64(block) != binary.LittleEndian.Uint64(footer) {
		return nil, utils.ErrSnapshotCorrupted
	}

	var entries []Entry
	for offset := 0; offset < len(block); {
		var e Entry
		if err := e.DecodeEntry(block[offset:]); err != nil {
			return nil, err
		}
		entries = append(entries, e)
		offset += e.EncodedSize()
	}
	return entries, nil
}

// RestoreTopic reloads a snapshot into the store's topic queue and reports
// how many entries came back
func RestoreTopic(dir, topic string, qs *QueueStore) (int, error) {
	entries, err := ReadSnapshot(dir, topic)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		qs.Push(topic, e)
	}
	return len(entries), nil
}

func writeToFile(data []byte, file *os.File) error {
	if _, err := file.Write(data); err != nil {
		return err
	}
	if err := file.Sync(); err != nil {
		return err
	}
	return nil
}
