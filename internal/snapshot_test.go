package internal

import (
	"encoding/binary"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jateen67/skewq/utils"
)

func TestEntryCodecRoundTrip(t *testing.T) {
	e := Entry{Priority: -42, Payload: "hello"}

	var decoded Entry
	require.NoError(t, decoded.DecodeEntry(e.EncodeEntry()))
	assert.Equal(t, e, decoded)
}

func TestEntryCodecRejectsOversizedPayloadSize(t *testing.T) {
	// a crafted record can claim more payload than the data holds; the
	// length check must fail cleanly rather than wrap and slice past the end
	data := make([]byte, entryHeaderSize)
	binary.LittleEndian.PutUint32(data[12:16], 0xffffffff)

	var decoded Entry
	err := decoded.DecodeEntry(data)
	assert.True(t, errors.Is(err, utils.ErrSnapshotCorrupted))
}

func TestEntryCodecRejectsBadChecksum(t *testing.T) {
	e := Entry{Priority: 1, Payload: "hello"}
	data := e.EncodeEntry()
	data[len(data)-1] ^= 0xff

	var decoded Entry
	err := decoded.DecodeEntry(data)
	assert.True(t, errors.Is(err, utils.ErrSnapshotCorrupted))
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()

	q := NewTopicQueue()
	q.Push(Entry{Priority: 2, Payload: "two"})
	q.Push(Entry{Priority: 9, Payload: "nine"})
	q.Push(Entry{Priority: 5, Payload: "five"})

	require.NoError(t, WriteSnapshot(dir, "jobs", q))

	// the live queue is untouched by the snapshot
	assert.Equal(t, 3, q.Size())
	top, err := q.Top()
	require.NoError(t, err)
	assert.Equal(t, "nine", top.Payload)

	entries, err := ReadSnapshot(dir, "jobs")
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Priority: 9, Payload: "nine"},
		{Priority: 5, Payload: "five"},
		{Priority: 2, Payload: "two"},
	}, entries)
}

func TestSnapshotRestore(t *testing.T) {
	dir := t.TempDir()

	q := NewTopicQueue()
	for i := int64(0); i < 20; i++ {
		q.Push(Entry{Priority: i, Payload: "p"})
	}
	require.NoError(t, WriteSnapshot(dir, "jobs", q))

	qs := NewQueueStore()
	n, err := RestoreTopic(dir, "jobs", qs)
	require.NoError(t, err)

	assert.Equal(t, 20, n)
	assert.Equal(t, 20, qs.Len("jobs"))
	top, err := qs.Top("jobs")
	require.NoError(t, err)
	assert.Equal(t, int64(19), top.Priority)
}

func TestSnapshotDetectsCorruption(t *testing.T) {
	dir := t.TempDir()

	q := NewTopicQueue()
	q.Push(Entry{Priority: 1, Payload: "x"})
	require.NoError(t, WriteSnapshot(dir, "jobs", q))

	path := snapshotPath(dir, "jobs")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[0] ^= 0xff
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err = ReadSnapshot(dir, "jobs")
	assert.True(t, errors.Is(err, utils.ErrSnapshotCorrupted))
}

func TestSnapshotEmptyQueue(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteSnapshot(dir, "empty", NewTopicQueue()))

	entries, err := ReadSnapshot(dir, "empty")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
