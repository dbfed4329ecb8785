package utils

import "errors"

var (
	ErrEmptyQueue        = errors.New("queue is empty")
	ErrTopicNotFound     = errors.New("topic not found")
	ErrNodeNotFound      = errors.New("node not found")
	ErrSnapshotCorrupted = errors.New("snapshot corrupted")
)
