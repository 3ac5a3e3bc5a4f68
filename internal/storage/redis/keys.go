package redis

import (
	"fmt"

	"github.com/mcoot/mcmonitor/internal/model"
)

// Key prefix for all directory data
const keyPrefix = "mcmon"

// serverKey returns the Redis key for a Server row
func serverKey(id model.ServerID) string {
	return fmt.Sprintf("%s:server:%s", keyPrefix, id)
}

// serverIndexKey returns the sorted set of server ids, scored by insertion sequence
func serverIndexKey() string {
	return fmt.Sprintf("%s:idx:servers", keyPrefix)
}

// serverSeqKey returns the counter used to score the server index
func serverSeqKey() string {
	return fmt.Sprintf("%s:seq:servers", keyPrefix)
}
