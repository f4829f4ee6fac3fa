package utilities

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/segmentio/ksuid"
)

// NewRecordID generates the store-assigned identifier for a new record.
// KSUIDs are globally unique and K-sortable, so id order follows insert order.
func NewRecordID() string {
	return ksuid.New().String()
}

// NewRequestID generates a snowflake ID string using a node ID from the
// environment variable SNOWFLAKE_NODE, defaulting to node 1. If the node
// cannot be initialized it falls back to a KSUID so a unique ID is still
// returned.
func NewRequestID() string {
	nodeID := int64(1)
	if nodeEnv := os.Getenv("SNOWFLAKE_NODE"); nodeEnv != "" {
		if parsed, err := strconv.ParseInt(nodeEnv, 10, 64); err == nil {
			nodeID = parsed
		}
	}
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return ksuid.New().String()
	}
	return node.Generate().String()
}
