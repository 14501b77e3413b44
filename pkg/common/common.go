package common

import (
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/labstack/gommon/random"
	"github.com/spf13/cast"
)

const (
	NA       = "N/A"
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var snowflakeNode *snowflake.Node

func init() {
	nodeid := cast.ToInt64(os.Getenv("CLOTHESSTORE_NODE_ID"))
	if nodeid <= 0 || nodeid > 1023 {
		nodeid = 1
	}
	var err error
	snowflakeNode, err = snowflake.NewNode(nodeid)
	if err != nil {
		panic(err)
	}
}

// UUIDint64 returns a snowflake int64 id
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// UUID returns a snowflake id in base58 string form
func UUID() string {
	return snowflakeNode.Generate().Base58()
}

// GenerateCartID returns a short uppercase cart token of length n.
// Uniqueness is enforced by the store's unique index, callers retry on conflict.
func GenerateCartID(n int) string {
	if n <= 0 {
		n = 3
	}
	return random.String(uint8(n), random.Uppercase)
}
