package config

import (
	"fmt"
)

type DatasetKeyStruct struct {
	Prefix string
}

var DatasetKey = &DatasetKeyStruct{
	Prefix: "gradebook:dataset",
}

// CollectionKey returns the Redis key holding the JSON array of one collection
func (k *DatasetKeyStruct) CollectionKey(size, entity string) string {
	return fmt.Sprintf("%s:%s:%s", k.Prefix, size, entity)
}
