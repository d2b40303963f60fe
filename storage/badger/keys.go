package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/kartolab/marshrutka/core"
)

// Key prefixes for different data types
const (
	poiRecordPrefix   = "poirec"
	poiOrderPrefix    = "poiord"
	poiOrderRevPrefix = "poiordr"
	poiCategoryPrefix = "poicat"
	poiOrderSeq       = "poiordseq"
	synonymPrefix     = "syngrp"
)

// makePOIKey generates a key for a POI by ID.
func makePOIKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", poiRecordPrefix, id))
}

// makePOIOrderKey generates a composite key for the catalog order index.
// Format: prefix:seq
func makePOIOrderKey(seq uint64) []byte {
	prefix := poiOrderPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for the sequence number
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makePOIOrderRevKey generates a key mapping a POI ID back to its catalog
// order sequence number.
func makePOIOrderRevKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", poiOrderRevPrefix, id))
}

// makePOICategoryKey generates a composite key for the category index.
// Format: prefix:category:seq
func makePOICategoryKey(category string, seq uint64) []byte {
	prefix := poiCategoryPrefix + ":" + category + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for the sequence number
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makePartialPOICategoryKey generates the scan prefix for one category.
func makePartialPOICategoryKey(category string) []byte {
	return []byte(poiCategoryPrefix + ":" + category + ":")
}

// makeSynonymKey generates a key for a synonym group by its canonical key.
func makeSynonymKey(key string) []byte {
	return []byte(fmt.Sprintf("%s:%s", synonymPrefix, key))
}

// marshalSeq encodes a sequence number for the reverse order index value.
func marshalSeq(seq uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, seq)
	return buf
}
