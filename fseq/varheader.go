// SPDX-License-Identifier: EPL-2.0

package fseq

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
)

// Record is one variable header entry: a two-byte ASCII tag code plus
// an opaque value. Textual tags carry a trailing NUL in the value.
type Record struct {
	Tag   string
	Value []byte
}

// TextRecord builds a Record whose value is text plus the trailing NUL
// the sequence players expect on string tags.
func TextRecord(tag, text string) Record {
	return Record{
		Tag:   tag,
		Value: append([]byte(text), 0),
	}
}

// VariableHeader serializes records in order: tag bytes, little-endian
// u16 value length, value bytes. Tags must be exactly two ASCII bytes.
func VariableHeader(records ...Record) []byte {
	var buf bytes.Buffer

	for _, rec := range records {
		buf.WriteString(rec.Tag)

		var size [2]byte
		binary.LittleEndian.PutUint16(size[:], uint16(len(rec.Value)))
		buf.Write(size[:])

		buf.Write(rec.Value)
	}

	return buf.Bytes()
}

// MediaVariableHeader builds the two-record variable header this
// encoder writes: the source media filename under TagMediaFile and the
// Producer string under TagSequenceProducer. Only the base name of
// mediaPath is stored.
func MediaVariableHeader(mediaPath string) []byte {
	return VariableHeader(
		TextRecord(TagMediaFile, filepath.Base(mediaPath)),
		TextRecord(TagSequenceProducer, Producer),
	)
}
