package timelog

import (
	"bytes"
	"encoding/json"
)

// Encode serializes the log to its JSON document. Completed is always an
// array, even when empty.
func Encode(log *Log) ([]byte, error) {
	doc := Log{}
	if log != nil {
		doc = *log
	}
	if doc.Completed == nil {
		doc.Completed = []Session{}
	}
	return json.Marshal(doc)
}

// Decode parses a JSON document produced by Encode. Empty input is an empty log.
func Decode(data []byte) (*Log, error) {
	log := &Log{}
	if len(bytes.TrimSpace(data)) == 0 {
		return log, nil
	}
	if err := json.Unmarshal(data, log); err != nil {
		return nil, err
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}
	return log, nil
}
