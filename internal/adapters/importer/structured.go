package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/timesheet-service/internal/domain/timesheet"
)

func decodeJSONRecords(data []byte) ([]map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fileError(fmt.Sprintf("invalid json: %v", err))
	}
	return toRecords(doc)
}

func decodeYAMLRecords(data []byte) ([]map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fileError(fmt.Sprintf("invalid yaml: %v", err))
	}
	return toRecords(doc)
}

// toRecords accepts a list of objects or an object with an "entries" list.
func toRecords(doc any) ([]map[string]any, error) {
	if obj, ok := doc.(map[string]any); ok {
		list, found := obj["entries"]
		if !found {
			return nil, fileError(`object has no "entries" list`)
		}
		doc = list
	}

	list, ok := doc.([]any)
	if !ok {
		return nil, fileError("expected a list of entries")
	}

	records := make([]map[string]any, len(list))
	for i, item := range list {
		rec, ok := item.(map[string]any)
		if !ok {
			return nil, fileError(fmt.Sprintf("entry %d is not an object", i))
		}
		records[i] = rec
	}
	return records, nil
}

// cellString renders a decoded scalar as cell text. Floats use the shortest
// representation that round-trips, so 7.75 stays "7.75".
func cellString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(timesheet.DateLayout)
	default:
		return fmt.Sprint(v)
	}
}
