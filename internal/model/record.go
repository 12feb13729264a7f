package model

import (
	"encoding/json"
	"maps"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// DataRecord is one row of /api/all_data. Only timestamp and operator carry
// meaning for the timeline; every other column is kept in Fields.
type DataRecord struct {
	Timestamp Date           `mapstructure:"timestamp"`
	Operator  string         `mapstructure:"operator"`
	Fields    map[string]any `mapstructure:",remain"`
}

var dateType = reflect.TypeOf(Date{})

// dateHook converts strings and epoch milliseconds into Date values.
func dateHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != dateType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		d, err := ParseDate(v)
		if err != nil {
			zap.L().Debug("model: ignoring unparsable record date", zap.String("value", v))
			return Date{}, nil
		}
		return d, nil
	case float64:
		return DateOf(time.UnixMilli(int64(v)).UTC()), nil
	case int64:
		return DateOf(time.UnixMilli(v).UTC()), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, eris.Wrap(err, "model: epoch timestamp")
		}
		return DateOf(time.UnixMilli(n).UTC()), nil
	}
	return data, nil
}

// DecodeRecord converts a loosely typed row into a DataRecord.
func DecodeRecord(row map[string]any) (DataRecord, error) {
	var rec DataRecord
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       dateHook,
		WeaklyTypedInput: true,
		Result:           &rec,
	})
	if err != nil {
		return DataRecord{}, eris.Wrap(err, "model: build record decoder")
	}
	if err := dec.Decode(row); err != nil {
		return DataRecord{}, eris.Wrap(err, "model: decode record")
	}
	return rec, nil
}

// UnmarshalJSON decodes a JSON object row.
func (r *DataRecord) UnmarshalJSON(data []byte) error {
	var row map[string]any
	if err := json.Unmarshal(data, &row); err != nil {
		return eris.Wrap(err, "model: decode record row")
	}
	rec, err := DecodeRecord(row)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// Row flattens the record back into a single column map.
func (r DataRecord) Row() map[string]any {
	row := make(map[string]any, len(r.Fields)+2)
	maps.Copy(row, r.Fields)
	row["timestamp"] = r.Timestamp
	row["operator"] = r.Operator
	return row
}

// MarshalJSON encodes the record as a flat object.
func (r DataRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Row())
}

// MarshalYAML encodes the record as a flat mapping.
func (r DataRecord) MarshalYAML() (any, error) {
	return r.Row(), nil
}
