package api

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/ssargent/bptreedb/pkg/record"
)

func parseRecordJSON(req InsertRequest) (*record.Record, error) {
	switch req.Kind {
	case "int":
		v, err := strconv.ParseInt(req.Value, 10, 32)
		if err != nil {
			return nil, errors.Wrap(err, "parsing int value")
		}
		return record.MakeInt(int32(v)), nil
	case "float":
		v, err := strconv.ParseFloat(req.Value, 64)
		if err != nil {
			return nil, errors.Wrap(err, "parsing float value")
		}
		return record.MakeFloat(v), nil
	case "char":
		if len(req.Value) != 1 {
			return nil, errors.New("char value must be exactly one byte")
		}
		return record.MakeChar(req.Value[0]), nil
	case "data", "":
		return record.MakeData([]byte(req.Value)), nil
	default:
		return nil, errors.Newf("unknown kind %q", req.Kind)
	}
}

// recordJSON flattens a record into a JSON-friendly shape: kind plus
// the one meaningful field.
func recordJSON(r *record.Record) map[string]interface{} {
	out := map[string]interface{}{"kind": r.Kind.String()}
	switch r.Kind {
	case record.Int:
		out["value"] = r.Int
	case record.Float:
		out["value"] = r.Float
	case record.Char:
		out["value"] = string(r.Char)
	case record.Data:
		out["value"] = string(r.Bytes)
	}
	return out
}
