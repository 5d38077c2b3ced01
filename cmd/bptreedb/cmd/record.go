package cmd

import (
	"fmt"
	"strconv"

	"github.com/ssargent/bptreedb/pkg/record"
)

func parseRecord(kind, value string) (*record.Record, error) {
	switch kind {
	case "int":
		v, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing int value %q: %w", value, err)
		}
		return record.MakeInt(int32(v)), nil
	case "float":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing float value %q: %w", value, err)
		}
		return record.MakeFloat(v), nil
	case "char":
		if len(value) != 1 {
			return nil, fmt.Errorf("char value must be exactly one byte, got %q", value)
		}
		return record.MakeChar(value[0]), nil
	case "data":
		return record.MakeData([]byte(value)), nil
	default:
		return nil, fmt.Errorf("unknown kind %q, want one of int, float, char, data", kind)
	}
}

func formatRecord(r *record.Record) string {
	switch r.Kind {
	case record.Int:
		return strconv.FormatInt(int64(r.Int), 10)
	case record.Float:
		return strconv.FormatFloat(r.Float, 'g', -1, 64)
	case record.Char:
		return string(r.Char)
	case record.Data:
		return string(r.Bytes)
	default:
		return fmt.Sprintf("<%s>", r.Kind)
	}
}
