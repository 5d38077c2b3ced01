package bptree

import "github.com/ssargent/bptreedb/pkg/record"

func recInt(v int32) *record.Record {
	return record.MakeInt(v)
}

func recData(b []byte) *record.Record {
	return record.MakeData(b)
}
