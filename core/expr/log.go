// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package expr

import "fmt"

// LogEntry is an EVM log record: an emitting address, data buffer, and
// indexed topics.
type LogEntry struct {
	Addr   AddrTerm
	Data   BufTerm
	Topics []Word
}

func (LogEntry) isLog()    {}
func (LogEntry) Sort() Sort { return SortLog }
func (l LogEntry) String() string {
	s := fmt.Sprintf("LogEntry(%s,%s,[", l.Addr.String(), l.Data.String())
	for i, t := range l.Topics {
		if i > 0 {
			s += ","
		}
		s += t.String()
	}
	return s + "])"
}
