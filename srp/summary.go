package srp

// EntryResult records the outcome of one manifest line. A malformed line
// produces a result with a zero Entry and the parse error; a copy attempt
// produces a result with the entry, its destination, and the bytes written.
type EntryResult struct {
	Entry       Entry
	Destination string
	Bytes       int64
	Err         error
}

// Summary reports one engine run. Malformed lines are recorded in Results but
// never counted as attempted entries.
type Summary struct {
	Attempted int
	Succeeded int
	Failed    int
	Malformed int
	Results   []EntryResult
}

func (s *Summary) record(r EntryResult) {
	s.Results = append(s.Results, r)
	if (r.Entry == Entry{}) {
		s.Malformed++
		return
	}
	s.Attempted++
	if r.Err == nil {
		s.Succeeded++
	} else {
		s.Failed++
	}
}
