package scaffold

// WriteResult is the outcome of materializing one target path.
type WriteResult struct {
	Path string
	Err  error
}

// OK reports whether the write landed.
func (r WriteResult) OK() bool { return r.Err == nil }

// Failed counts the results that carry an error.
func Failed(results []WriteResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
