package arbor

/*
bucketOffsets turns the winning split's per-category histogram (left
in headerLive by the selection scan) into bucket boundaries: the
exclusive prefix sum shifted by start, so that bucket i of the
partitioned range occupies rowIdx[offsets[i]:offsets[i+1]] and
offsets[k] is the end of the range.
*/
func (b *builder) bucketOffsets(start, categories int) []int {
	offsets := make([]int, categories+1)
	offsets[0] = start
	for i := 0; i < categories; i++ {
		offsets[i+1] = offsets[i] + b.headerLive[i]
	}
	return offsets
}

/*
partition reorders rowIdx[start:end) in place so that the rows of
each category of the attribute column col become contiguous, bucket i
exactly filling rowIdx[offsets[i]:offsets[i+1]]. It is a stable
two-pass scatter: the range is copied to the scratch permutation and
written back bucket by bucket, preserving the relative order of rows
within a bucket.
*/
func (b *builder) partition(col, start, end int, offsets []int) {
	copy(b.rowScratch[start:end], b.rowIdx[start:end])
	cursor := make([]int, len(offsets)-1)
	copy(cursor, offsets[:len(offsets)-1])
	for _, r := range b.rowScratch[start:end] {
		bucket := int(b.at(col, r))
		b.rowIdx[cursor[bucket]] = r
		cursor[bucket]++
	}
}
