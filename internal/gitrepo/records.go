package gitrepo

import "strings"

const (
	fieldSeparatorConstant       = "\x00"
	recordSentinelConstant       = "\x1f"
	recordLeadingNewlineConstant = "\n"
)

// splitSentinelRecords divides a ref enumeration response into per-record
// strings. Records are delimited by the unit separator sentinel because field
// payloads may contain embedded newlines; the segment after the final sentinel
// is a trailing artifact and is always dropped. Every record after the first
// carries one leading newline left over from the sentinel concatenation, which
// is stripped here so callers receive clean field sequences.
func splitSentinelRecords(response string) []string {
	segments := strings.Split(response, recordSentinelConstant)
	if len(segments) == 0 {
		return nil
	}

	segments = segments[:len(segments)-1]
	records := make([]string, 0, len(segments))
	for segmentIndex, segment := range segments {
		if segmentIndex > 0 {
			segment = strings.TrimPrefix(segment, recordLeadingNewlineConstant)
		}
		records = append(records, segment)
	}
	return records
}

// splitRecordFields divides a single record into its positional fields.
func splitRecordFields(record string) []string {
	return strings.Split(record, fieldSeparatorConstant)
}

// splitLineRecords divides a newline-delimited response into records,
// discarding the empty segment produced by the trailing newline.
func splitLineRecords(response string) []string {
	lines := strings.Split(response, recordLeadingNewlineConstant)
	records := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		records = append(records, line)
	}
	return records
}
