package search

// SplitLines splits content into lines, handling both \n and \r\n line endings.
// Lines are returned without their terminator. A trailing terminator does not
// produce a trailing empty line, and empty content yields no lines.
func SplitLines(content string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		end := i
		if end > start && content[end-1] == '\r' {
			end--
		}
		lines = append(lines, content[start:end])
		start = i + 1
	}
	if start < len(content) {
		lines = append(lines, content[start:])
	}
	return lines
}
