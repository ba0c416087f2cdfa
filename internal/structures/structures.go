package structures

// NVL returns the first non-empty string of its arguments.
func NVL(s string, rest ...string) string {
	if s != "" {
		return s
	}
	for _, s = range rest {
		if s != "" {
			return s
		}
	}
	return ""
}
