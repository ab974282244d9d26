package utils

// ToStringSlice converts a decoded JSON claim into a string slice. A single
// string becomes a one element slice and non-string entries are skipped.
func ToStringSlice(v any) []string {
	stringSlice := make([]string, 0)
	switch vals := v.(type) {
	case string:
		if vals != "" {
			stringSlice = append(stringSlice, vals)
		}
	case []string:
		stringSlice = append(stringSlice, vals...)
	case []any:
		for _, v := range vals {
			if s, ok := v.(string); ok {
				stringSlice = append(stringSlice, s)
			}
		}
	}
	return stringSlice
}
