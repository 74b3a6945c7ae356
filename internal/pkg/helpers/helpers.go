package helpers

// StringPtr returns a pointer to the given string, or nil for the empty string.
// Used for the optional course variant columns (room, platform).
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
