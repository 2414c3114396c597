package service

import "strconv"

func formatUserID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// ParseUserID converts a session subject back into a user id.
func ParseUserID(sub string) (int64, bool) {
	id, err := strconv.ParseInt(sub, 10, 64)
	return id, err == nil
}
