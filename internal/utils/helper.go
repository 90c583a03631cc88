package utils

import (
	"encoding/json"
	"net/http"
	"strings"
)

func WriteJSON(w http.ResponseWriter, code int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}

func WriteJSONError(w http.ResponseWriter, message string, code int) {
	_ = WriteJSON(w, code, map[string]string{"error": message})
}

// SplitCSV flattens repeated and comma separated values, dropping blanks
// and keeping first-seen order. ["a,b", " c ", "a"] gives [a b c].
func SplitCSV(values []string) []string {
	out := []string{}
	seen := make(map[string]struct{})

	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, dup := seen[part]; dup {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}
