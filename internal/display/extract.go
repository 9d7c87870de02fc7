package display

import "fmt"

// Guarded readers for loosely-typed tool payloads. Inputs and results arrive
// as decoded JSON (map[string]any after transport) or as whatever the
// runtime handed over; every reader here is total and simply reports absence
// instead of panicking on shape mismatches.

// record narrows v to a structured object. Arrays, nil, and scalars all
// fail the narrowing.
func record(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

// stringField returns m[key] when it is a string.
func stringField(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// optString returns m[key] as a string, or "" when absent or mismatched.
func optString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// boolField returns m[key] when it is a bool.
func boolField(m map[string]any, key string) (bool, bool) {
	b, ok := m[key].(bool)
	return b, ok
}

// intField returns m[key] as an int. JSON decoding yields float64; runtime
// structs may carry native ints. Both are accepted.
func intField(m map[string]any, key string) (int, bool) {
	switch n := m[key].(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

// sliceField returns m[key] when it is an array.
func sliceField(m map[string]any, key string) ([]any, bool) {
	s, ok := m[key].([]any)
	return s, ok
}

// stringSliceField returns m[key] when it is an array whose every element is
// a string. A single non-string element fails the whole read.
func stringSliceField(m map[string]any, key string) ([]string, bool) {
	raw, ok := m[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// failureLines checks the one cross-tool result convention: success:false
// with a string error renders as a single error line that preempts any other
// preview content. Nil means the result is not an explicit failure.
func failureLines(result any) []string {
	m, ok := record(result)
	if !ok {
		return nil
	}
	success, ok := boolField(m, "success")
	if !ok || success {
		return nil
	}
	msg, ok := stringField(m, "error")
	if !ok {
		return nil
	}
	return []string{fmt.Sprintf("error: %s", msg)}
}
