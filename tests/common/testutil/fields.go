//go:build unit || e2e

package testutil

// Field returns a mutation that sets key to value in a payload map built by
// DtoMap. A nil value removes the key, which is how tests drop a required
// field.
func Field(key string, value any) func(map[string]any) {
	return func(payload map[string]any) {
		if value == nil {
			delete(payload, key)
			return
		}
		payload[key] = value
	}
}
