// Package output renders analysis results as text reports or JSON.
package output

import "encoding/json"

// ToJSON serializes v (a Summary or WorkbookProfile) to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
