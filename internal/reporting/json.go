package reporting

import "encoding/json"

// RenderJSON serializes the report as 4-space-indented JSON. This is the
// persisted structured artifact; values are written at full precision,
// display rounding happens only in the text renderer.
func RenderJSON(r *Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}
