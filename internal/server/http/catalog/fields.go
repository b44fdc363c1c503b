package catalog

import (
	"encoding/json"
	"strings"
)

// project narrows a response payload to the comma-separated field list of
// the `fields` query parameter. Unknown names are ignored; an empty list
// returns the payload untouched. Selection happens on the serialized
// form, so it can never expose a field the JSON shape does not already
// carry.
func project(data interface{}, fieldsParam string) interface{} {
	if fieldsParam == "" {
		return data
	}

	fields := map[string]struct{}{}
	for _, f := range strings.Split(fieldsParam, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields[f] = struct{}{}
		}
	}
	if len(fields) == 0 {
		return data
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return data
	}

	var asList []map[string]interface{}
	if err := json.Unmarshal(raw, &asList); err == nil {
		projected := make([]map[string]interface{}, 0, len(asList))
		for _, item := range asList {
			projected = append(projected, pick(item, fields))
		}
		return projected
	}

	var asObject map[string]interface{}
	if err := json.Unmarshal(raw, &asObject); err == nil {
		return pick(asObject, fields)
	}

	return data
}

func pick(item map[string]interface{}, fields map[string]struct{}) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for name := range fields {
		if value, ok := item[name]; ok {
			out[name] = value
		}
	}
	return out
}
