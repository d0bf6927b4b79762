package gql

// Helpers for pulling typed values out of the coerced argument maps
// graphql-go hands to resolvers. Non-null enforcement is the schema's job;
// these only convert what is present.

func argInt64(args map[string]interface{}, key string) int64 {
	if v, ok := args[key].(int); ok {
		return int64(v)
	}
	return 0
}

func argMap(args map[string]interface{}, key string) map[string]interface{} {
	if m, ok := args[key].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}

func optString(m map[string]interface{}, key string) *string {
	if v, ok := m[key].(string); ok {
		return &v
	}
	return nil
}

func optBool(m map[string]interface{}, key string) *bool {
	if v, ok := m[key].(bool); ok {
		return &v
	}
	return nil
}

func optInt(m map[string]interface{}, key string) *int {
	if v, ok := m[key].(int); ok {
		return &v
	}
	return nil
}

func optInt64(m map[string]interface{}, key string) *int64 {
	if v, ok := m[key].(int); ok {
		id := int64(v)
		return &id
	}
	return nil
}

func int64List(v interface{}) []int64 {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]int64, 0, len(list))
	for _, item := range list {
		if n, ok := item.(int); ok {
			out = append(out, int64(n))
		}
	}
	return out
}

func mapList(v interface{}) []map[string]interface{} {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
