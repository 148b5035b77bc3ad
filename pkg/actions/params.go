package actions

func stringParam(params map[string]any, name string) string {
	if v, ok := params[name].(string); ok {
		return v
	}
	return ""
}

func intParam(params map[string]any, name string, fallback int) int {
	// JSON numbers decode as float64.
	if v, ok := params[name].(float64); ok && v > 0 {
		return int(v)
	}
	return fallback
}
