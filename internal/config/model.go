package config

// Model is the unified representation of a settings file.
type Model struct {
	Marker    *string
	Suffix    *string
	Reverse   *bool
	Quiet     *bool
	Color     *bool
	LogLevel  *string
	LogFormat *string
	LogFile   *string
}

// Keys lists the setting names that are present in m, in declaration order.
func (m *Model) Keys() []string {
	if m == nil {
		return nil
	}
	var keys []string
	add := func(set bool, name string) {
		if set {
			keys = append(keys, name)
		}
	}
	add(m.Marker != nil, "marker")
	add(m.Suffix != nil, "suffix")
	add(m.Reverse != nil, "reverse")
	add(m.Quiet != nil, "quiet")
	add(m.Color != nil, "color")
	add(m.LogLevel != nil, "log_level")
	add(m.LogFormat != nil, "log_format")
	add(m.LogFile != nil, "log_file")
	return keys
}
