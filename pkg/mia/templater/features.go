package templater

// Feature is a build-time toggle in the skeleton sources. Lines guarded by a
// marker are commented out with a sentinel; stripping the sentinels of the
// active variant turns those lines back into code.
type Feature struct {
	Name string
	// On guards code used while the feature is enabled.
	On string
	// Off guards code used while the feature is disabled. Empty if none.
	Off string
}

// Features lists the toggles known to the skeleton, in mapping order.
var Features = []Feature{
	{Name: "fullscreen", On: "USE_FULLSCREEN", Off: "USE_WINDOW"},
	{Name: "admob", On: "USE_ADMOB"},
	{Name: "billing", On: "USE_BILLING"},
}

// LookupFeature returns the feature called name.
func LookupFeature(name string) (Feature, bool) {
	for _, f := range Features {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// Marker returns the marker of the variant that is active for enabled.
func (f Feature) Marker(enabled bool) string {
	if enabled {
		return f.On
	}
	return f.Off
}

// Sentinels returns the comment sentinels wrapping lines guarded by marker,
// for C-like code, shell/make files and XML markup.
func Sentinels(marker string) []string {
	tag := "@@@" + marker + "@@@"
	return []string{
		"//" + tag,
		"#" + tag,
		"<!--" + tag,
		tag + "-->",
	}
}

// strip adds rules removing the sentinels of f's active variant.
func (f Feature) strip(m *Mapping, enabled bool) {
	marker := f.Marker(enabled)
	if marker == "" {
		return
	}
	for _, s := range Sentinels(marker) {
		m.Add(s, "")
	}
}
