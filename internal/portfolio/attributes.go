package portfolio

// AttributeSet is every presentation class the page derives from the
// theme flag.
type AttributeSet struct {
	Background      string `json:"background"`
	Text            string `json:"text"`
	TextSecondary   string `json:"text_secondary"`
	TextMuted       string `json:"text_muted"`
	Border          string `json:"border"`
	BorderSecondary string `json:"border_secondary"`
	Hover           string `json:"hover"`
	Focus           string `json:"focus"`
	Card            string `json:"card"`
	Overlay         string `json:"overlay"`

	AccentFill     string `json:"accent_fill"`
	GridStroke     string `json:"grid_stroke"`
	ScanVia        string `json:"scan_via"`
	GroupHoverText string `json:"group_hover_text"`
	Placeholder    string `json:"placeholder"`
	ToggleIcon     string `json:"toggle_icon"`
}

var (
	darkAttributes = AttributeSet{
		Background:      "bg-black",
		Text:            "text-white",
		TextSecondary:   "text-gray-300",
		TextMuted:       "text-gray-400",
		Border:          "border-white",
		BorderSecondary: "border-gray-600",
		Hover:           "hover:bg-white hover:text-black",
		Focus:           "focus:bg-white focus:text-black",
		Card:            "bg-black",
		Overlay:         "bg-black/90",
		AccentFill:      "bg-white",
		GridStroke:      "white",
		ScanVia:         "via-white/10",
		GroupHoverText:  "group-hover:text-black",
		Placeholder:     "placeholder-gray-400",
		ToggleIcon:      "sun",
	}
	lightAttributes = AttributeSet{
		Background:      "bg-gray-100",
		Text:            "text-gray-900",
		TextSecondary:   "text-gray-600",
		TextMuted:       "text-gray-500",
		Border:          "border-gray-900",
		BorderSecondary: "border-gray-400",
		Hover:           "hover:bg-gray-900 hover:text-gray-100",
		Focus:           "focus:bg-gray-900 focus:text-gray-100",
		Card:            "bg-gray-50",
		Overlay:         "bg-gray-100/90",
		AccentFill:      "bg-gray-900",
		GridStroke:      "#1f2937",
		ScanVia:         "via-gray-900/10",
		GroupHoverText:  "group-hover:text-gray-100",
		Placeholder:     "placeholder-gray-500",
		ToggleIcon:      "moon",
	}
)

// Attributes maps the theme flag to its presentation classes. Both
// branches are fully populated.
func Attributes(isDark bool) AttributeSet {
	if isDark {
		return darkAttributes
	}
	return lightAttributes
}
