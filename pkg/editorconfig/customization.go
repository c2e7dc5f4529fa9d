package editorconfig

// Anonymous controls the name prompt shown to anonymous users.
type Anonymous struct {
	Request bool   `json:"request"`
	Label   string `json:"label"`
}

// GoBack configures the "Open file location" button.
type GoBack struct {
	Blank        bool   `json:"blank"`
	RequestClose bool   `json:"requestClose,omitempty"`
	Text         string `json:"text,omitempty"`
	URL          string `json:"url,omitempty"`
}

type Customer struct {
	Address string `json:"address,omitempty"`
	Info    string `json:"info,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Mail    string `json:"mail,omitempty"`
	Name    string `json:"name,omitempty"`
	WWW     string `json:"www,omitempty"`
}

type Logo struct {
	Image     string `json:"image,omitempty"`
	ImageDark string `json:"imageDark,omitempty"`
	URL       string `json:"url,omitempty"`
	Visible   *bool  `json:"visible,omitempty"`
}

type Review struct {
	HideReviewDisplay bool   `json:"hideReviewDisplay"`
	ShowReviewChanges bool   `json:"showReviewChanges"`
	ReviewDisplay     string `json:"reviewDisplay,omitempty"`
	TrackChanges      *bool  `json:"trackChanges,omitempty"`
	HoverMode         bool   `json:"hoverMode"`
}

type Features struct {
	Spellcheck *Spellcheck `json:"spellcheck,omitempty"`
}

type Spellcheck struct {
	Mode   bool `json:"mode"`
	Change bool `json:"change"`
}

// Macros modes.
const (
	MacrosDisable = "disable"
	MacrosWarn    = "warn"
	MacrosEnable  = "enable"
)

// Toolbar positions.
const (
	ToolbarTop    = "top"
	ToolbarBottom = "bottom"
)

type Customization struct {
	Anonymous           *Anonymous `json:"anonymous,omitempty"`
	Autosave            bool       `json:"autosave"`
	Comments            bool       `json:"comments"`
	CompactHeader       bool       `json:"compactHeader"`
	CompactToolbar      bool       `json:"compactToolbar"`
	CompatibleFeatures  bool       `json:"compatibleFeatures"`
	Customer            *Customer  `json:"customer,omitempty"`
	Features            *Features  `json:"features,omitempty"`
	Feedback            bool       `json:"feedback"`
	Forcesave           bool       `json:"forcesave"`
	GoBack              *GoBack    `json:"goback,omitempty"`
	Help                bool       `json:"help"`
	HideNotes           bool       `json:"hideNotes"`
	HideRightMenu       bool       `json:"hideRightMenu"`
	HideRulers          bool       `json:"hideRulers"`
	IntegrationMode     string     `json:"integrationMode,omitempty"`
	Logo                *Logo      `json:"logo,omitempty"`
	Macros              bool       `json:"macros"`
	MacrosMode          string     `json:"macrosMode,omitempty"`
	MentionShare        bool       `json:"mentionShare"`
	MobileForceView     bool       `json:"mobileForceView"`
	Plugins             bool       `json:"plugins"`
	Review              *Review    `json:"review,omitempty"`
	SubmitForm          bool       `json:"submitForm"`
	ToolbarHideFileName bool       `json:"toolbarHideFileName"`
	ToolbarNoTabs       bool       `json:"toolbarNoTabs"`
	UITheme             string     `json:"uiTheme,omitempty"`
	Unit                string     `json:"unit,omitempty"`
	Zoom                int        `json:"zoom,omitempty"`
}

// DefaultCustomization returns the editor defaults used when the host does
// not customise anything.
func DefaultCustomization() Customization {
	return Customization{
		Anonymous:       &Anonymous{Request: true, Label: "Guest"},
		Autosave:        true,
		Comments:        true,
		Help:            true,
		IntegrationMode: "embed",
		Macros:          true,
		MacrosMode:      MacrosWarn,
		MentionShare:    true,
		MobileForceView: true,
		Plugins:         true,
		Unit:            "cm",
		Zoom:            100,
	}
}
