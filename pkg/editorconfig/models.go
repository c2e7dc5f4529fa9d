package editorconfig

// EditorType selects the editor layout.
type EditorType string

const (
	TypeDesktop  EditorType = "desktop"
	TypeMobile   EditorType = "mobile"
	TypeEmbedded EditorType = "embedded"
)

// Mode is the editor opening mode.
type Mode string

const (
	ModeEdit Mode = "edit"
	ModeView Mode = "view"
)

// CoEditingMode values.
const (
	CoEditingFast   = "fast"
	CoEditingStrict = "strict"
)

// Config is the object passed to the editor API script.
type Config struct {
	DocumentType string     `json:"documentType"`
	Type         EditorType `json:"type"`
	Width        string     `json:"width,omitempty"`
	Height       string     `json:"height,omitempty"`
	Document     Document   `json:"document"`
	EditorConfig Editor     `json:"editorConfig"`
	Token        string     `json:"token,omitempty"`
}

type Document struct {
	FileType      string         `json:"fileType"`
	Key           string         `json:"key"`
	Title         string         `json:"title"`
	URL           string         `json:"url"`
	Info          *Info          `json:"info,omitempty"`
	Permissions   Permissions    `json:"permissions"`
	ReferenceData *ReferenceData `json:"referenceData,omitempty"`
}

type Info struct {
	Owner    string `json:"owner,omitempty"`
	Uploaded string `json:"uploaded,omitempty"`
	Folder   string `json:"folder,omitempty"`
	Favorite *bool  `json:"favorite,omitempty"`
}

// ReferenceData links the document to the host storage for external links.
type ReferenceData struct {
	FileKey    string `json:"fileKey"`
	InstanceID string `json:"instanceId"`
}

type Editor struct {
	CallbackURL   string         `json:"callbackUrl,omitempty"`
	CoEditing     *CoEditing     `json:"coEditing,omitempty"`
	CreateURL     string         `json:"createUrl,omitempty"`
	Lang          string         `json:"lang,omitempty"`
	Mode          Mode           `json:"mode"`
	Region        string         `json:"region,omitempty"`
	User          *User          `json:"user,omitempty"`
	Customization *Customization `json:"customization,omitempty"`
}

type CoEditing struct {
	Mode   string `json:"mode"`
	Change bool   `json:"change"`
}

type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Group string `json:"group,omitempty"`
	Image string `json:"image,omitempty"`
}
