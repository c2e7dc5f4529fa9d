package editorconfig

// CommentGroups restricts comment actions to user groups.
type CommentGroups struct {
	Edit   []string `json:"edit,omitempty"`
	Remove []string `json:"remove,omitempty"`
	View   []string `json:"view,omitempty"`
}

type Permissions struct {
	Chat                    bool           `json:"chat"`
	Comment                 bool           `json:"comment"`
	CommentGroups           *CommentGroups `json:"commentGroups,omitempty"`
	Copy                    bool           `json:"copy"`
	DeleteCommentAuthorOnly bool           `json:"deleteCommentAuthorOnly"`
	Download                bool           `json:"download"`
	Edit                    bool           `json:"edit"`
	EditCommentAuthorOnly   bool           `json:"editCommentAuthorOnly"`
	FillForms               bool           `json:"fillForms"`
	ModifyContentControl    bool           `json:"modifyContentControl"`
	ModifyFilter            bool           `json:"modifyFilter"`
	Print                   bool           `json:"print"`
	Protect                 bool           `json:"protect"`
	Rename                  bool           `json:"rename"`
	Review                  bool           `json:"review"`
	ReviewGroups            []string       `json:"reviewGroups,omitempty"`
	UserInfoGroups          []string       `json:"userInfoGroups,omitempty"`
}

// DefaultPermissions grants everything except author-only comment rules and
// renaming.
func DefaultPermissions() Permissions {
	return Permissions{
		Chat:                 true,
		Comment:              true,
		Copy:                 true,
		Download:             true,
		Edit:                 true,
		FillForms:            true,
		ModifyContentControl: true,
		ModifyFilter:         true,
		Print:                true,
		Protect:              true,
		Review:               true,
	}
}

// ReadOnly returns p with every modifying permission revoked.
func (p Permissions) ReadOnly() Permissions {
	p.Edit = false
	p.Review = false
	p.Comment = false
	p.FillForms = false
	p.ModifyContentControl = false
	p.ModifyFilter = false
	p.Rename = false
	p.Protect = false
	return p
}
