package document

// DefaultCatalog returns the formats handled by current document server
// releases. Hosts shipping the full formats asset should use LoadCatalog.
func DefaultCatalog() MapCatalog {
	word := []string{"docx", "docxf", "epub", "fb2", "html", "odt", "pdf", "rtf", "txt"}
	cell := []string{"csv", "ods", "pdf", "xlsx"}
	slide := []string{"odp", "pdf", "pptx"}

	return MapCatalog{
		"doc":  {Name: "doc", Type: TypeWord, Actions: []string{"view", "auto-convert"}, Convert: word, Mimes: []string{"application/msword"}},
		"docx": {Name: "docx", Type: TypeWord, Actions: []string{"view", "edit"}, Convert: word, Mimes: []string{DocxMimeType}},
		"odt":  {Name: "odt", Type: TypeWord, Actions: []string{"view", "lossy-edit", "auto-convert"}, Convert: word, Mimes: []string{"application/vnd.oasis.opendocument.text"}},
		"rtf":  {Name: "rtf", Type: TypeWord, Actions: []string{"view", "lossy-edit", "auto-convert"}, Convert: word, Mimes: []string{"application/rtf", "text/rtf"}},
		"txt":  {Name: "txt", Type: TypeWord, Actions: []string{"view", "lossy-edit"}, Convert: word, Mimes: []string{"text/plain"}},
		"xls":  {Name: "xls", Type: TypeCell, Actions: []string{"view", "auto-convert"}, Convert: cell, Mimes: []string{"application/vnd.ms-excel"}},
		"xlsx": {Name: "xlsx", Type: TypeCell, Actions: []string{"view", "edit"}, Convert: cell, Mimes: []string{"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"}},
		"ods":  {Name: "ods", Type: TypeCell, Actions: []string{"view", "lossy-edit", "auto-convert"}, Convert: cell, Mimes: []string{"application/vnd.oasis.opendocument.spreadsheet"}},
		"csv":  {Name: "csv", Type: TypeCell, Actions: []string{"view", "lossy-edit"}, Convert: cell, Mimes: []string{"text/csv"}},
		"ppt":  {Name: "ppt", Type: TypeSlide, Actions: []string{"view", "auto-convert"}, Convert: slide, Mimes: []string{"application/vnd.ms-powerpoint"}},
		"pptx": {Name: "pptx", Type: TypeSlide, Actions: []string{"view", "edit"}, Convert: slide, Mimes: []string{"application/vnd.openxmlformats-officedocument.presentationml.presentation"}},
		"odp":  {Name: "odp", Type: TypeSlide, Actions: []string{"view", "lossy-edit", "auto-convert"}, Convert: slide, Mimes: []string{"application/vnd.oasis.opendocument.presentation"}},
		"pdf":  {Name: "pdf", Type: TypePDF, Actions: []string{"view", "fill"}, Convert: []string{"pdf", "docx"}, Mimes: []string{"application/pdf"}},
	}
}
