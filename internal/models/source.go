package models

// Source identifies one spreadsheet input to ingest.
type Source struct {
	Ref   string `mapstructure:"ref" yaml:"ref" json:"ref"`       // edit URL, published URL, or bare document id
	Gid   string `mapstructure:"gid" yaml:"gid" json:"gid"`       // optional sheet-tab identifier
	Label string `mapstructure:"label" yaml:"label" json:"label"` // display name; may itself encode the batch date
}

// DisplayLabel returns the label to carry on records, falling back to the
// raw reference when no label was supplied.
func (s Source) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Ref
}
