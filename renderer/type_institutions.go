package renderer

import "github.com/etnz/ofx"

// Institutions is the view of an institution directory.
type Institutions struct {
	Institutions []InstitutionLine `json:"institutions"`
}

// InstitutionLine describes a single institution.
type InstitutionLine struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	FID     string `json:"fid"`
	Version string `json:"version"`
	URL     string `json:"url"`
}

// NewInstitutions creates the view of a list of institutions.
func NewInstitutions(list []ofx.InstitutionData) *Institutions {
	v := &Institutions{Institutions: make([]InstitutionLine, 0, len(list))}
	for _, inst := range list {
		version := ofx.V1
		if inst.Version != 0 {
			version = inst.Version
		}
		v.Institutions = append(v.Institutions, InstitutionLine{
			ID:      cell(inst.ID),
			Name:    cell(inst.Name),
			FID:     cell(inst.FID),
			Version: version.String(),
			URL:     inst.URL,
		})
	}
	return v
}
