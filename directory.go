package ofx

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// InstitutionData identifies a financial institution and its OFX server.
type InstitutionData struct {
	ID         string  `yaml:"id" json:"id"`
	Name       string  `yaml:"name" json:"name"`
	Org        string  `yaml:"org" json:"org"`
	FID        string  `yaml:"fid,omitempty" json:"fid,omitempty"`
	URL        string  `yaml:"url" json:"url"`
	BrokerID   string  `yaml:"broker_id,omitempty" json:"broker_id,omitempty"`
	Version    Version `yaml:"version,omitempty" json:"version,omitempty"`
	AppID      string  `yaml:"app_id,omitempty" json:"app_id,omitempty"`
	AppVersion string  `yaml:"app_version,omitempty" json:"app_version,omitempty"`
}

// Directory is a list of institutions.
type Directory struct {
	Institutions []InstitutionData `yaml:"institutions" json:"institutions"`
}

//go:embed institutions.yaml
var defaultDirectory []byte

// DefaultDirectory returns the institutions known by this package.
func DefaultDirectory() *Directory {
	d, err := ParseDirectory(defaultDirectory)
	if err != nil {
		panic(err)
	}
	return d
}

// LoadDirectory reads a YAML directory file.
func LoadDirectory(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := ParseDirectory(data)
	if err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", path, err)
	}
	return d, nil
}

// ParseDirectory decodes a YAML directory. Unknown keys are errors.
func ParseDirectory(data []byte) (*Directory, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	d := new(Directory)
	if err := dec.Decode(d); err != nil {
		return nil, err
	}
	for i, inst := range d.Institutions {
		if inst.ID == "" || inst.URL == "" {
			return nil, fmt.Errorf("institution #%d: id and url are required", i+1)
		}
	}
	return d, nil
}

// Find returns the institution of the given id.
func (d *Directory) Find(id string) (InstitutionData, bool) {
	for _, inst := range d.Institutions {
		if strings.EqualFold(inst.ID, id) {
			return inst, true
		}
	}
	return InstitutionData{}, false
}

// Search returns the institutions whose id or name contains query, ignoring
// case.
func (d *Directory) Search(query string) []InstitutionData {
	query = strings.ToLower(query)
	var found []InstitutionData
	for _, inst := range d.Institutions {
		if strings.Contains(strings.ToLower(inst.ID), query) || strings.Contains(strings.ToLower(inst.Name), query) {
			found = append(found, inst)
		}
	}
	return found
}
