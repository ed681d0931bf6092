package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ofx"
)

// Profile is the view of the profile of an institution.
type Profile struct {
	Name        string           `json:"name"`
	Address     []string         `json:"address"`
	Phone       string           `json:"phone,omitempty"`
	URL         string           `json:"url,omitempty"`
	Email       string           `json:"email,omitempty"`
	LastUpdate  string           `json:"lastUpdate,omitempty"`
	MessageSets []MessageSetLine `json:"messageSets"`
	Realms      []RealmLine      `json:"realms"`
}

// MessageSetLine describes a message set supported by the institution.
type MessageSetLine struct {
	Type     string `json:"type"`
	Version  int    `json:"version"`
	URL      string `json:"url"`
	Security string `json:"security"`
	Realm    string `json:"realm"`
}

// RealmLine describes the credentials of a signon realm.
type RealmLine struct {
	Realm    string `json:"realm"`
	Password string `json:"password"`
	Change   string `json:"change"`
}

// NewProfile creates the view of a profile.
func NewProfile(p *ofx.ProfileResponse) *Profile {
	v := &Profile{
		Name:        cell(p.Name),
		Phone:       p.CustomerServicePhone,
		URL:         p.URL,
		Email:       p.Email,
		LastUpdate:  Day(p.LastUpdate),
		Address:     make([]string, 0),
		MessageSets: make([]MessageSetLine, 0),
		Realms:      make([]RealmLine, 0),
	}
	for _, line := range []string{p.Address1, p.Address2, p.Address3, strings.TrimSpace(strings.Join([]string{p.City, p.State, p.PostalCode}, " ")), p.Country} {
		if line != "" {
			v.Address = append(v.Address, line)
		}
	}
	if p.MessageSets != nil {
		for _, s := range p.MessageSets.Sets {
			line := MessageSetLine{Type: s.Type().String()}
			if c := s.Core(); c != nil {
				line.Version, line.URL, line.Security, line.Realm = c.Version, c.URL, string(c.Security), c.SignonRealm
			}
			v.MessageSets = append(v.MessageSets, line)
		}
	}
	if p.SignonInfos != nil {
		for _, info := range p.SignonInfos.Infos {
			v.Realms = append(v.Realms, RealmLine{
				Realm:    cell(info.Realm),
				Password: fmt.Sprintf("%d to %d %s", info.MinChars, info.MaxChars, charTypes[info.CharType]),
				Change:   yesNo(info.PinChange),
			})
		}
	}
	return v
}

var charTypes = map[ofx.CharType]string{
	ofx.AlphaOnly:       "letters",
	ofx.NumericOnly:     "digits",
	ofx.AlphaOrNumeric:  "letters or digits",
	ofx.AlphaAndNumeric: "letters and digits",
	"":                  "characters",
}
