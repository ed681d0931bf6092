// Package cmd implements the CLI application to talk to financial institutions
// and read OFX files.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/etnz/ofx"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

// Commands returns the subcommands registered by Register.
func Commands() []subcommands.Command {
	var all []subcommands.Command
	for _, g := range groups {
		all = append(all, g.commands...)
	}
	return all
}

var groups = []struct {
	name     string
	commands []subcommands.Command
}{
	{"institutions", []subcommands.Command{&institutionsCmd{}, &profileCmd{}}},
	{"downloads", []subcommands.Command{&accountsCmd{}, &statementCmd{}, &securitiesCmd{}, &tax1099Cmd{}, &passwdCmd{}}},
	{"files", []subcommands.Command{&parseCmd{}, &fmtCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}}},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", os.Getenv(EnvConfig), "Path to the institution directory (YAML). Defaults to the built-in directory.")
var dumpDir = flag.String("dump", os.Getenv(EnvDump), "Directory where HTTP exchanges with institutions are dumped")
var raw = flag.Bool("raw", false, "print markdown as is, without terminal rendering")

// Verbose logs the exchanges with the institutions.
var Verbose = flag.Bool("v", os.Getenv(EnvVerbose) == "true", "log exchanges with institutions")

// Directory returns the institution directory selected by the -config flag.
func Directory() (*ofx.Directory, error) {
	if *configFile == "" {
		return ofx.DefaultDirectory(), nil
	}
	return ofx.LoadDirectory(*configFile)
}

// transport returns the transport to the institution servers.
func transport() ofx.Transport {
	ofx.Verbose = *Verbose
	if *dumpDir != "" {
		return &ofx.HTTPTransport{Client: ofx.NewDumpClient(*dumpDir)}
	}
	return &ofx.HTTPTransport{Client: http.DefaultClient}
}

// signonFlags are the flags identifying the institution and the user.
type signonFlags struct {
	institution string
	user        string
}

func (s *signonFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.institution, "i", os.Getenv(EnvInstitution), "Institution id in the directory. See 'ofxc institutions'.")
	f.StringVar(&s.user, "u", os.Getenv(EnvUser), "User id at the institution")
}

// open returns the client of the selected institution.
func (s *signonFlags) open() (*ofx.Institution, error) {
	if s.institution == "" {
		return nil, errors.New("missing institution, use -i")
	}
	dir, err := Directory()
	if err != nil {
		return nil, err
	}
	data, ok := dir.Find(s.institution)
	if !ok {
		return nil, fmt.Errorf("unknown institution %q", s.institution)
	}
	return ofx.NewInstitution(data, transport()), nil
}

// credentials returns the user credentials, the password being read from
// the environment.
func (s *signonFlags) credentials() (ofx.Credentials, error) {
	if s.user == "" {
		return ofx.Credentials{}, errors.New("missing user id, use -u")
	}
	password := os.Getenv(EnvPassword)
	if password == "" {
		return ofx.Credentials{}, fmt.Errorf("missing password, set %s", EnvPassword)
	}
	return ofx.Credentials{UserID: s.user, Password: password}, nil
}

// connect opens the institution and reads the credentials.
func (s *signonFlags) connect() (*ofx.Institution, ofx.Credentials, error) {
	inst, err := s.open()
	if err != nil {
		return nil, ofx.Credentials{}, err
	}
	c, err := s.credentials()
	return inst, c, err
}
