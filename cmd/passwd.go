package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// EnvNewPassword holds the new password of the passwd subcommand.
const EnvNewPassword = "OFXC_NEW_PASSWORD"

type passwdCmd struct {
	signon signonFlags
}

func (*passwdCmd) Name() string     { return "passwd" }
func (*passwdCmd) Synopsis() string { return "change the password of a user" }
func (*passwdCmd) Usage() string {
	return `ofxc passwd -i <institution> -u <user>

  Changes the password of the user. The current password is read from
  OFXC_PASSWORD and the new one from OFXC_NEW_PASSWORD.
`
}

func (c *passwdCmd) SetFlags(f *flag.FlagSet) { c.signon.SetFlags(f) }

func (c *passwdCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	password := os.Getenv(EnvNewPassword)
	if password == "" {
		fmt.Fprintf(os.Stderr, "Error: missing new password, set %s\n", EnvNewPassword)
		return subcommands.ExitUsageError
	}
	inst, creds, err := c.signon.connect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := inst.ChangePassword(ctx, creds, password); err != nil {
		fmt.Fprintf(os.Stderr, "Error changing password: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Password of %s changed at %s.\n", creds.UserID, inst.Data.Name)
	return subcommands.ExitSuccess
}
