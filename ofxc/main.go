// Command ofxc downloads statements from financial institutions and reads OFX
// files.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/ofx/cmd"
	"github.com/etnz/ofx/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	// exits when run by the shell to complete a command line
	completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if sub := flag.Arg(0); sub != "" && !registered(sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// completion describes the command line of ofxc for shell completion.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flags("", flag.CommandLine),
	}
	for _, c := range cmd.Commands() {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: flags(c.Name(), fs)}
		switch c.Name() {
		case "parse", "fmt":
			sub.Args = predict.Files("*.ofx")
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		}
		root.Sub[c.Name()] = sub
	}
	for _, s := range []string{"help", "flags", "commands"} {
		root.Sub[s] = &complete.Command{}
	}
	return root
}

// flags predicts the values of the flags of the subcommand.
func flags(sub string, fs *flag.FlagSet) map[string]complete.Predictor {
	m := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "kind":
			m[f.Name] = predict.Set{"bank", "cc", "inv"}
		case "p":
			m[f.Name] = predict.Set{"week", "month", "quarter", "year"}
		case "to":
			if sub == "fmt" {
				m[f.Name] = predict.Set{"1", "2"}
			} else {
				m[f.Name] = predict.Something
			}
		case "config":
			m[f.Name] = predict.Files("*.yaml")
		case "dump":
			m[f.Name] = predict.Dirs("*")
		case "validate":
			m[f.Name] = predict.Files("*.ofx")
		default:
			if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
				m[f.Name] = predict.Nothing
			} else {
				m[f.Name] = predict.Something
			}
		}
	})
	return m
}
