package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"careconnect/internal/chatbot"

	"github.com/fatih/color"
	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var chatCommand = &cli.Command{
	Name:      "chat",
	Usage:     "Ask the virtual assistant from the terminal",
	ArgsUsage: "[message]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "explain",
			Aliases: []string{"e"},
			Usage:   "Print the rule that produced each answer",
		},
	},
	Action: func(c *cli.Context) error {
		explain := c.Bool("explain")
		out := c.App.Writer

		if c.NArg() > 0 {
			answer(out, strings.Join(c.Args().Slice(), " "), explain)
			return nil
		}

		return converse(c.App.Reader, out, explain)
	},
}

var (
	promptColor = color.New(color.FgGreen, color.Bold)
	botColor    = color.New(color.FgCyan)
	intentColor = color.New(color.FgYellow)
)

// converse answers one line at a time until EOF or "exit".
func converse(in io.Reader, out io.Writer, explain bool) error {
	scanner := bufio.NewScanner(in)
	for {
		promptColor.Fprint(out, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		answer(out, line, explain)
	}
}

func answer(out io.Writer, utterance string, explain bool) {
	rule := chatbot.Match(utterance)

	intentColor.Fprintf(out, "[%s] ", rule.Intent)
	botColor.Fprintln(out, rule.Response)

	if explain {
		printer := pp.New()
		printer.SetOutput(out)
		printer.Println(rule)
	}
}
