package slack

import (
	"strings"
)

type CommandType string

const (
	CmdToday     CommandType = "today"
	CmdOptions   CommandType = "options"
	CmdLocations CommandType = "locations"
	CmdHelp      CommandType = "help"
	// CmdLookup is any other text, read as a week/day override
	CmdLookup CommandType = "lookup"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand never fails: unknown text becomes a lookup for the free-text parser
func ParseCommand(text string) *Command {
	raw := strings.TrimSpace(text)
	parts := strings.Fields(raw)
	if len(parts) == 0 {
		return &Command{Type: CmdToday}
	}

	cmd := &Command{
		Raw: raw,
	}

	switch strings.ToLower(parts[0]) {
	case "today", "now":
		cmd.Type = CmdToday
	case "options", "days":
		cmd.Type = CmdOptions
		cmd.Args = parts[1:]
	case "locations", "where":
		cmd.Type = CmdLocations
	case "help":
		cmd.Type = CmdHelp
	default:
		cmd.Type = CmdLookup
		cmd.Args = parts
	}

	return cmd
}

func GetHelpText() string {
	return `*Available Commands:*

*Rotation:*
• ` + "`/prep`" + ` - Show today's slot (weekends roll to Monday)
• ` + "`/prep 2 fri`" + ` - Look up a slot, week and day in any order (ex: ` + "`tues`" + `, ` + "`week 1 thursday`" + `)
• ` + "`/prep options mo`" + ` - List slots whose day starts with the text

*Items:*
• ` + "`/prep locations`" + ` - List the locations items can be filtered by`
}
