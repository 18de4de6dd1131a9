package cmds

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	printCommands(p, p.commands, 0)
}

func printCommands(p *Executor, commands map[string]*Command, depth int) {
	// aliases are registered as extra keys of the same command
	names := make(map[*Command][]string)
	for name, cmd := range commands {
		if cmd == nil {
			continue
		}
		names[cmd] = append(names[cmd], name)
	}
	printed := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		cmd := commands[name]
		if cmd == nil || printed[cmd] {
			continue
		}
		printed[cmd] = true
		list := slices.Compact(slices.Sorted(slices.Values(append(names[cmd], cmd.Aliases...))))
		indent := strings.Repeat("  ", depth)
		if cmd.Description != "" {
			fmt.Fprintf(p.Usage, "%s%s\t%s\n", indent, strings.Join(list, ", "), cmd.Description)
		} else {
			fmt.Fprintf(p.Usage, "%s%s\n", indent, strings.Join(list, ", "))
		}
		if len(cmd.Subs) > 0 {
			printCommands(p, cmd.Subs, depth+1)
		}
	}
}
