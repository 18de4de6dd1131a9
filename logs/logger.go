package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/bf/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var (
	level   = new(slog.LevelVar)
	jsonLog = cmds.Switch("-log-json", "write logs as json lines")
)

func init() {
	// program output owns stdout, so only problems are logged by default
	level.Set(slog.LevelWarn)

	for _, l := range []slog.Level{
		slog.LevelDebug,
		slog.LevelInfo,
		slog.LevelWarn,
		slog.LevelError,
	} {
		name := strings.ToLower(l.String())
		command := cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to " + name)
		if l == slog.LevelDebug {
			command.Alias("-v")
		}
		cmds.Define("-log-"+name, command)
	}
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	var local slog.Handler
	if !isSystemdService() {
		local = newLocalHandler(writer)
		handlers = append(handlers, local)
	}

	journal, err := newJournalHandler()
	switch {
	case err == nil:
		handlers = append(handlers, journal)
	case local != nil:
		record := slog.NewRecord(time.Now(), slog.LevelDebug, "systemd journal unavailable", 0)
		record.Add("error", err)
		_ = local.Handle(context.Background(), record)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func newLocalHandler(writer Writer) slog.Handler {
	options := &slog.HandlerOptions{
		Level: level,
	}
	if *jsonLog {
		return slog.NewJSONHandler(writer, options)
	}
	return slog.NewTextHandler(writer, options)
}

func newJournalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		Level:        level,
		ReplaceGroup: toJournalKey,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

// journald field names are upper case letters, digits and underscores.
func toJournalKey(str string) string {
	return "BF_" + strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(str))
}

func isSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	// unified hierarchy: 0::/system.slice/foo.service
	for line := range strings.Lines(string(content)) {
		parts := strings.SplitN(strings.TrimSpace(line), ":", 3)
		if len(parts) == 3 && strings.HasSuffix(path.Dir(parts[2]), ".service") {
			return true
		}
	}
	return false
}
