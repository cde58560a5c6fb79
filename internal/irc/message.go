package irc

import (
	"fmt"
	"strings"
	"time"
)

// Message is one chat message as delivered to the bot.
type Message struct {
	Channel string // "#name", as joined
	Nick    string // sender's login, lowercase by protocol
	Text    string
	Time    time.Time // arrival time, not server time
}

// line is one parsed IRC protocol line:
//
//	[@tags ][:prefix ]COMMAND[ params][ :trailing]
//
// Twitch prepends IRCv3 tags to most lines; the bot carries them along but
// never inspects them.
type line struct {
	tags     string
	prefix   string
	command  string
	params   []string
	trailing string
}

// nick extracts the sender's login from a user prefix ("nick!user@host").
// Server prefixes have no '!' and are returned whole.
func (l line) nick() string {
	name, _, _ := strings.Cut(l.prefix, "!")
	return name
}

func parseLine(raw string) (line, error) {
	var ln line

	rest := strings.TrimRight(raw, "\r\n")
	if strings.HasPrefix(rest, "@") {
		tags, remainder, ok := strings.Cut(rest[1:], " ")
		if !ok {
			return ln, fmt.Errorf("line %q holds only tags", raw)
		}
		ln.tags = tags
		rest = remainder
	}
	if strings.HasPrefix(rest, ":") {
		prefix, remainder, ok := strings.Cut(rest[1:], " ")
		if !ok {
			return ln, fmt.Errorf("line %q holds only a prefix", raw)
		}
		ln.prefix = prefix
		rest = remainder
	}

	head, trailing, hasTrailing := strings.Cut(rest, " :")
	fields := strings.Fields(head)
	if len(fields) == 0 {
		return ln, fmt.Errorf("line %q has no command", raw)
	}

	ln.command = fields[0]
	if len(fields) > 1 {
		ln.params = fields[1:]
	}
	if hasTrailing {
		ln.trailing = trailing
	}
	return ln, nil
}
