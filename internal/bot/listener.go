package bot

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/pscheid92/chatparrot/internal/irc"
	"github.com/pscheid92/chatparrot/internal/metrics"
	"github.com/pscheid92/chatparrot/internal/trend"
)

// Listener turns chat messages into word observations. Every message makes
// its channel the new emission destination, whether or not any word is
// accepted, so the bot always answers where people actually talk.
type Listener struct {
	nick   string
	accept *regexp.Regexp
	store  *trend.Store
	dest   *Destination
}

func NewListener(nick string, accept *regexp.Regexp, store *trend.Store, dest *Destination) *Listener {
	return &Listener{
		nick:   nick,
		accept: accept,
		store:  store,
		dest:   dest,
	}
}

// OnMessage ingests one chat message. The bot's own messages are skipped so
// it never feeds on its own emissions.
func (l *Listener) OnMessage(msg irc.Message) {
	if strings.EqualFold(msg.Nick, l.nick) {
		return
	}

	metrics.MessagesSeenTotal.Inc()
	l.dest.Set(msg.Channel)

	recorded := 0
	for _, field := range strings.Fields(msg.Text) {
		if !l.accept.MatchString(field) {
			continue
		}
		l.store.Record(strings.ToLower(field), msg.Time)
		recorded++
	}

	if recorded > 0 {
		metrics.WordsRecordedTotal.Add(float64(recorded))
		metrics.WordsTracked.Set(float64(l.store.Len()))
	}

	slog.Debug("Listener: message ingested", "channel", msg.Channel, "nick", msg.Nick, "words", recorded)
}
