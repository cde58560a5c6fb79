// Package irc maintains the Twitch chat session.
//
// The Client dials the IRC-over-WebSocket gateway, authenticates, joins the
// configured channels and hands every PRIVMSG to a handler. Sessions that
// drop (read errors, server RECONNECT) are re-established with a capped
// exponential backoff. Say sends one line back into a channel, behind the
// 20-messages-per-30-seconds outbound limit Twitch enforces.
package irc
