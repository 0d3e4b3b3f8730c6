// Package app wires the application together: it builds the preference store,
// the Spotify and song download clients, the Telegram transport and the bot
// service, then runs the update loop until the context is canceled.
package app
