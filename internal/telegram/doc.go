// Package telegram connects the bot logic to the Telegram Bot API:
// it long-polls for updates, converts them to chat events and implements the
// outgoing messenger used by the handlers.
package telegram
