// Package bot contains the chat logic: routing incoming messages and button
// presses to handlers that resolve Spotify links, suggest similar tracks and
// run the multi-step song download dialogue. Handlers never surface errors to
// the chat transport; every outcome, including a failure, ends in a localized
// reply to the user.
package bot
