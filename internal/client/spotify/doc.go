// Package spotify wraps the Spotify Web API for the bot's needs: resolving
// track links to track metadata and fetching similar-track suggestions.
// Responses are cached in-memory, keyed by track ID.
package spotify
