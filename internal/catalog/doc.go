// Package catalog provides the localized message catalog for the bot.
// It maps (language, key) pairs to template strings and renders them with
// named substitutions, falling back to the default language for unknown
// languages and to a fixed sentinel for unknown keys. Rendering never fails.
package catalog
