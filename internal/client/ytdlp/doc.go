// Package ytdlp acquires audio through the yt-dlp tool: searching YouTube for
// a track and downloading it as an MP3 file at a requested bitrate.
package ytdlp
