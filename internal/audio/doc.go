// Package audio builds the audio track manifest consumed by the player.
//
// Each configured section names a directory below the audio root. Tracks are
// listed with a display name and a URL path, ordered the way a listener reads
// them: numbers compare by value and case or accents are ignored, so
// "Track 2" precedes "track 10".
package audio
