// Package main hosts the assetmanifest CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into manifest
// builds: `images` indexes numbered image folders, `audio` indexes the audio
// sections, and `inspect` previews an image scan without writing. Config
// resolution and logger setup live in commandContext so each command only
// wires its builder and prints its result.
//
// Stdout is reserved for command output (the confirmation line and manifest
// JSON); logs go to stderr.
package main
