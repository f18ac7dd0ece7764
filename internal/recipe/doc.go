// Package recipe renders container build recipes.
//
// A [Recipe] is a base image followed by an ordered list of shell commands.
// Its text form is a Dockerfile with one FROM line and one RUN line per
// command:
//
//	FROM debian:bookworm
//	RUN apt-get update
//	RUN apt-get install -y curl
//
// Commands are emitted verbatim. Quoting and escaping are the caller's
// responsibility.
package recipe
