// Package main provides the entry point for the studio website service.
// It initializes and runs a web server using the Fiber framework that serves
// the public marketing pages, a password-gated content-admin panel and a
// shared visitor chat. All site state (content, users, chat transcript and
// the admin credential) is persisted as JSON blobs in a local key-value
// store backed by an embedded sqlite database.
package main
