// Package ent holds the generated entity code for the local SQLite store.
// Run `go generate ./ent` after changing any schema.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
