// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-cred-vault server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body can be decoded
	// but fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgNoUserIDProvided is logged when a handler requires a user id (taken
	// from the JWT claim) but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"
)
