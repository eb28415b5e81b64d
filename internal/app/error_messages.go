// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// meme-forge server handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// message field of JSON error bodies.
package app

const (
	// MsgQuotaReachedAnonymous is returned to anonymous callers that used
	// their daily generations.
	MsgQuotaReachedAnonymous = "Daily generation limit reached. Register for a higher limit."

	// MsgQuotaReachedRegistered is returned to registered users that used
	// their daily generations.
	MsgQuotaReachedRegistered = "Daily generation limit reached. Try again tomorrow."

	// MsgRouteNotFound is returned for unknown routes and unsupported methods.
	MsgRouteNotFound = "route not found"

	MsgInvalidDataProvided = "invalid data provided"
)
