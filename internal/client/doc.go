// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores the saved session or runs the login flow, then keeps the user
// in the feed until they quit. Logging out starts over from the login flow.
package client
