// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines a catalog of Markdown-formatted guidance for the
// validation failures a user can run into, improving the experience when
// a VIN is rejected by the CLI.
package issue
