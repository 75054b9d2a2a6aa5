// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Package validation validates request parameters with go-playground/validator v10.

A single validator instance is built lazily and shared; it caches struct
metadata, so request types should be validated through ValidateStruct rather
than a fresh validator.New.

Field names in messages come from the `param` struct tag, which the api
package sets to the URL parameter name:

	type LookupRequest struct {
	    ID string `param:"id" validate:"required,number,max=20"`
	}

Custom tags:

  - neodate: a YYYY-MM-DD calendar date (2015-02-30 fails)

Failures come back as *RequestValidationError. Messages() feeds the HTML error
page; ToAPIError() feeds the JSON endpoints.
*/
package validation
