// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dataset loads state reference data.

Each party has one file, <party>-states.json, holding an array of states in
the upstream camelCase format:

	{
	  "id": 1,
	  "initials": "NH",
	  "name": "new hampshire",
	  "totalDelegates": 22,
	  "allocationMethod": "proportional",
	  "electionRules": {"minThreshold": 10, "wtaTrigger": 50},
	  "electionDate": "2024-01-23",
	  "electionType": "open primary"
	}

Older files spell the method key "allocation"; both are accepted. Names are
title-cased and initials upper-cased while decoding.

# Sources

	dataset.NewLoader("")                          // bundled 2024 datasets
	dataset.NewLoader("/srv/delegates/data")       // directory
	dataset.NewLoader("https://example.org/data")  // HTTP, honors ctx

Load returns an error and no states on any failure. Callers are expected to
log it and leave their session empty.
*/
package dataset
