// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package parties holds the party reference data.

Default returns the two parties of the 2024 primaries:

  - gop: 2467 delegates, no excluded states
  - dem: 4518 delegates, New Hampshire excluded

A Catalog satisfies allocation.PartyCatalog, so a session can be created
straight from it:

	session, err := allocation.NewSession(parties.Republican, parties.Default())
*/
package parties
