// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics declares the Prometheus collectors for the API.

Collectors register with the default registry at init (promauto) and are
served by Handler at GET /metrics.

  - delegates_request_duration_seconds{method, route}
  - delegates_percentage_updates_total{party, outcome}
  - delegates_state_loads_total{party, status}
  - delegates_scenario_writes_total{op}
  - delegates_candidate_delegates{party, candidate}
*/
package metrics
