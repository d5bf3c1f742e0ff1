// Package config loads the metroroute configuration.
//
// The file is YAML; every field is optional and falls back to the defaults
// below. After decoding, METROROUTE_* environment variables override the file
// and the result is validated with struct tags.
//
//	server:
//	  addr: ":8080"
//	  read_timeout: 5s
//	  write_timeout: 10s
//	dataset:
//	  path: lines.json
//	  coordinates: normalized   # pixel | normalized | geographic
//	  width: 396
//	  height: 443
//	routing:
//	  metric: planar            # planar | haversine
//	  walk_speed: 5             # distance units per minute
//	  inter_station_minutes: 2
//	  transfer_minutes: 5
//	  exit_minutes: 2
//	  max_walk_minutes: 0       # optional cap on exit walks, 0 means none
//	  earth_radius: 6371000
//	  isolation: overlay        # overlay | copy
//	  heuristic_cache_size: 256
//	  heuristic_cache_ttl: 0s
//	log:
//	  level: info
//	  format: text
package config
