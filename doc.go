// Package cheapflight answers one question well: what is the cheapest way to fly
// from A to B if you are willing to change planes at most K times?
//
// What is inside:
//
//	cheapest/         — the stop-bounded cheapest-route search over integer node ids
//	network/          — city names ⇄ node ids, YAML flight files, demo & random networks
//	cmd/cheapflight/  — CLI: route, demo, generate, version
//
// Quick example:
//
//	flights: New York→London 500, New York→Paris 600, Paris→Rome 250, London→Berlin 200, Berlin→Rome 300
//
//	With one stop New York → Rome costs 850 (via Paris); with no stops there is no route.
//
//	go install github.com/katalvlaran/cheapflight/cmd/cheapflight@latest
package cheapflight
