// Package httpapi serves periodicity analysis over HTTP.
//
// Routes:
//
//	POST /v1/periodicity?algorithm=cycle_basis   component document → periodicity
//	POST /v1/centered?root=<id>&any_root=true    component document → centered graph
//	POST /v1/supergraph?m=<n>&allow_off_axis=true component document → supergraph
//	GET  /metrics                                Prometheus exposition
//	GET  /healthz                                liveness
//
// The request body is the JSON form of config.ComponentDoc. Client errors
// (malformed or invalid documents, unknown nodes or algorithms, bad
// multiplicities) answer 400; structural failures of the net (centering
// impossible, inconsistent edges, no periodicity to expand) answer 422;
// anything else answers 500. Error bodies are {"error": "..."}.
package httpapi
