// Package config loads run configurations for the lvperiodic command and
// the HTTP service.
//
// A configuration names the algorithm, the log level, an optional result
// cache directory, the derived graphs to produce (centered cell, supergraph)
// and the component itself, either as a document of environments and links
// or as net notation (see netfmt). The same document is accepted in YAML and
// in HCL:
//
//	algorithm  = "cycle_basis"
//	center     = true
//	supergraph = [3]
//
//	environment "Fe" {
//	  isite = 0
//	}
//	environment "O" {
//	  isite = 1
//	}
//	link {
//	  from = "Fe"
//	  to   = "O"
//	}
//	link {
//	  from  = "O"
//	  to    = "Fe"
//	  delta = [1, 0, 0]
//	}
//
// Loaded documents get defaults applied and are validated with struct tags;
// every failure wraps ErrInvalidConfig.
package config
