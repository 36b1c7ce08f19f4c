// Package utilkit bundles util-kit's everyday helpers behind one entry point.
//
// The heavy lifting lives in the pkg/ subpackages: merge for deep merging,
// array for in-place removal and settled task runs, files, crypt, jwt, text,
// date, jsonutil and the rest. This package re-exports the two core operations
// and provides Kit, which applies a loaded config.Config as defaults:
//
//	cfg, err := config.Load("utilkit.yaml")
//	if err != nil {
//	    return err
//	}
//	kit, err := utilkit.New(cfg)
//	if err != nil {
//	    return err
//	}
//	pw, err := kit.Password()
package utilkit
