// Package schema describes which properties of a wrapped type stay writable.
//
// Every property of a wrapped object is read-only unless the object's type
// declares it mutable. A declaration is an ordered list of property records:
//
//	version: "1"
//	types:
//	  - type: game.Unit
//	    # shorthand, expanded into properties
//	    mutable: [Health, Name]
//	    properties:
//	      - name: Armor
//	        mutable: true
//	      - name: Level
//	        mutable: false
//
// # Sources
//
// A declaration reaches the wrapper from one of three places, in order of
// precedence:
//  1. an explicit [Schema] handed to the wrapper constructor
//  2. a [Catalog] lookup keyed by the target's type name
//  3. the target type itself, when it implements [Declarer]
//
// A type with no declaration exposes no writable properties.
//
// # Type names
//
// Catalog entries are keyed either by the package alias form ("game.Unit")
// or by the fully qualified form ("example.com/rpg/game.Unit"). Lookups try
// the qualified form first.
package schema
