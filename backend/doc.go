// Package backend provides the factory registry for sketch render backends.
//
// Backends register themselves from init functions; importing a backend
// package for its side effect makes it selectable:
//
//	import (
//		"github.com/gogpu/sketch/backend"
//		_ "github.com/gogpu/sketch/backend/software"
//	)
//
//	b := backend.MustDefault()
package backend
