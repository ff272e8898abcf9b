package spawn

import "errors"

// Sentinel errors returned from the registration step of a spawn.
// Use [errors.Is] to check the kind:
//
//	if err := spawn.Spawn(s, fut); errors.Is(err, spawn.ErrShutdown) { ... }
//
// Adapters may wrap a native cause around a sentinel; both the kind and
// the cause then survive [errors.Is] and [errors.As].
var (
	// ErrShutdown is returned when the underlying executor has already
	// torn down and can no longer accept work.
	ErrShutdown = errors.New("spawn: executor has shut down")

	// ErrSpawn is returned for any registration failure that is not a
	// shutdown. It carries no further classification.
	ErrSpawn = errors.New("spawn: unable to spawn")
)
