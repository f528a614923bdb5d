package world

import "github.com/mudframe/core/internal/model"

// Object and Dungeon are aliases for the model package's types so the
// rest of this package — which is all about operations over those
// types — doesn't have to qualify every signature.
type (
	Object  = model.Object
	Dungeon = model.Dungeon
)
