package component

// Shape is the square drawn for an entity, Size pixels wide before scaling.
type Shape struct {
	Size float64
}

var ShapeComponent = NewComponent[Shape]()

type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
