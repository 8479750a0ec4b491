package components

import "github.com/yohamta/donburi"

// ParentData points a child (a gun, a muzzle flash) at the entity it is mounted on.
type ParentData struct {
	Parent Ref
}

// ChildrenData lists mounted children in mount order.
type ChildrenData struct {
	Entities []donburi.Entity
}

var Parent = donburi.NewComponentType[ParentData]()
var Children = donburi.NewComponentType[ChildrenData]()
