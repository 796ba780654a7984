package types

// PhysicalBodyDescriptor is set as UserData on Box2D physical bodies to be
// able to determine collider and collidee from Box2D contact callbacks.
type PhysicalBodyDescriptor struct {
	Type     _physicaltype
	ID       string
	Material string // surface material identifier; informational only
}

type _physicaltype string

func (t _physicaltype) String() string {
	switch t {
	case PhysicalBodyDescriptorType.Kart:
		return "Kart"
	case PhysicalBodyDescriptorType.Obstacle:
		return "Obstacle"
	case PhysicalBodyDescriptorType.Ground:
		return "Ground"
	}

	return "UnknownType"
}

var PhysicalBodyDescriptorType = struct {
	Kart     _physicaltype
	Obstacle _physicaltype
	Ground   _physicaltype
}{
	Kart:     _physicaltype("k"),
	Obstacle: _physicaltype("o"),
	Ground:   _physicaltype("g"),
}

func MakePhysicalBodyDescriptor(type_ _physicaltype, id string, material string) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Type:     type_,
		ID:       id,
		Material: material,
	}
}
