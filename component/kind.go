package component

// Kind discriminates world objects for rendering and collision
type Kind uint8

const (
	KindPlane Kind = iota
	KindBuilding
	KindRing
	KindBird
	KindCloud
	KindRaindrop
)

var kindNames = [...]string{
	KindPlane:    "plane",
	KindBuilding: "building",
	KindRing:     "ring",
	KindBird:     "bird",
	KindCloud:    "cloud",
	KindRaindrop: "raindrop",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}
