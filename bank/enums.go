package bank

// The editors tag entities with free strings; the banks store small
// integers. Unmapped tags fall back to an explicit default rather than
// erroring, mirroring the dangling-reference policy.

const (
	blockDecoration byte = iota
	blockSolid
	blockConveyor
	blockCrumble
	blockLadder
	blockSpike
)

var blockTypeCodes = map[string]byte{
	"decoration": blockDecoration,
	"solid":      blockSolid,
	"conveyor":   blockConveyor,
	"crumble":    blockCrumble,
	"ladder":     blockLadder,
	"spike":      blockSpike,
}

// BlockTypeCode maps a block type tag to its bank code, defaulting to
// decoration for unmapped tags.
func BlockTypeCode(tag string) byte {
	if c, ok := blockTypeCodes[tag]; ok {
		return c
	}
	return blockDecoration
}

const (
	objectNone byte = iota
	objectPlayer
	objectEnemy
	objectProjectile
	objectPickup
	objectDoor
	objectPlatform
	objectExit
)

var objectTypeCodes = map[string]byte{
	"player":     objectPlayer,
	"enemy":      objectEnemy,
	"projectile": objectProjectile,
	"pickup":     objectPickup,
	"door":       objectDoor,
	"platform":   objectPlatform,
	"exit":       objectExit,
}

// ObjectTypeCode maps an object type tag to its bank code, defaulting to 0
// for unmapped tags.
func ObjectTypeCode(tag string) byte {
	if c, ok := objectTypeCodes[tag]; ok {
		return c
	}
	return objectNone
}

const (
	dirLeft byte = iota
	dirRight
	dirUp
	dirDown
)

var directionCodes = map[string]byte{
	"left":  dirLeft,
	"right": dirRight,
	"up":    dirUp,
	"down":  dirDown,
}

// DirectionCode maps a direction tag to its bank code, defaulting to left.
func DirectionCode(tag string) byte {
	if c, ok := directionCodes[tag]; ok {
		return c
	}
	return dirLeft
}

const (
	axisHorizontal byte = iota
	axisVertical
)

var axisCodes = map[string]byte{
	"horizontal": axisHorizontal,
	"vertical":   axisVertical,
}

// AxisCode maps a platform motion axis tag to its bank code, defaulting to
// horizontal.
func AxisCode(tag string) byte {
	if c, ok := axisCodes[tag]; ok {
		return c
	}
	return axisHorizontal
}
