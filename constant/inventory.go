package constant

// MovementType classifies a stock movement.
type MovementType string

const (
	MovementTypeIn         MovementType = "in"
	MovementTypeOut        MovementType = "out"
	MovementTypeAdjustment MovementType = "adjustment"
)

// MaxMovementListLimit caps the movement history endpoint response size.
const MaxMovementListLimit = 1000
