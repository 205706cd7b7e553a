package game

type Phase int

const (
	AwaitingRoll Phase = iota
	AwaitingAdvance
	GameOver
)

func (phase Phase) String() string {
	switch phase {
	case AwaitingRoll:
		return "awaiting-roll"
	case AwaitingAdvance:
		return "awaiting-advance"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

func (phase Phase) MarshalYAML() (interface{}, error) {
	return phase.String(), nil
}

type JumpKind int

const (
	NoJump JumpKind = iota
	SnakeJump
	LadderJump
)

func (kind JumpKind) String() string {
	switch kind {
	case SnakeJump:
		return "snake"
	case LadderJump:
		return "ladder"
	default:
		return "none"
	}
}

func (kind JumpKind) MarshalYAML() (interface{}, error) {
	return kind.String(), nil
}

const (
	// Board is BoardSize x BoardSize cells
	BoardSize = 10
	FirstCell = 1
	LastCell  = BoardSize * BoardSize

	DiceFaces = 6
)

const (
	cellWidth    = 60
	boardMargin  = 100
	windowWidth  = 800
	windowHeight = 800
)
