package game

import (
	"fmt"
	"math"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	cellColorLight  = pixel.RGB(0.9, 0.9, 0.8)
	cellColorDark   = pixel.RGB(0.8, 0.8, 0.7)
	cellBorderColor = pixel.RGB(0.6, 0.6, 0.6)
	ladderColor     = pixel.RGB(0.7, 0.5, 0)
	snakeBodyColor  = pixel.RGB(0.5, 0, 0)
	snakeHeadColor  = pixel.RGB(1, 0, 0)
	snakeTailColor  = pixel.RGB(0.7, 0, 0)
)

// renderer draws a Snapshot. The board, snakes and ladders never change,
// so they are tessellated once; tokens and text are rebuilt every frame.
type renderer struct {
	atlas *text.Atlas

	board  *imdraw.IMDraw
	labels *text.Text

	tokens *imdraw.IMDraw
	hud    *text.Text
	banner *text.Text
}

func newRenderer(board *Board) *renderer {
	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)

	r := &renderer{
		atlas:  atlas,
		board:  imdraw.New(nil),
		labels: text.New(pixel.ZV, atlas),
		tokens: imdraw.New(nil),
		hud:    text.New(pixel.V(20, windowHeight-25), atlas),
		banner: text.New(pixel.V(windowWidth/2, windowHeight/2), atlas),
	}
	r.labels.Color = colornames.Black
	r.hud.Color = colornames.Black
	r.banner.Color = colornames.Darkgreen

	r.drawCells()
	for _, ladder := range board.Ladders() {
		r.drawLadder(ladder)
	}
	for _, snake := range board.Snakes() {
		r.drawSnake(snake)
	}

	return r
}

func cellCorner(coord Coordinate) pixel.Vec {
	return pixel.V(
		float64(boardMargin+coord.Col*cellWidth),
		float64(boardMargin+(BoardSize-1-coord.Row)*cellWidth),
	)
}

func cellCenter(cell int) pixel.Vec {
	coord, err := CellToCoordinate(cell)
	if err != nil {
		panic(err)
	}
	return cellCorner(coord).Add(pixel.V(cellWidth/2, cellWidth/2))
}

func (r *renderer) drawCells() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			coord := Coordinate{Col: col, Row: row}
			min := cellCorner(coord)
			max := min.Add(pixel.V(cellWidth, cellWidth))

			if (row+col)%2 == 0 {
				r.board.Color = cellColorLight
			} else {
				r.board.Color = cellColorDark
			}
			r.board.Push(min, max)
			r.board.Rectangle(0) // 0 = filled

			r.board.Color = cellBorderColor
			r.board.Push(min, max)
			r.board.Rectangle(1)

			cell, err := CoordinateToCell(coord)
			if err != nil {
				panic(err)
			}
			r.labels.Dot = min.Add(pixel.V(5, 5))
			fmt.Fprint(r.labels, cell)
		}
	}
}

func (r *renderer) drawLadder(ladder Ladder) {
	start, end := cellCenter(ladder.Bottom), cellCenter(ladder.Top)
	span := end.Sub(start)
	rail := span.Unit().Normal().Scaled(cellWidth * 0.3 / 2)

	r.board.Color = ladderColor
	r.board.Push(start.Add(rail), end.Add(rail))
	r.board.Line(3)
	r.board.Push(start.Sub(rail), end.Sub(rail))
	r.board.Line(3)

	numRungs := int(math.Max(1, span.Len()/(cellWidth*0.5)))
	for i := 0; i <= numRungs; i++ {
		at := start.Add(span.Scaled(float64(i) / float64(numRungs)))
		r.board.Push(at.Add(rail), at.Sub(rail))
		r.board.Line(3)
	}
}

func (r *renderer) drawSnake(snake Snake) {
	start, end := cellCenter(snake.Head), cellCenter(snake.Tail)
	span := end.Sub(start)
	normal := span.Unit().Normal()
	amplitude := cellWidth * 0.5

	r.board.Color = snakeBodyColor
	for t := 0.0; t <= 1; t += 0.05 {
		wave := math.Sin(t*4*math.Pi) * amplitude
		r.board.Push(start.Add(span.Scaled(t)).Add(normal.Scaled(wave)))
	}
	r.board.Line(3)

	r.board.Color = snakeHeadColor
	r.board.Push(start)
	r.board.Circle(cellWidth/4, 0)

	r.board.Color = snakeTailColor
	r.board.Push(end)
	r.board.Circle(cellWidth/6, 0)
}

func (r *renderer) Draw(target pixel.Target, snapshot Snapshot) {
	r.board.Draw(target)
	r.labels.Draw(target, pixel.IM)

	r.tokens.Clear()
	for i, player := range snapshot.Players {
		// Spread tokens sharing a cell so each stays visible
		shift := (float64(i) - float64(len(snapshot.Players)-1)/2) * cellWidth / 5
		center := cellCorner(player.Coordinate).Add(pixel.V(cellWidth/2+shift, cellWidth/2))

		r.tokens.Color = playerColor(player)
		r.tokens.Push(center)
		r.tokens.Circle(cellWidth/4, 0)
	}
	r.tokens.Draw(target)

	r.hud.Clear()
	fmt.Fprintf(r.hud, "%s's Turn\n", snapshot.CurrentPlayer().Name)
	if snapshot.Phase == AwaitingRoll {
		fmt.Fprintln(r.hud, "Press ENTER to roll dice")
	} else {
		fmt.Fprintf(r.hud, "Dice: %d\n", snapshot.Dice)
		if snapshot.Phase == AwaitingAdvance {
			fmt.Fprintln(r.hud, "Press SPACE for next turn")
		}
	}
	if move := snapshot.LastMove; move != nil {
		fmt.Fprintln(r.hud, describeMove(snapshot, *move))
	}
	r.hud.Draw(target, pixel.IM.Scaled(r.hud.Orig, 1.25))

	r.banner.Clear()
	if snapshot.IsOver() {
		line := fmt.Sprintf("%s Wins!", snapshot.Winner)
		r.banner.Dot.X -= r.banner.BoundsOf(line).W() / 2
		fmt.Fprintln(r.banner, line)

		line = "Press 'R' to restart"
		r.banner.Dot.X -= r.banner.BoundsOf(line).W() / 2
		fmt.Fprintln(r.banner, line)

		r.banner.Draw(target, pixel.IM.Scaled(r.banner.Orig, 2))
	}
}

func playerColor(player PlayerSnapshot) pixel.RGBA {
	var red, green, blue uint8
	if _, err := fmt.Sscanf(player.Color, "#%02x%02x%02x", &red, &green, &blue); err != nil {
		return pixel.RGB(0, 0, 0)
	}
	return pixel.RGB(float64(red)/255, float64(green)/255, float64(blue)/255)
}

func describeMove(snapshot Snapshot, move Move) string {
	name := snapshot.Players[move.Player].Name
	switch {
	case move.Overshot():
		return fmt.Sprintf("%s needs exactly %d to finish", name, LastCell-move.From)
	case move.Jump == SnakeJump:
		return fmt.Sprintf("%s hit a snake: %d -> %d", name, move.Landed, move.To)
	case move.Jump == LadderJump:
		return fmt.Sprintf("%s climbed a ladder: %d -> %d", name, move.Landed, move.To)
	default:
		return fmt.Sprintf("%s moved %d -> %d", name, move.From, move.To)
	}
}
